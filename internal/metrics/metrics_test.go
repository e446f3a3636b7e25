// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, m *Metrics, name string) *dto.MetricFamily {
	t.Helper()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func TestNew_IndependentRegistries(t *testing.T) {
	first := New()
	second := New()

	first.Registrations.Inc()

	f := findFamily(t, first, "skillswap_auth_registrations_total")
	require.NotNil(t, f)
	assert.Equal(t, 1.0, f.GetMetric()[0].GetCounter().GetValue())

	f = findFamily(t, second, "skillswap_auth_registrations_total")
	require.NotNil(t, f)
	assert.Equal(t, 0.0, f.GetMetric()[0].GetCounter().GetValue())
}

func TestMetrics_LabelledCounters(t *testing.T) {
	m := New()

	m.Logins.WithLabelValues(StatusSuccess).Inc()
	m.Logins.WithLabelValues(StatusFailure).Add(2)
	m.GateDecisions.WithLabelValues(DecisionBanned).Inc()

	f := findFamily(t, m, "skillswap_auth_logins_total")
	require.NotNil(t, f)
	assert.Len(t, f.GetMetric(), 2)

	f = findFamily(t, m, "skillswap_auth_gate_decisions_total")
	require.NotNil(t, f)
	require.Len(t, f.GetMetric(), 1)
	assert.Equal(t, "decision", f.GetMetric()[0].GetLabel()[0].GetName())
	assert.Equal(t, DecisionBanned, f.GetMetric()[0].GetLabel()[0].GetValue())
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.SessionsSwept.Add(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "skillswap_sessions_swept_total 3")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, StatusSuccess, StatusLabel(nil))
	assert.Equal(t, StatusFailure, StatusLabel(errors.New("boom")))
}
