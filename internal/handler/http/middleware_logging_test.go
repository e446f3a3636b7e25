// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLogger attaches a logger writing to buf the way withTraceID does.
func requestWithLogger(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		status      int
		body        string
		wantInLog   []string
		wantMissing []string
	}{
		{
			name:   "GET 200 with body",
			method: http.MethodGet,
			path:   "/api/version",
			status: http.StatusOK,
			body:   "1.0.0",
			wantInLog: []string{
				`"method":"GET"`,
				`"uri":"/api/version"`,
				`"route":"unmatched"`,
				`"status":200`,
				`"size":5`,
				`"duration":`,
			},
		},
		{
			name:   "POST 401",
			method: http.MethodPost,
			path:   "/api/auth/login",
			status: http.StatusUnauthorized,
			body:   `{"message":"Invalid credentials"}`,
			wantInLog: []string{
				`"method":"POST"`,
				`"status":401`,
			},
		},
		{
			name:      "DELETE 204 without body",
			method:    http.MethodDelete,
			path:      "/api/admin/users/1/sessions",
			status:    http.StatusNoContent,
			wantInLog: []string{`"status":204`, `"size":0`},
		},
		{
			name:        "query string is logged, authorization is not",
			method:      http.MethodGet,
			path:        "/api/auth/me?verbose=1",
			status:      http.StatusOK,
			wantInLog:   []string{`"uri":"/api/auth/me?verbose=1"`},
			wantMissing: []string{"Bearer", "secret-token"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			req := requestWithLogger(tt.method, tt.path, &buf)
			req.Header.Set("Authorization", "Bearer secret-token")
			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			logLine := buf.String()
			for _, want := range tt.wantInLog {
				assert.Contains(t, logLine, want)
			}
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, logLine, missing)
			}
		})
	}
}

func TestWithLogging_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_RoutePattern(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Post("/api/admin/users/{id}/ban", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodPost, "/api/admin/users/42/ban", &buf))

	assert.Contains(t, buf.String(), `"route":"/api/admin/users/{id}/ban"`)
}

func TestWithLogging_Concurrent(t *testing.T) {
	var (
		mu    sync.Mutex
		lines []string
	)
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := h.withLogging(next)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()

			var buf bytes.Buffer
			handler.ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/", &buf))

			mu.Lock()
			lines = append(lines, strings.TrimSpace(buf.String()))
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, lines, workers)
	for _, line := range lines {
		assert.Contains(t, line, `"status":200`)
	}
}

func TestWithLogging_PanicPropagates(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Equal(t, http.StatusOK, w.statusCode())

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusTeapot, w.statusCode())
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, 3, w.size)
	assert.Same(t, rr, w.Unwrap())
}

func TestWithMetrics_NilMetrics(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.withMetrics(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusAccepted, rr.Code)
}
