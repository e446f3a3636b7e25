// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/metrics"
	"github.com/skillswap/skillswap-server/internal/store"
)

// SessionSweeper periodically deletes refresh sessions past their expiry.
type SessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration

	now     func() time.Time
	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewSessionSweeper(sessions store.SessionRepository, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		metrics:  m,
		logger:   logger,
	}
}

// Run sweeps once every interval until ctx is cancelled. A failed sweep is
// logged and retried on the next tick.
func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep removes expired sessions once and returns how many were removed.
func (s *SessionSweeper) Sweep(ctx context.Context) int64 {
	removed, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		s.logger.Err(err).Msg("sweeping expired sessions failed")
		return 0
	}

	if s.metrics != nil {
		s.metrics.SessionsSwept.Add(float64(removed))
	}
	s.logger.Debug().Int64("removed", removed).Msg("expired sessions swept")

	return removed
}
