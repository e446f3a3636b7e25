// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/skillswap/skillswap-server/internal/config"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/metrics"
	"github.com/skillswap/skillswap-server/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers registers the session sweeper. A non-positive sweep interval
// leaves it out.
func NewWorkers(storages *store.Storages, cfg config.Workers, m *metrics.Metrics, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.SessionSweepInterval > 0 {
		w.workers = append(w.workers, NewSessionSweeper(storages.SessionRepository, cfg.SessionSweepInterval, m, logger))
	} else {
		logger.Warn().Msg("session sweeper disabled")
	}

	return w
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
