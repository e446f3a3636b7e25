// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/skillswap/skillswap-server/internal/config"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/metrics"
	"github.com/skillswap/skillswap-server/internal/mock"
	"github.com/skillswap/skillswap-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// blockingWorker counts runs and blocks until its context ends.
type blockingWorker struct {
	runs atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersRunUntilCancelled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	select {
	case <-done:
		t.Fatal("Run returned before cancellation")
	default:
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns immediately without workers
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{SessionRepository: mock.NewMockSessionRepository(ctrl)}

	t.Run("sweeper registered", func(t *testing.T) {
		ws := NewWorkers(storages, config.Workers{SessionSweepInterval: time.Hour}, metrics.New(), logger.Nop())

		require.Len(t, ws.workers, 1)
		assert.IsType(t, &SessionSweeper{}, ws.workers[0])
	})

	t.Run("sweeper disabled", func(t *testing.T) {
		ws := NewWorkers(storages, config.Workers{}, metrics.New(), logger.Nop())

		assert.Empty(t, ws.workers)
	})
}
