// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/griswall/playoff-pool/internal/logger"
)

// DefaultRefreshInterval is used when a non-positive interval is given.
const DefaultRefreshInterval = 30 * time.Second

// TokenRefreshJob periodically asks a [SessionRefresher] to renew the
// session. A failed refresh is logged and retried on the next tick.
type TokenRefreshJob struct {
	refresher SessionRefresher
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTokenRefreshJob creates a TokenRefreshJob that calls
// refresher.RefreshSessionIfNeeded every interval. The job is idle until
// Start is called.
func NewTokenRefreshJob(refresher SessionRefresher, interval time.Duration, log *logger.Logger) *TokenRefreshJob {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &TokenRefreshJob{refresher: refresher, interval: interval, logger: log}
}

// Start implements [Worker]. It stops any previously running loop, runs one
// refresh check immediately and then one per interval until ctx is
// cancelled or Stop is called.
func (j *TokenRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.tick(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker].
func (j *TokenRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *TokenRefreshJob) tick(ctx context.Context) {
	if err := j.refresher.RefreshSessionIfNeeded(ctx); err != nil && ctx.Err() == nil {
		j.logger.Warn().Err(err).Msg("session refresh failed")
	}
}
