// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-session/internal/logger"
)

// resetPurger is the part of service.PasswordResetService the worker needs.
type resetPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// resetCleanupWorker deletes used and expired password reset tokens on a
// fixed interval.
type resetCleanupWorker struct {
	purger   resetPurger
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func newResetCleanupWorker(purger resetPurger, interval time.Duration, logger *logger.Logger) *resetCleanupWorker {
	return &resetCleanupWorker{
		purger:   purger,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (w *resetCleanupWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Warn().Msg("reset cleanup worker disabled: non-positive interval")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("reset cleanup worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("reset cleanup worker stopped")
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *resetCleanupWorker) purge(ctx context.Context) {
	n, err := w.purger.PurgeExpired(ctx, w.now().UTC())
	if err != nil {
		w.logger.Err(err).Str("func", "*resetCleanupWorker.purge").Msg("error purging reset tokens")
		return
	}
	if n > 0 {
		w.logger.Debug().Int64("deleted", n).Msg("purged reset tokens")
	}
}
