// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"accountgate/internal/config"
	"accountgate/internal/logger"
	"accountgate/internal/store"

	"github.com/robfig/cron/v3"
)

// auditCleanupWorker deletes audit events older than the configured retention
// window on a cron schedule.
type auditCleanupWorker struct {
	auditRepository store.AuditRepository

	cron      *cron.Cron
	retention time.Duration

	logger *logger.Logger
}

func newAuditCleanupWorker(auditRepository store.AuditRepository, cfg config.Workers, logger *logger.Logger) (*auditCleanupWorker, error) {
	worker := &auditCleanupWorker{
		auditRepository: auditRepository,
		cron:            cron.New(),
		retention:       cfg.AuditRetention,
		logger:          logger,
	}

	if _, err := worker.cron.AddFunc(cfg.CleanupSchedule, worker.sweep); err != nil {
		return nil, err
	}

	logger.Info().
		Str("schedule", cfg.CleanupSchedule).
		Dur("retention", cfg.AuditRetention).
		Msg("audit cleanup worker created")

	return worker, nil
}

// Run starts the cron scheduler. The scheduler runs jobs in its own
// goroutines, so Run returns immediately.
func (w *auditCleanupWorker) Run() {
	w.cron.Start()
}

// sweep removes every audit event whose timestamp has fallen out of the
// retention window. Failures are logged and retried on the next tick.
func (w *auditCleanupWorker) sweep() {
	ctx := context.Background()
	cutoff := time.Now().Add(-w.retention)

	deleted, err := w.auditRepository.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		w.logger.Err(err).Str("func", "sweep").Msg("audit cleanup sweep failed")
		return
	}

	w.logger.Info().
		Int64("deleted", deleted).
		Time("cutoff", cutoff).
		Msg("audit cleanup sweep finished")
}
