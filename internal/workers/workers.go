package workers

import (
	"accountgate/internal/config"
	"accountgate/internal/logger"
	"accountgate/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by the configuration.
// With no cleanup schedule configured the returned aggregate is empty and
// Run is a no-op.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	workers := &Workers{}

	if cfg.CleanupSchedule != "" {
		cleanup, err := newAuditCleanupWorker(storages.AuditRepository, cfg, logger)
		if err != nil {
			return nil, err
		}
		workers.workers = append(workers.workers, cleanup)
	}

	return workers, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
