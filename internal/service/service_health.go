package service

import (
	"context"
	"fmt"

	"accountgate/internal/logger"
	"accountgate/internal/store"
)

// healthService is the concrete implementation of HealthService.
// It reports backing-store liveness by pinging through the shared DB handle.
type healthService struct {
	pinger store.Pinger
	logger *logger.Logger
}

// NewHealthService constructs a HealthService over the given Pinger.
func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

// PingStore verifies the backing store is reachable. A non-nil error means
// the store is down or unreachable; callers translate it into 503 (HTTP) or
// NOT_SERVING (gRPC health).
func (h *healthService) PingStore(ctx context.Context) error {
	if err := h.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("store ping failed")
		return fmt.Errorf("store ping failed: %w", err)
	}

	return nil
}
