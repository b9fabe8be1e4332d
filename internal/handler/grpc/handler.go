// Package grpc implements the gRPC transport layer of the application.
//
// The only service exposed over gRPC is the standard health-checking protocol
// (grpc.health.v1.Health), whose serving status mirrors the liveness of the
// backing store. Load balancers and orchestrators can therefore probe the
// process with any stock gRPC health client.
package grpc

import (
	"context"
	"time"

	"accountgate/internal/logger"
	"accountgate/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// storePingInterval is how often the store is probed to refresh the reported
// health status.
const storePingInterval = 15 * time.Second

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger, and owns
// the health service instance whose status it keeps in sync with the store.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health is the standard gRPC health service registered on the server.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to the given gRPC server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// WatchStore periodically pings the backing store and updates the reported
// health status accordingly. It blocks until ctx is cancelled; run it in its
// own goroutine alongside the gRPC server.
func (h *Handler) WatchStore(ctx context.Context) {
	h.refreshStatus(ctx)

	ticker := time.NewTicker(storePingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.refreshStatus(ctx)
		}
	}
}

func (h *Handler) refreshStatus(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.PingStore(ctx); err != nil {
		h.logger.Err(err).Str("func", "refreshStatus").Msg("store ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	// The empty service name is the conventional "whole process" probe target.
	h.health.SetServingStatus("", status)
}
