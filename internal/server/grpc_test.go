package server

import (
	"context"
	"testing"
	"time"

	"accountgate/internal/config"
	myGRPC "accountgate/internal/handler/grpc"
	"accountgate/internal/logger"
	"accountgate/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealthService struct{}

func (s *stubHealthService) PingStore(_ context.Context) error { return nil }

func newTestGRPCServer(t *testing.T) *grpcServer {
	t.Helper()

	handler := myGRPC.NewHandler(&service.Services{HealthService: &stubHealthService{}}, logger.Nop())
	srv, err := newGRPCServer(handler, config.Server{GRPCAddress: "localhost:0"}, logger.Nop())
	require.NoError(t, err)
	return srv
}

// TestGRPCServer_ShutdownBeforeRun verifies that a shutdown arriving before
// RunServer still cancels the health watcher: the watch context is created at
// construction time, not inside RunServer.
func TestGRPCServer_ShutdownBeforeRun(t *testing.T) {
	srv := newTestGRPCServer(t)

	srv.Shutdown()

	assert.Error(t, srv.watchCtx.Err(), "watch context must be cancelled after Shutdown")
}

func TestGRPCServer_RunAndShutdown(t *testing.T) {
	srv := newTestGRPCServer(t)

	done := make(chan struct{})
	go func() {
		srv.RunServer()
		close(done)
	}()

	srv.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
	assert.Error(t, srv.watchCtx.Err())
}
