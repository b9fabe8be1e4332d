package server

import (
	"context"
	"net"

	"accountgate/internal/config"
	myGRPC "accountgate/internal/handler/grpc"
	"accountgate/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	// watchCtx drives the health status watcher goroutine; watchCancel stops
	// it on shutdown. Both are created at construction time so that Shutdown
	// never races RunServer over an unassigned field.
	watchCtx    context.Context
	watchCancel context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, err
	}

	server := grpc.NewServer()
	handler.Register(server)

	watchCtx, watchCancel := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		watchCtx:        watchCtx,
		watchCancel:     watchCancel,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	go g.handler.WatchStore(g.watchCtx)

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.watchCancel()
	g.server.GracefulStop()
}
