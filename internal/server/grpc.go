package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/site-settings/internal/config"
	myGRPC "github.com/MKhiriev/site-settings/internal/handler/grpc"
	"github.com/MKhiriev/site-settings/internal/logger"
)

type grpcServer struct {
	handler  *myGRPC.Handler
	server   *grpc.Server
	listener net.Listener
	logger   *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on gRPC address %q: %w", cfg.GRPCAddress, err)
	}

	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler:  handler,
		server:   s,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("gRPC server: %w", err)
	}
	return nil
}

func (g *grpcServer) markNotServing() {
	g.handler.Shutdown()
}

func (g *grpcServer) shutdown() {
	g.server.GracefulStop()
	_ = g.listener.Close()
	g.logger.Info().Msg("gRPC server stopped")
}
