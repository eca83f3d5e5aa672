package server

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/site-settings/internal/config"
	"github.com/MKhiriev/site-settings/internal/handler"
	"github.com/MKhiriev/site-settings/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

// NewServer binds the listeners of every transport with a configured
// address, so a busy port is reported here rather than from Run.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		s.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			s.shutdown()
			return nil, err
		}
		s.gRPCServer = grpcSrv
	}

	if s.httpServer == nil && s.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(s.httpServer.serve)
	}
	if s.gRPCServer != nil {
		g.Go(s.gRPCServer.serve)
	}
	g.Go(func() error {
		<-ctx.Done()
		s.shutdown()
		return nil
	})

	err := g.Wait()
	if err != nil {
		s.logger.Error().Err(err).Msg("server stopped on transport failure")
		return err
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}

// shutdown reports NOT_SERVING over gRPC health first, so probing clients see
// the server leaving before HTTP stops accepting writes.
func (s *server) shutdown() {
	s.shutdownOnce.Do(func() {
		if s.gRPCServer != nil {
			s.gRPCServer.markNotServing()
		}
		if s.httpServer != nil {
			s.httpServer.shutdown()
		}
		if s.gRPCServer != nil {
			s.gRPCServer.shutdown()
		}
	})
}
