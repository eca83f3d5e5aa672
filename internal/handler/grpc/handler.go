package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/service"
)

// ServiceName is the health service name reported for the settings API in
// addition to the overall server status ("").
const ServiceName = "sitesettings.v1.Settings"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger and owns
// the standard grpc.health.v1 implementation the client probes.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Both the overall and the [ServiceName] statuses start as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register attaches all gRPC services of the handler to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing switches every reported status between SERVING and NOT_SERVING.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Info().Str("status", status.String()).Msg("gRPC health status changed")
}

// Shutdown marks all services NOT_SERVING permanently so that watchers see
// the server going away before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
