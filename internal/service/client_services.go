package service

import (
	"github.com/MKhiriev/site-settings/internal/adapter"
	"github.com/MKhiriev/site-settings/internal/logger"
)

type ClientServices struct {
	AuthService     ClientAuthService
	SettingsService ClientSettingsService
	InfoService     ClientInfoService
}

// NewClientServices wires the client services on top of the server adapter.
// health may be nil when no gRPC address is configured; Ping then falls back
// to the HTTP version endpoint.
func NewClientServices(serverAdapter adapter.ServerAdapter, health adapter.HealthChecker, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter, logger),
		SettingsService: NewClientSettingsService(serverAdapter, logger),
		InfoService:     NewClientInfoService(serverAdapter, health, logger),
	}
}
