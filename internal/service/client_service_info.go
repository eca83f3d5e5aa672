package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-settings/internal/adapter"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/models"
)

type clientInfoService struct {
	adapter adapter.ServerAdapter
	health  adapter.HealthChecker
	logger  *logger.Logger
}

func NewClientInfoService(serverAdapter adapter.ServerAdapter, health adapter.HealthChecker, logger *logger.Logger) ClientInfoService {
	return &clientInfoService{adapter: serverAdapter, health: health, logger: logger}
}

func (s *clientInfoService) Ping(ctx context.Context) error {
	var err error
	if s.health != nil {
		err = s.health.Check(ctx)
	} else {
		_, err = s.adapter.GetVersion(ctx)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	return nil
}

func (s *clientInfoService) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	version, err := s.adapter.GetVersion(ctx)
	if err != nil {
		return models.VersionResponse{}, mapAdapterError(err)
	}
	return version, nil
}
