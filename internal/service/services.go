package service

import (
	"fmt"

	"github.com/MKhiriev/site-settings/internal/config"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/store"
	"github.com/MKhiriev/site-settings/models"
)

type Services struct {
	AuthService     AuthService
	SettingsService SettingsService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	settingsService := NewSettingsValidationService().Wrap(
		NewSettingsService(storages.SettingsRepository, logger),
	)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		SettingsService: settingsService,
		AppInfoService:  appInfoService,
	}, nil
}
