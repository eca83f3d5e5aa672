package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/store"
	"github.com/MKhiriev/site-settings/models"
)

type settingsService struct {
	settingsRepository store.SettingsRepository

	logger *logger.Logger
}

func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

func (s *settingsService) GetSetting(ctx context.Context, key string) (models.Setting, error) {
	setting, err := s.settingsRepository.GetSetting(ctx, key)
	if err != nil {
		return models.Setting{}, fmt.Errorf("error getting setting %q: %w", key, err)
	}

	return setting, nil
}

func (s *settingsService) UpdateSetting(ctx context.Context, update models.SettingUpdate) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.settingsRepository.UpdateSetting(ctx, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("error updating setting %q: %w", update.Key, err)
	}

	log.Info().Str("key", update.Key).Int64("version", result.Version).Msg("setting updated")
	return result, nil
}
