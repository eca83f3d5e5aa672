// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/site-settings/internal/adapter"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/models"
)

type clientSettingsService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientSettingsService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSettingsService {
	return &clientSettingsService{adapter: serverAdapter, logger: logger}
}

func (s *clientSettingsService) Get(ctx context.Context, key string) (models.ListSetting, error) {
	setting, err := s.adapter.GetSetting(ctx, key)
	if err != nil {
		return models.ListSetting{}, fmt.Errorf("get %q: %w", key, mapAdapterError(err))
	}

	items, err := decodeList(setting.Value)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("stored setting is not a list")
		return models.ListSetting{}, fmt.Errorf("get %q: %w", key, err)
	}

	return models.ListSetting{Key: key, Items: items, Version: setting.Version}, nil
}

func (s *clientSettingsService) Update(ctx context.Context, key string, items models.ItemList, expectedVersion *int64) (models.UpdateResult, error) {
	if items == nil {
		items = models.ItemList{}
	}

	value, err := json.Marshal(items)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("encode %q: %w", key, err)
	}

	result, err := s.adapter.UpdateSetting(ctx, models.SettingUpdate{
		Key:             key,
		Value:           value,
		ExpectedVersion: expectedVersion,
	})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update %q: %w", key, mapAdapterError(err))
	}

	return result, nil
}

// decodeList accepts only a JSON array. null and objects are rejected.
func decodeList(raw json.RawMessage) (models.ItemList, error) {
	var items models.ItemList
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSetting, err)
	}
	if items == nil {
		return nil, ErrMalformedSetting
	}

	return items, nil
}
