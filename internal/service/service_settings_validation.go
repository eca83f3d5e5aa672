package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-settings/internal/validators"
	"github.com/MKhiriev/site-settings/models"
)

type SettingsValidationService struct {
	inner     SettingsService
	validator validators.Validator
}

func NewSettingsValidationService() SettingsServiceWrapper {
	return &SettingsValidationService{
		validator: validators.NewSettingsValidator(),
	}
}

func (v *SettingsValidationService) GetSetting(ctx context.Context, key string) (models.Setting, error) {
	if err := v.validator.Validate(ctx, key); err != nil {
		return models.Setting{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetSetting(ctx, key)
}

func (v *SettingsValidationService) UpdateSetting(ctx context.Context, update models.SettingUpdate) (models.UpdateResult, error) {
	// value in json should be:
	//  - a JSON array
	//  - of objects with a non-empty string id
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateSetting(ctx, update)
}

func (v *SettingsValidationService) Wrap(wrapper SettingsService) SettingsService {
	v.inner = wrapper
	return v
}
