package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/site-settings/models"
)

// SettingsRepository persists settings as whole JSON documents keyed by name.
type SettingsRepository interface {
	// GetSetting returns the stored setting or [ErrSettingNotFound].
	GetSetting(ctx context.Context, key string) (models.Setting, error)

	// UpdateSetting replaces the value under update.Key and returns the new
	// version. When update.ExpectedVersion is set and doesn't match the
	// stored version, [ErrVersionConflict] is returned and nothing changes.
	UpdateSetting(ctx context.Context, update models.SettingUpdate) (models.UpdateResult, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
