package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SettingsServiceWrapper

import (
	"context"

	"github.com/MKhiriev/site-settings/models"
)

// SettingsService reads and replaces whole settings values.
type SettingsService interface {
	GetSetting(ctx context.Context, key string) (models.Setting, error)
	UpdateSetting(ctx context.Context, update models.SettingUpdate) (models.UpdateResult, error)
}

// AuthService authenticates the site administrator and manages JWT tokens.
type AuthService interface {
	// Login checks the credentials against the configured administrator and
	// returns the accepted login.
	Login(ctx context.Context, credentials models.Credentials) (string, error)
	CreateToken(ctx context.Context, login string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// SettingsServiceWrapper defines middleware composition for SettingsService.
// Implementations wrap an existing SettingsService to add behavior such as
// logging or validating.
type SettingsServiceWrapper interface {
	Wrap(SettingsService) SettingsService // returns a decorated SettingsService applying additional behavior
}
