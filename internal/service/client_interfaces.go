package service

import (
	"context"

	"github.com/MKhiriev/site-settings/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for administrator
// authentication.
type ClientAuthService interface {
	// Login authenticates against the server and keeps the issued token in
	// the adapter for subsequent calls.
	Login(ctx context.Context, credentials models.Credentials) error

	// Authenticated reports whether a token is held.
	Authenticated() bool
}

// ClientSettingsService is the list-oriented view of the settings API used by
// the editors.
type ClientSettingsService interface {
	// Get fetches key and decodes its value into a list. A value that is not a
	// JSON array yields ErrMalformedSetting.
	Get(ctx context.Context, key string) (models.ListSetting, error)

	// Update writes the whole list. A non-nil expectedVersion makes the write
	// conditional; a mismatch yields store.ErrVersionConflict.
	Update(ctx context.Context, key string, items models.ItemList, expectedVersion *int64) (models.UpdateResult, error)
}

// ClientInfoService reports server availability and build info.
type ClientInfoService interface {
	// Ping returns nil while the server answers its health probe.
	Ping(ctx context.Context) error

	// ServerVersion fetches the server build info.
	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}
