package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-settings/internal/config"
	"github.com/MKhiriev/site-settings/internal/logger"
)

// Storages groups the repositories of the settings server together with the
// connection they share.
type Storages struct {
	SettingsRepository SettingsRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("dialect", string(db.Dialect())).Msg("database migrated")

	return &Storages{
		SettingsRepository: NewSettingsRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
