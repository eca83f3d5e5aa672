// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/models"
)

const (
	maxRetries   = 3
	retryBackoff = 50 * time.Millisecond
)

// settingRow is the scan target for a settings row. TEXT columns can't be
// scanned into json.RawMessage directly.
type settingRow struct {
	Key       string    `db:"setting_key"`
	Value     []byte    `db:"setting_value"`
	Version   int64     `db:"version"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r settingRow) toModel() models.Setting {
	return models.Setting{
		Key:       r.Key,
		Value:     r.Value,
		Version:   r.Version,
		UpdatedAt: r.UpdatedAt,
	}
}

// settingsRepository is the SQL implementation of [SettingsRepository].
// Transient driver errors on reads and unconditional writes are retried with
// exponential backoff.
type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] on top of db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetSetting reads the row stored under key.
//
// Error handling:
//   - no row → [ErrSettingNotFound].
//   - query build failure → [ErrBuildingSQLQuery].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *settingsRepository) GetSetting(ctx context.Context, key string) (models.Setting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSettingQuery(r.db.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetSetting").Msg("error building query")
		return models.Setting{}, err
	}

	var row settingRow
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.GetContext(ctx, &row, query, args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Setting{}, ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetSetting").Str("key", key).Msg("error reading setting")
		return models.Setting{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.toModel(), nil
}

// UpdateSetting writes the whole value and returns the new version. Only the
// unconditional upsert is retried on transient errors.
//
// Error handling:
//   - expected version mismatch (no row returned) → [ErrVersionConflict].
//   - unconditional write returning no row → [ErrSettingNotSaved].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *settingsRepository) UpdateSetting(ctx context.Context, update models.SettingUpdate) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSettingQuery(r.db.builder(), update)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpdateSetting").Msg("error building query")
		return models.UpdateResult{}, err
	}

	var version int64
	write := func(ctx context.Context) error {
		return r.db.QueryRowxContext(ctx, query, args...).Scan(&version)
	}
	// a conditional write that committed before the connection dropped would
	// come back from a retry as a false version conflict
	if update.ExpectedVersion == nil {
		err = r.withRetry(ctx, write)
	} else {
		err = write(ctx)
	}
	if errors.Is(err, sql.ErrNoRows) {
		if update.ExpectedVersion != nil {
			log.Info().Str("key", update.Key).Int64("expected_version", *update.ExpectedVersion).Msg("setting version conflict")
			return models.UpdateResult{}, ErrVersionConflict
		}
		return models.UpdateResult{}, ErrSettingNotSaved
	}
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpdateSetting").Str("key", update.Key).Msg("error writing setting")
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("key", update.Key).Int64("version", version).Msg("setting saved")
	return models.UpdateResult{Updated: true, Version: version}, nil
}

// withRetry runs fn until it succeeds, fails with an error the dialect's
// classifier deems permanent, or the retry budget runs out.
func (r *settingsRepository) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil || errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("retryable database error")
			return retry.RetryableError(err)
		}
		return err
	})
}
