package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/site-settings/models"
)

var settingsTable = models.Setting{}.TableName()

var settingColumns = []string{"setting_key", "setting_value", "version", "updated_at"}

// buildSelectSettingQuery returns the query reading one setting row by key.
func buildSelectSettingQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.
		Select(settingColumns...).
		From(settingsTable).
		Where(sq.Eq{"setting_key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertSettingQuery returns the statement for a write without a version
// check: the row is created with version 1 or its version is bumped.
func buildUpsertSettingQuery(b sq.StatementBuilderType, update models.SettingUpdate) (string, []any, error) {
	query, args, err := b.
		Insert(settingsTable).
		Columns(settingColumns...).
		Values(update.Key, string(update.Value), int64(1), sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (setting_key) DO UPDATE SET " +
			"setting_value = excluded.setting_value, " +
			"version = site_settings.version + 1, " +
			"updated_at = CURRENT_TIMESTAMP " +
			"RETURNING version").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCreateSettingQuery returns the statement for a write expecting the key
// to be absent. It returns no row when the key already exists.
func buildCreateSettingQuery(b sq.StatementBuilderType, update models.SettingUpdate) (string, []any, error) {
	query, args, err := b.
		Insert(settingsTable).
		Columns(settingColumns...).
		Values(update.Key, string(update.Value), int64(1), sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (setting_key) DO NOTHING RETURNING version").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCompareAndSwapSettingQuery returns the statement replacing the value
// only while the stored version equals expected. It returns no row on
// mismatch.
func buildCompareAndSwapSettingQuery(b sq.StatementBuilderType, update models.SettingUpdate, expected int64) (string, []any, error) {
	query, args, err := b.
		Update(settingsTable).
		Set("setting_value", string(update.Value)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"setting_key": update.Key}).
		Where(sq.Eq{"version": expected}).
		Suffix("RETURNING version").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateSettingQuery picks the statement matching the update's version
// expectation.
func buildUpdateSettingQuery(b sq.StatementBuilderType, update models.SettingUpdate) (string, []any, error) {
	switch {
	case update.ExpectedVersion == nil:
		return buildUpsertSettingQuery(b, update)
	case *update.ExpectedVersion == 0:
		return buildCreateSettingQuery(b, update)
	default:
		return buildCompareAndSwapSettingQuery(b, update, *update.ExpectedVersion)
	}
}
