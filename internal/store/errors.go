package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSettingNotFound is returned when no row exists for the requested
	// settings key.
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrSettingNotSaved is returned when a write completes without error but
	// reports no new version.
	ErrSettingNotSaved = errors.New("setting was not saved")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the client does not match the version stored in
	// the database, meaning someone else wrote the setting since the client
	// read it.
	ErrVersionConflict = errors.New("setting version conflict occurred")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known
	// driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan setting row")
)
