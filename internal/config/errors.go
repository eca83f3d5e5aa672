package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid server storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates missing admin credentials or token
	// parameters.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidEditorConfigs indicates an unknown save policy or a
	// non-positive notification TTL.
	ErrInvalidEditorConfigs = errors.New("invalid editor configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero health interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
