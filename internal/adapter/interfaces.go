// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the settings server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) and a gRPC health probe ([NewGRPCHealthChecker]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/site-settings/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the settings
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates the administrator. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// GetSetting fetches the stored setting with its version.
	GetSetting(ctx context.Context, key string) (models.Setting, error)

	// UpdateSetting replaces the whole value of a setting. When a hash key is
	// configured the payload is signed. Returns [ErrConflict] (wrapped) on a
	// version mismatch.
	UpdateSetting(ctx context.Context, update models.SettingUpdate) (models.UpdateResult, error)

	// GetVersion fetches the server build info.
	GetVersion(ctx context.Context) (models.VersionResponse, error)
}

// HealthChecker probes server liveness.
type HealthChecker interface {
	// Check returns nil while the server reports SERVING.
	Check(ctx context.Context) error
	Close() error
}
