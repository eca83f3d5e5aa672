// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// settings server and the admin client. It is populated by merging values
// from a .env file, environment variables, command-line flags and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds admin credentials, token parameters, the request integrity
	// key and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the settings database connection.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the settings backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Editor holds list editor behaviour switches.
	Editor Editor `envPrefix:"EDITOR_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the environment and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control admin
// authentication, token lifecycle, request integrity and versioning.
type App struct {
	// AdminLogin is the login of the single settings administrator.
	// Env: APP_ADMIN_LOGIN
	AdminLogin string `env:"ADMIN_LOGIN"`

	// AdminPasswordHash is the bcrypt hash of the administrator password.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used for settings payload integrity checks
	// (the HashSHA256 header). Optional on both sides.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables gRPC.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the settings database.
type DB struct {
	// DSN selects the driver by scheme: "postgres://" or "postgresql://"
	// open PostgreSQL through pgx, "file:" / "sqlite://" or a bare path
	// open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client-side view of the settings backend.
type Adapter struct {
	// HTTPAddress is the base address of the settings HTTP API
	// (e.g. "localhost:8080" or "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the address of the gRPC health endpoint. Empty disables
	// health probing.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Login and Password enable automatic sign-in at client start-up.
	// Env: ADAPTER_LOGIN, ADAPTER_PASSWORD
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`
}

// Editor holds list editor switches.
type Editor struct {
	// SectionsPolicy is the save policy of the section editor:
	// "optimistic" or "confirmed". Defaults to "optimistic".
	// Env: EDITOR_SECTIONS_POLICY
	SectionsPolicy string `env:"SECTIONS_POLICY"`

	// SocialMediaPolicy is the save policy of the social media editor.
	// Defaults to "confirmed".
	// Env: EDITOR_SOCIAL_MEDIA_POLICY
	SocialMediaPolicy string `env:"SOCIAL_MEDIA_POLICY"`

	// NotificationTTL is how long a notification stays on screen.
	// Env: EDITOR_NOTIFICATION_TTL
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// HealthInterval is how often the client probes backend health.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. .env file (only fills variables missing from the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(os.Getenv(DotEnvPathVariable)).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
