package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when the sources leave a field empty.
const (
	DefaultSectionsPolicy    = "optimistic"
	DefaultSocialMediaPolicy = "confirmed"
	DefaultNotificationTTL   = 5 * time.Second
	DefaultHealthInterval    = 30 * time.Second
	DefaultRequestTimeout    = 10 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the settings HTTP API address.
	HTTPAddress string
	// GRPCAddress is the gRPC health endpoint address. Empty disables probing.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Login and Password are used for automatic sign-in when both are set.
	Login    string
	Password string
}

// ClientEditor holds list editor switches.
type ClientEditor struct {
	SectionsPolicy    string
	SocialMediaPolicy string
	NotificationTTL   time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HealthInterval defines how often the backend health is probed.
	HealthInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Editor contains list editor settings.
	Editor ClientEditor
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Server-only fields are not validated here, so the client can share a config
// file with the server.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Login:          cfg.Adapter.Login,
			Password:       cfg.Adapter.Password,
		},
		Editor: ClientEditor{
			SectionsPolicy:    cfg.Editor.SectionsPolicy,
			SocialMediaPolicy: cfg.Editor.SocialMediaPolicy,
			NotificationTTL:   cfg.Editor.NotificationTTL,
		},
		Workers: ClientWorkers{HealthInterval: cfg.Workers.HealthInterval},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Editor.SectionsPolicy == "" {
		clientCfg.Editor.SectionsPolicy = DefaultSectionsPolicy
	}
	if clientCfg.Editor.SocialMediaPolicy == "" {
		clientCfg.Editor.SocialMediaPolicy = DefaultSocialMediaPolicy
	}
	if clientCfg.Editor.NotificationTTL == 0 {
		clientCfg.Editor.NotificationTTL = DefaultNotificationTTL
	}
	if clientCfg.Workers.HealthInterval == 0 {
		clientCfg.Workers.HealthInterval = DefaultHealthInterval
	}

	return clientCfg
}
