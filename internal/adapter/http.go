package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/site-settings/internal/config"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/utils"
	"github.com/MKhiriev/site-settings/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, Login: credentials.Login}, nil
}

// GetSetting implements [ServerAdapter]. GET /api/settings/{key}.
func (h *httpServerAdapter) GetSetting(ctx context.Context, key string) (models.Setting, error) {
	var setting models.Setting

	resp, err := h.authedRequest(ctx).
		SetPathParam("key", key).
		SetResult(&setting).
		Get("/api/settings/{key}")
	if err != nil {
		return models.Setting{}, fmt.Errorf("get setting request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Setting{}, err
	}

	return setting, nil
}

// UpdateSetting implements [ServerAdapter]. PUT /api/settings/{key}.
func (h *httpServerAdapter) UpdateSetting(ctx context.Context, update models.SettingUpdate) (models.UpdateResult, error) {
	if h.hashKey != "" {
		hash, err := utils.HashJSON(update.Value, h.hashKey)
		if err != nil {
			return models.UpdateResult{}, fmt.Errorf("hash setting value: %w", err)
		}
		update.Hash = hash
	}

	var result models.UpdateResult
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("key", update.Key).
		SetBody(update).
		SetResult(&result).
		Put("/api/settings/{key}")
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update setting request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateResult{}, err
	}

	h.logger.Debug().Str("key", update.Key).Int64("version", result.Version).Msg("setting updated on server")
	return result, nil
}

// GetVersion implements [ServerAdapter]. GET /api/version/.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version/")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
