package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-settings/internal/adapter"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) error {
	if credentials.Login == "" || credentials.Password == "" {
		return ErrInvalidDataProvided
	}

	if _, err := a.adapter.Login(ctx, credentials); err != nil {
		a.logger.Err(err).Str("login", credentials.Login).Msg("login on server failed")
		mapped := mapAdapterError(err)
		if mapped != err {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	a.logger.Info().Str("login", credentials.Login).Msg("logged in")
	return nil
}

func (a *clientAuthService) Authenticated() bool {
	return a.adapter.Token() != ""
}
