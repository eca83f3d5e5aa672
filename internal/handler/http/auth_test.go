// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestRouterHandler(t, &service.Services{AuthService: auth}, "")
}

func credentialsBody(t *testing.T, c models.Credentials) string {
	t.Helper()
	b, err := json.Marshal(c)
	require.NoError(t, err)
	return string(b)
}

func strPtr(s string) *string { return &s }

var validCredentials = models.Credentials{Login: "admin", Password: "secret"}

func doLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.login(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	var tokenFor string
	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (string, error) {
			return c.Login, nil
		},
		createTokenFn: func(_ context.Context, login string) (models.Token, error) {
			tokenFor = login
			return models.Token{SignedString: signedToken}, nil
		},
	})

	rec := doLogin(h, credentialsBody(t, validCredentials))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
	assert.Equal(t, "admin", tokenFor)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       *string
		loginErr   error
		tokenErr   error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid JSON",
			body:       strPtr("{invalid json}"),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidJSON,
		},
		{
			name:       "empty body",
			body:       strPtr(""),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidJSON,
		},
		{
			name:       "invalid data",
			loginErr:   service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "wrong password",
			loginErr:   service.ErrWrongPassword,
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgInvalidLoginPassword,
		},
		{
			name:       "wrapped wrong password",
			loginErr:   errors.Join(errors.New("bcrypt"), service.ErrWrongPassword),
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgInvalidLoginPassword,
		},
		{
			name:       "unexpected login error",
			loginErr:   errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
		{
			name:       "token creation fails",
			tokenErr:   service.ErrTokenCreationFailed,
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				loginFn: func(_ context.Context, c models.Credentials) (string, error) {
					return c.Login, tt.loginErr
				},
				createTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					return models.Token{}, tt.tokenErr
				},
			})

			body := credentialsBody(t, validCredentials)
			if tt.body != nil {
				body = *tt.body
			}

			rec := doLogin(h, body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestLogin_ViaRouter(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (string, error) {
			return c.Login, nil
		},
		createTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{SignedString: "tok"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer tok", rec.Header().Get("Authorization"))
}
