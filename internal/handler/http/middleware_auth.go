package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/internal/utils"
)

// auth rejects requests without a valid bearer token and puts the
// administrator login into the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		header := r.Header.Get("Authorization")
		if header == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Msg("unauthenticated request")
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		raw, err := utils.ParseBearerToken(header)
		if err != nil {
			log.Warn().Err(err).Msg("malformed authorization header")
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), raw)
		if errors.Is(err, service.ErrTokenIsExpired) {
			log.Warn().Err(err).Msg("token expired")
			http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			return
		}
		if err != nil {
			log.Warn().Err(err).Msg("token rejected")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.AdminLoginCtxKey, token.Login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
