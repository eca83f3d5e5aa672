// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/site-settings/internal/adapter"
	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/store"
)

// unauthorizedReasons tells the 401 replies apart by the server's message.
var unauthorizedReasons = map[string]error{
	app.MsgInvalidLoginPassword:    ErrWrongPassword,
	app.MsgTokenIsExpired:          ErrTokenIsExpired,
	app.MsgTokenIsExpiredOrInvalid: ErrTokenIsExpiredOrInvalid,
}

// mapAdapterError turns a settings API reply into the error the editors and
// the UI understand. Network errors pass through unchanged.
func mapAdapterError(err error) error {
	var statusErr *adapter.StatusError
	if err == nil || !errors.As(err, &statusErr) {
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized):
		if reason, ok := unauthorizedReasons[statusErr.Body]; ok {
			return reason
		}
		return ErrNotAuthenticated
	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrSettingNotFound
	case errors.Is(err, adapter.ErrConflict):
		return store.ErrVersionConflict
	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return ErrBackendUnavailable
	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerFailure
	default:
		return err
	}
}
