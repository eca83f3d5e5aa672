// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"syscall"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/editor"
	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/internal/store"
)

// ErrUserQuit is returned by Run when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("вышел из программы")

// isUnreachable reports transport failures: refused or reset connections,
// DNS errors, timeouts and a backend answering 502/503/504.
func isUnreachable(err error) bool {
	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
	)
	return errors.As(err, &opErr) ||
		errors.As(err, &dnsErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, service.ErrBackendUnavailable)
}

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Неверный логин или пароль"
	case errors.Is(err, service.ErrTokenIsExpired),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
		errors.Is(err, service.ErrNotAuthenticated):
		return "Сессия истекла, войдите снова"
	case errors.Is(err, store.ErrVersionConflict):
		return app.NoticeSaveConflict
	case errors.Is(err, editor.ErrDraftIncomplete):
		return app.NoticeDraftInvalid
	case errors.Is(err, editor.ErrInvalidPatch):
		return "Недопустимое значение"
	case isUnreachable(err):
		return app.NoticeServerDown
	case errors.Is(err, service.ErrServerFailure):
		return "Ошибка на сервере, попробуйте позже"
	default:
		return err.Error()
	}
}
