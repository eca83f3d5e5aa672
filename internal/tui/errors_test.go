package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/editor"
	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/internal/store"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrong password", err: service.ErrWrongPassword, want: "Неверный логин или пароль"},
		{name: "expired token", err: fmt.Errorf("save: %w", service.ErrTokenIsExpired), want: "Сессия истекла, войдите снова"},
		{name: "no token", err: service.ErrNotAuthenticated, want: "Сессия истекла, войдите снова"},
		{name: "conflict", err: store.ErrVersionConflict, want: app.NoticeSaveConflict},
		{name: "incomplete draft", err: editor.ErrDraftIncomplete, want: app.NoticeDraftInvalid},
		{name: "invalid patch", err: editor.ErrInvalidPatch, want: "Недопустимое значение"},
		{name: "refused", err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, want: app.NoticeServerDown},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "settings.local"}, want: app.NoticeServerDown},
		{name: "deadline", err: fmt.Errorf("get sections: %w", context.DeadlineExceeded), want: app.NoticeServerDown},
		{name: "bad gateway", err: service.ErrBackendUnavailable, want: app.NoticeServerDown},
		{name: "server failure", err: service.ErrServerFailure, want: "Ошибка на сервере, попробуйте позже"},
		{name: "anything else", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
