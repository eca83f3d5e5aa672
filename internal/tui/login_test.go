package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/site-settings/internal/mock"
	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/models"
)

func TestLoginModel_RequiresBothFields(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Логин и пароль обязательны", m.errMsg)
	assert.Equal(t, fieldLogin, m.focus)
}

// enter в поле логина с пустым паролем переводит фокус на пароль.
func TestLoginModel_EnterOnLoginMovesToPassword(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	typeText(m, "admin")

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, fieldPassword, m.focus)
	assert.Empty(t, m.errMsg)
}

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	auth.EXPECT().
		Login(gomock.Any(), models.Credentials{Login: "admin", Password: "secret"}).
		Return(nil)

	m := NewLoginModel(context.Background(), auth)
	typeText(m, "  admin ")
	m.Update(keyPress("tab"))
	typeText(m, "secret")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Contains(t, m.View(), "Вход...")

	// ввод во время отправки игнорируется
	_, again := m.Update(keyPress("enter"))
	assert.Nil(t, again)

	result, ok := collect[LoginResult](cmd)
	require.True(t, ok)
	assert.Equal(t, LoginResult{Login: "admin"}, result)
}

func TestLoginModel_FailureClearsPassword(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	typeText(m, "admin")
	m.Update(keyPress("tab"))
	typeText(m, "wrong")
	m.submitting = true

	m.Update(LoginResult{Login: "admin", Err: service.ErrWrongPassword})

	assert.False(t, m.submitting)
	assert.Equal(t, "Неверный логин или пароль", m.errMsg)
	assert.Empty(t, m.fields[fieldPassword].Value())
	assert.Equal(t, "admin", m.fields[fieldLogin].Value())
	assert.Equal(t, fieldPassword, m.focus)
	assert.Contains(t, m.View(), "Неверный логин или пароль")
}

func TestLoginModel_FocusCycles(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	m.Update(keyPress("tab"))
	assert.Equal(t, fieldPassword, m.focus)
	m.Update(keyPress("down"))
	assert.Equal(t, fieldLogin, m.focus)
	m.Update(keyPress("shift+tab"))
	assert.Equal(t, fieldPassword, m.focus)
	m.Update(keyPress("up"))
	assert.Equal(t, fieldLogin, m.focus)
}

// Буквы j и k вводятся в поле, а не двигают фокус.
func TestLoginModel_LettersAreText(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	typeText(m, "jk")

	assert.Equal(t, "jk", m.fields[fieldLogin].Value())
	assert.Equal(t, fieldLogin, m.focus)
}

func TestLoginModel_MasksPassword(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	m.Update(keyPress("tab"))
	typeText(m, "secret")

	assert.NotContains(t, m.View(), "secret")
}
