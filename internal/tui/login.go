// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/models"
)

const (
	fieldLogin = iota
	fieldPassword
	fieldCount
)

var loginLabels = [fieldCount]string{"Логин", "Пароль"}

// LoginModel asks for the administrator credentials. A successful attempt
// yields a [LoginResult] that [RootModel] turns into navigation to the menu.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	fields     [fieldCount]textinput.Model
	focus      int
	spinner    spinner.Model
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	login := textinput.New()
	login.Placeholder = "admin"
	login.CharLimit = 64
	login.Width = 32
	login.Focus()

	password := textinput.New()
	password.CharLimit = 256
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &LoginModel{
		ctx:     ctx,
		auth:    auth,
		fields:  [fieldCount]textinput.Model{login, password},
		spinner: s,
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			m.fields[fieldPassword].SetValue("")
			m.setFocus(fieldPassword)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.nextField):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(msg, keys.prevField):
			m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

// submit on the login field with an empty password just moves on to it.
func (m *LoginModel) submit() tea.Cmd {
	creds := models.Credentials{
		Login:    strings.TrimSpace(m.fields[fieldLogin].Value()),
		Password: m.fields[fieldPassword].Value(),
	}

	if m.focus == fieldLogin && creds.Login != "" && creds.Password == "" {
		m.setFocus(fieldPassword)
		return nil
	}
	if creds.Login == "" || creds.Password == "" {
		m.errMsg = "Логин и пароль обязательны"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, auth := m.ctx, m.auth
	return tea.Batch(func() tea.Msg {
		return LoginResult{Login: creds.Login, Err: auth.Login(ctx, creds)}
	}, m.spinner.Tick)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	for i, f := range m.fields {
		b.WriteString(cursorMark(i == m.focus) + " ")
		b.WriteString(padText(loginLabels[i], 8))
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(m.spinner.View() + " Вход...")
	} else {
		b.WriteString("[Войти]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("Ошибка: "+m.errMsg))
	}

	return renderPage("ВХОД АДМИНИСТРАТОРА", b.String(), "tab: след. поле │ enter: подтвердить │ ctrl+c: выход")
}

func (m *LoginModel) setFocus(i int) {
	m.fields[m.focus].Blur()
	m.focus = i
	m.fields[m.focus].Focus()
}
