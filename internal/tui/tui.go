// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the settings editor: an
// administrator login page, a menu and one page per list editor, with a
// notification banner on top.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-settings/internal/editor"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/models"
)

// Dependencies are the services and editors the pages work with.
type Dependencies struct {
	Auth service.ClientAuthService
	Info service.ClientInfoService

	// Store backs the sections page, which loads the list and owns the
	// section editor built with SectionOptions.
	Store          editor.SettingsStore
	SectionOptions []editor.Option

	Social *editor.SocialMediaEditor

	Notices   NoticeSource
	BuildInfo models.AppBuildInfo
	Logger    *logger.Logger
}

type TUI struct {
	deps   Dependencies
	logger *logger.Logger
}

func New(deps Dependencies) *TUI {
	l := deps.Logger
	if l == nil {
		l = logger.Nop()
	}
	return &TUI{deps: deps, logger: l.Component("tui")}
}

func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageLogin:    NewLoginModel(ctx, t.deps.Auth),
		pageMenu:     NewMenuModel(),
		pageSections: NewSectionsModel(ctx, t.deps.Store, t.deps.SectionOptions...),
		pageSocial:   NewSocialModel(ctx, t.deps.Social),
	}

	start := pageLogin
	if t.deps.Auth != nil && t.deps.Auth.Authenticated() {
		start = pageMenu
	}

	return NewRootModel(ctx, pages, start, t.deps.Notices, t.deps.Info, t.deps.BuildInfo)
}

// Run shows the TUI until the user quits or ctx is cancelled. Quitting before
// logging in returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui stopped with error")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser && !result.authenticated {
		return ErrUserQuit
	}

	t.logger.Info().Msg("tui closed")
	return nil
}
