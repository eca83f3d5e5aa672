package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit and ctrl+x notice dismissal
// 3) handles NavigateTo messages
// 4) renders the notification banner above the page
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	pages   map[string]tea.Model
	current string

	notices   NoticeSource
	info      service.ClientInfoService
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	serverVersion *models.VersionResponse
	serverErr     error

	quitByUser    bool
	authenticated bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPage string, notices NoticeSource, info service.ClientInfoService, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:           ctx,
		pages:         pages,
		current:       startPage,
		notices:       notices,
		info:          info,
		buildInfo:     buildInfo,
		authenticated: startPage != pageLogin,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForNotices(r.notices), tickNotices()}
	if page := r.page(); page != nil {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.dismiss):
			if r.notices != nil {
				if active := r.notices.Active(); len(active) > 0 {
					r.notices.Dismiss(active[0].ID)
				}
			}
			return r, nil
		case key.Matches(keyMsg, keys.version):
			if r.current == pageMenu && !r.showBuildInfo {
				r.showBuildInfo = true
				r.serverVersion, r.serverErr = nil, nil
				return r, r.cmdServerVersion()
			}
		case key.Matches(keyMsg, keys.esc):
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case noticesChangedMsg:
		return r, waitForNotices(r.notices)

	case noticeTickMsg:
		return r, tickNotices()

	case serverVersionMsg:
		if msg.err != nil {
			r.serverErr = msg.err
		} else {
			v := msg.version
			r.serverVersion = &v
		}
		return r, nil

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, next.Init()

	case LoginResult:
		// Finalize the login flow on success.
		if msg.Err == nil {
			r.authenticated = true
			if menu, ok := r.pages[pageMenu]; ok {
				r.pages[pageMenu], _ = menu.Update(msg)
			}
			return r, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
	}

	page := r.page()
	if page == nil {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	banner := ""
	if r.notices != nil {
		banner = renderNotices(r.notices.Active())
	}

	if r.showBuildInfo {
		return appStyle.Render(banner + renderBuildInfoWindow(r.buildInfo, r.serverVersion, r.serverErr))
	}
	page := r.page()
	if page == nil {
		return appStyle.Render(banner + renderPage("TUI", "", ""))
	}
	return appStyle.Render(banner + page.View())
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	if r.info == nil {
		return nil
	}
	ctx := r.ctx
	info := r.info

	return func() tea.Msg {
		v, err := info.ServerVersion(ctx)
		return serverVersionMsg{version: v, err: err}
	}
}
