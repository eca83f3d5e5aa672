package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/mock"
	"github.com/MKhiriev/site-settings/internal/notify"
	"github.com/MKhiriev/site-settings/models"
)

// stubPage records the messages it receives.
type stubPage struct {
	name string
	got  []tea.Msg
	init int
}

func (p *stubPage) Init() tea.Cmd { p.init++; return nil }

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}

func (p *stubPage) View() string { return "page:" + p.name }

func newTestRoot(start string, notices NoticeSource) (RootModel, map[string]*stubPage) {
	stubs := map[string]*stubPage{
		pageLogin:    {name: pageLogin},
		pageMenu:     {name: pageMenu},
		pageSections: {name: pageSections},
	}
	pages := map[string]tea.Model{}
	for k, v := range stubs {
		pages[k] = v
	}
	return NewRootModel(context.Background(), pages, start, notices, nil, models.NewAppBuildInfo("v1.2.3", "", "abc")), stubs
}

func TestRootModel_Navigate(t *testing.T) {
	r, stubs := newTestRoot(pageMenu, nil)

	m, _ := r.Update(NavigateTo{Page: pageSections})
	r = m.(RootModel)

	assert.Equal(t, pageSections, r.current)
	assert.Equal(t, 1, stubs[pageSections].init)
	assert.Contains(t, r.View(), "page:sections")

	m, _ = r.Update(NavigateTo{Page: "nowhere"})
	assert.Equal(t, pageSections, m.(RootModel).current)
}

func TestRootModel_NavigateWithPayload(t *testing.T) {
	r, stubs := newTestRoot(pageMenu, nil)

	m, cmd := r.Update(NavigateTo{Page: pageSections, Payload: opDoneMsg{op: "x"}})
	assert.Equal(t, 0, stubs[pageSections].init)
	assert.Equal(t, opDoneMsg{op: "x"}, run(cmd))
	assert.Equal(t, pageSections, m.(RootModel).current)
}

func TestRootModel_DelegatesToCurrentPage(t *testing.T) {
	r, stubs := newTestRoot(pageMenu, nil)

	r.Update(keyPress("j"))

	require.Len(t, stubs[pageMenu].got, 1)
	assert.Empty(t, stubs[pageLogin].got)
}

func TestRootModel_LoginSuccessOpensMenu(t *testing.T) {
	r, stubs := newTestRoot(pageLogin, nil)
	require.False(t, r.authenticated)

	m, cmd := r.Update(LoginResult{Login: "admin"})
	r = m.(RootModel)

	assert.True(t, r.authenticated)
	assert.Equal(t, NavigateTo{Page: pageMenu}, run(cmd))
	require.Len(t, stubs[pageMenu].got, 1, "menu learns the login")
	assert.Empty(t, stubs[pageLogin].got)
}

func TestRootModel_LoginFailureStaysOnLogin(t *testing.T) {
	r, stubs := newTestRoot(pageLogin, nil)

	m, _ := r.Update(LoginResult{Login: "admin", Err: errors.New("nope")})

	assert.False(t, m.(RootModel).authenticated)
	require.Len(t, stubs[pageLogin].got, 1)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	r, _ := newTestRoot(pageMenu, nil)

	m, cmd := r.Update(keyPress("ctrl+c"))

	assert.True(t, m.(RootModel).quitByUser)
	assert.Equal(t, tea.Quit(), run(cmd))
}

func TestRootModel_BuildInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	info := mock.NewMockClientInfoService(ctrl)
	info.EXPECT().ServerVersion(gomock.Any()).Return(models.VersionResponse{Version: "v9", Commit: "fff"}, nil)

	r, stubs := newTestRoot(pageMenu, nil)
	r.info = info

	m, cmd := r.Update(keyPress("v"))
	r = m.(RootModel)
	require.True(t, r.showBuildInfo)

	m, _ = r.Update(run(cmd))
	r = m.(RootModel)
	out := r.View()
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "v9")

	// пока окно открыто, клавиши страницам не доходят
	r.Update(keyPress("j"))
	assert.Empty(t, stubs[pageMenu].got)

	m, _ = r.Update(keyPress("esc"))
	assert.False(t, m.(RootModel).showBuildInfo)
}

func TestRootModel_BuildInfoOnlyFromMenu(t *testing.T) {
	r, stubs := newTestRoot(pageLogin, nil)

	m, _ := r.Update(keyPress("v"))

	assert.False(t, m.(RootModel).showBuildInfo)
	assert.Len(t, stubs[pageLogin].got, 1, "v is typed into the login form")
}

func TestRootModel_NoticeBanner(t *testing.T) {
	q := notify.NewQueue(time.Minute, 5)
	r, _ := newTestRoot(pageMenu, q)

	q.Push(notify.Success, app.NoticePlatformDeleted)
	q.Push(notify.Warning, "Сервер настроек недоступен")

	out := r.View()
	assert.Contains(t, out, app.NoticePlatformDeleted)
	assert.Contains(t, out, "Сервер настроек недоступен")

	r.Update(keyPress("ctrl+x"))

	assert.Equal(t, 1, q.Len())
	assert.NotContains(t, r.View(), app.NoticePlatformDeleted)
}

func TestRootModel_NoticeSubscription(t *testing.T) {
	q := notify.NewQueue(time.Minute, 5)
	r, _ := newTestRoot(pageMenu, q)

	cmd := waitForNotices(q)
	q.Push(notify.Info, "x")
	assert.Equal(t, noticesChangedMsg{}, run(cmd))

	_, next := r.Update(noticesChangedMsg{})
	assert.NotNil(t, next, "subscription is re-armed")
}
