package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-settings/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, if set, is
// delivered to the new page as its first message instead of Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page when the login call returns.
type LoginResult struct {
	Login string
	Err   error
}

type sectionsLoadedMsg struct {
	setting models.ListSetting
	err     error
}

type socialLoadedMsg struct {
	err error
}

// opDoneMsg reports the outcome of one editor mutation.
type opDoneMsg struct {
	op  string
	err error
}

type noticesChangedMsg struct{}

type noticeTickMsg struct{}

type serverVersionMsg struct {
	version models.VersionResponse
	err     error
}

type copiedMsg struct {
	url string
	err error
}
