package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-settings/internal/notify"
)

const noticeTick = time.Second

// NoticeSource is the notification queue as seen by the banner.
type NoticeSource interface {
	Active() []notify.Notification
	Dismiss(id uint64)
	Updates() <-chan struct{}
}

// waitForNotices blocks until the queue signals a change.
func waitForNotices(src NoticeSource) tea.Cmd {
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		<-src.Updates()
		return noticesChangedMsg{}
	}
}

// tickNotices re-renders the banner so expired notices disappear.
func tickNotices() tea.Cmd {
	return tea.Tick(noticeTick, func(time.Time) tea.Msg { return noticeTickMsg{} })
}

var noticeMarks = map[notify.Severity]string{
	notify.Info:    "i",
	notify.Success: "✓",
	notify.Warning: "!",
	notify.Error:   "✗",
}

func renderNotices(active []notify.Notification) string {
	if len(active) == 0 {
		return ""
	}

	var b strings.Builder
	for _, n := range active {
		style := noticeStyles[n.Severity]
		b.WriteString("  ")
		b.WriteString(style.Render("[" + noticeMarks[n.Severity] + "] " + n.Text))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
