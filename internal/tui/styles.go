package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/site-settings/internal/icons"
	"github.com/MKhiriev/site-settings/internal/notify"
	"github.com/MKhiriev/site-settings/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	hiddenStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	noticeStyles = map[notify.Severity]lipgloss.Style{
		notify.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
		notify.Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")),
		notify.Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04")),
		notify.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true),
	}
)

func swatch(c models.ColorPair) string {
	s := lipgloss.NewStyle()
	if fg, ok := icons.TokenColor(c.Color); ok {
		s = s.Foreground(fg)
	}
	if bg, ok := icons.TokenColor(c.Bg); ok {
		s = s.Background(bg)
	}
	return s.Render(" Aa ")
}

func colorLabel(c models.ColorPair) string {
	if c.Label != "" {
		return c.Label
	}
	return c.Color + "/" + c.Bg
}

func visibilityLabel(visible bool) string {
	if visible {
		return "видимый"
	}
	return "скрытый"
}
