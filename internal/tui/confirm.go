package tui

import "github.com/MKhiriev/site-settings/internal/app"

type confirmModel struct {
	name string
}

func (m confirmModel) View() string {
	content := app.NoticeConfirmDelete + "\n\"" + m.name + "\"\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
