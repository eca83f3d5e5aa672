// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/site-settings/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, server *models.VersionResponse, serverErr error) string {
	var b strings.Builder

	b.WriteString("Название приложения: site-settings\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")

	b.WriteString("Сервер: ")
	switch {
	case serverErr != nil:
		b.WriteString(humanizeError(serverErr))
	case server == nil:
		b.WriteString("...")
	default:
		b.WriteString(valueOrNA(server.Version))
		b.WriteString(" (")
		b.WriteString(valueOrNA(server.Commit))
		b.WriteString(")")
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
