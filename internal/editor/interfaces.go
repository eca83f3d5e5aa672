// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package editor implements the list-backed settings editors: the section
// list, controlled by its parent, and the social media list, which owns its
// load/save lifecycle.
//
// Every mutation clones the current list, derives a new one with a pure
// function from list.go, writes the whole list through [SettingsStore] and
// adopts it according to the editor's [SavePolicy]. Mutations of one editor
// are serialized, so concurrent edits never overwrite each other.
package editor

//go:generate mockgen -source=interfaces.go -destination=../mock/editor_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/site-settings/internal/notify"
	"github.com/MKhiriev/site-settings/models"
)

// SettingsStore reads and replaces whole list settings.
type SettingsStore interface {
	Get(ctx context.Context, key string) (models.ListSetting, error)
	Update(ctx context.Context, key string, items models.ItemList, expectedVersion *int64) (models.UpdateResult, error)
}

// Notifier receives user-facing outcomes. It must not block.
type Notifier interface {
	Push(severity notify.Severity, text string) uint64
}

// IDGenerator returns a fresh item id on each call.
type IDGenerator interface {
	Generate() string
}
