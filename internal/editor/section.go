// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/site-settings/internal/icons"
	"github.com/MKhiriev/site-settings/internal/utils"
	"github.com/MKhiriev/site-settings/internal/validators"
	"github.com/MKhiriev/site-settings/models"
)

// SectionEditor edits the "sections" list. The parent owns loading: it hands
// in the list with SetData and gets every adopted list through the
// OnChange callback. The default policy is optimistic.
type SectionEditor struct {
	core      *listCore
	ids       IDGenerator
	validator validators.Validator

	// form state, never persisted
	uiMu      sync.RWMutex
	editingID string
	addOpen   bool
	draft     models.ListItem
}

// NewSectionEditor returns an editor over items at the given stored version.
// onUpdate may be nil.
func NewSectionEditor(st SettingsStore, items models.ItemList, version int64, onUpdate func(models.ItemList), opts ...Option) *SectionEditor {
	o := buildOptions(PolicyOptimistic, "", opts)
	if onUpdate != nil {
		o.onChange = onUpdate
	}

	e := &SectionEditor{
		core:      newListCore(models.SectionsKey, st, o),
		ids:       o.ids,
		validator: validators.NewItemValidator(icons.SectionIcons, SectionPalette),
		draft:     DefaultSectionDraft(),
	}
	e.core.setData(items, version)

	return e
}

// SetData replaces the list after the parent reloaded it. Nothing is
// persisted.
func (e *SectionEditor) SetData(items models.ItemList, version int64) {
	e.core.setData(items, version)
}

// Items returns a copy of the current list.
func (e *SectionEditor) Items() models.ItemList { return e.core.snapshot() }

// Version returns the last known stored version, 0 if unknown.
func (e *SectionEditor) Version() int64 {
	v, _ := e.core.currentVersion()
	return v
}

// Policy returns the save policy in use.
func (e *SectionEditor) Policy() SavePolicy { return e.core.policy }

// Pending reports whether a save is in flight.
func (e *SectionEditor) Pending() bool { return e.core.isPending() }

// LastError returns the outcome of the most recent save.
func (e *SectionEditor) LastError() error { return e.core.lastError() }

// ToggleVisibility flips the item's visibility and persists the list. An
// absent id leaves the list as is but still persists it.
func (e *SectionEditor) ToggleVisibility(ctx context.Context, id string) error {
	return e.core.mutate(ctx, "toggle visibility", func(list models.ItemList) (models.ItemList, error) {
		return toggleVisibility(list, id), nil
	})
}

// DeleteItem removes the item and persists the list. There is no
// confirmation step.
func (e *SectionEditor) DeleteItem(ctx context.Context, id string) error {
	err := e.core.mutate(ctx, "delete item", func(list models.ItemList) (models.ItemList, error) {
		return removeItem(list, id), nil
	})

	e.uiMu.Lock()
	if e.editingID == id {
		e.editingID = ""
	}
	e.uiMu.Unlock()

	return err
}

// UpdateItem applies a typed patch to the item and persists the list.
// Patches with an icon or color outside the section catalog are rejected.
func (e *SectionEditor) UpdateItem(ctx context.Context, id string, patch models.ItemPatch) error {
	if err := e.validator.Validate(ctx, patch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	return e.core.mutate(ctx, "update item", func(list models.ItemList) (models.ItemList, error) {
		return patchItem(list, id, patch), nil
	})
}

// AddItem appends the add-form draft under a fresh id and persists the list.
// Both names are required; otherwise ErrDraftIncomplete is returned and
// nothing changes. The form is reset and closed once the item is adopted.
func (e *SectionEditor) AddItem(ctx context.Context) error {
	draft := e.Draft()
	if err := e.validator.Validate(ctx, draft, validators.FieldName, validators.FieldNameEn); err != nil {
		return fmt.Errorf("%w: %w", ErrDraftIncomplete, err)
	}

	err := e.core.mutate(ctx, "add item", func(list models.ItemList) (models.ItemList, error) {
		item := draft
		item.ID = e.freshID(list)
		return appendItem(list, item), nil
	})

	// the optimistic policy has already adopted the item even if saving failed
	if err == nil || e.core.policy == PolicyOptimistic {
		e.uiMu.Lock()
		e.draft = DefaultSectionDraft()
		e.addOpen = false
		e.uiMu.Unlock()
	}

	return err
}

const maxIDAttempts = 8

// freshID returns a generated id that no item in list uses.
func (e *SectionEditor) freshID(list models.ItemList) string {
	id := e.ids.Generate()
	for attempt := 1; list.IndexOf(id) >= 0; attempt++ {
		if attempt >= maxIDAttempts {
			return id + "-" + utils.NewUUIDGenerator().Generate()
		}
		id = e.ids.Generate()
	}
	return id
}

// StartEdit switches the row with the given id into inline editing.
func (e *SectionEditor) StartEdit(id string) {
	e.uiMu.Lock()
	defer e.uiMu.Unlock()
	e.editingID = id
}

// FinishEdit leaves inline editing. Field changes were saved as they were
// made, so there is nothing to persist.
func (e *SectionEditor) FinishEdit() {
	e.uiMu.Lock()
	defer e.uiMu.Unlock()
	e.editingID = ""
}

// EditingID returns the id being edited inline, or "".
func (e *SectionEditor) EditingID() string {
	e.uiMu.RLock()
	defer e.uiMu.RUnlock()
	return e.editingID
}

// OpenAddForm shows the add panel.
func (e *SectionEditor) OpenAddForm() {
	e.uiMu.Lock()
	defer e.uiMu.Unlock()
	e.addOpen = true
}

// CloseAddForm hides the add panel and keeps the draft.
func (e *SectionEditor) CloseAddForm() {
	e.uiMu.Lock()
	defer e.uiMu.Unlock()
	e.addOpen = false
}

// AddFormOpen reports whether the add panel is shown.
func (e *SectionEditor) AddFormOpen() bool {
	e.uiMu.RLock()
	defer e.uiMu.RUnlock()
	return e.addOpen
}

// PatchDraft edits the add-form draft. Nothing is persisted.
func (e *SectionEditor) PatchDraft(patch models.ItemPatch) error {
	if err := e.validator.Validate(context.Background(), patch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	e.uiMu.Lock()
	defer e.uiMu.Unlock()
	e.draft = patch.Apply(e.draft)
	return nil
}

// Draft returns the add-form draft.
func (e *SectionEditor) Draft() models.ListItem {
	e.uiMu.RLock()
	defer e.uiMu.RUnlock()
	return e.draft
}
