// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/icons"
	"github.com/MKhiriev/site-settings/internal/notify"
	"github.com/MKhiriev/site-settings/internal/store"
	"github.com/MKhiriev/site-settings/internal/validators"
	"github.com/MKhiriev/site-settings/models"
)

// LoadState is the fetch state of the social media editor.
type LoadState int

const (
	StateLoading LoadState = iota
	StateReady
)

func (s LoadState) String() string {
	if s == StateLoading {
		return "loading"
	}
	return "ready"
}

// ModalMode tells what the edit modal is doing.
type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalEditing
	ModalAdding
)

// ModalState is a snapshot of the edit modal. Item is the working copy; Err
// holds the last failed SaveEdit so the UI can show it inline.
type ModalState struct {
	Mode ModalMode
	Item models.ListItem
	Err  error
}

// Open reports whether the modal is shown.
func (m ModalState) Open() bool { return m.Mode != ModalClosed }

// SocialMediaEditor edits the "socialMedia" list and owns its load/save
// lifecycle. The default policy is confirmed.
type SocialMediaEditor struct {
	core      *listCore
	ids       IDGenerator
	notifier  Notifier
	validator validators.Validator

	uiMu          sync.RWMutex
	state         LoadState
	modal         ModalState
	pendingDelete string
}

// NewSocialMediaEditor returns an editor in StateLoading with an empty list.
// Call Load to fetch the stored list.
func NewSocialMediaEditor(st SettingsStore, opts ...Option) *SocialMediaEditor {
	o := buildOptions(PolicyConfirmed, SocialIDPrefix, opts)

	return &SocialMediaEditor{
		core:      newListCore(models.SocialMediaKey, st, o),
		ids:       o.ids,
		notifier:  o.notifier,
		validator: validators.NewItemValidator(icons.SocialIcons, SocialPalette),
		state:     StateLoading,
	}
}

// Items returns a copy of the current list.
func (e *SocialMediaEditor) Items() models.ItemList { return e.core.snapshot() }

// Version returns the last known stored version, 0 if unknown.
func (e *SocialMediaEditor) Version() int64 {
	v, _ := e.core.currentVersion()
	return v
}

// Policy returns the save policy in use.
func (e *SocialMediaEditor) Policy() SavePolicy { return e.core.policy }

// Pending reports whether a save is in flight.
func (e *SocialMediaEditor) Pending() bool { return e.core.isPending() }

// LastError returns the outcome of the most recent save.
func (e *SocialMediaEditor) LastError() error { return e.core.lastError() }

// State returns the load state.
func (e *SocialMediaEditor) State() LoadState {
	e.uiMu.RLock()
	defer e.uiMu.RUnlock()
	return e.state
}

// Modal returns the modal state.
func (e *SocialMediaEditor) Modal() ModalState {
	e.uiMu.RLock()
	defer e.uiMu.RUnlock()
	return e.modal
}

// PendingDelete returns the id awaiting delete confirmation.
func (e *SocialMediaEditor) PendingDelete() (string, bool) {
	e.uiMu.RLock()
	defer e.uiMu.RUnlock()
	return e.pendingDelete, e.pendingDelete != ""
}

// Load fetches the stored list. On success the list and its version replace
// the current state; on failure, or when the stored value is not a list, the
// current list is kept and an error is reported. The editor is ready
// afterwards in both cases.
func (e *SocialMediaEditor) Load(ctx context.Context) error {
	e.setState(StateLoading)
	defer e.setState(StateReady)

	e.core.writeMu.Lock()
	defer e.core.writeMu.Unlock()

	setting, err := e.core.store.Get(ctx, e.core.key)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			e.core.logger.Info().Msg("no stored list yet")
			return nil
		}

		e.core.logger.Err(err).Msg("loading list failed")
		e.notifier.Push(notify.Error, app.NoticeLoadFailed)
		return fmt.Errorf("load: %w", err)
	}

	items := setting.Items.Clone()
	if items == nil {
		items = models.ItemList{}
	}

	e.core.mu.Lock()
	e.core.items = items
	e.core.version = setting.Version
	e.core.versionKnown = setting.Version > 0
	e.core.mu.Unlock()

	e.core.logger.Debug().Int("items", len(items)).Int64("version", setting.Version).Msg("list loaded")
	return nil
}

// Save persists list and, once acknowledged under the confirmed policy,
// adopts it and calls OnChange. A failure leaves the list untouched and is
// reported as an error.
func (e *SocialMediaEditor) Save(ctx context.Context, list models.ItemList) error {
	return e.core.mutate(ctx, "save", func(models.ItemList) (models.ItemList, error) {
		next := list.Clone()
		if next == nil {
			next = models.ItemList{}
		}
		return next, nil
	})
}

// ToggleVisibility flips the platform's visibility and saves the list.
func (e *SocialMediaEditor) ToggleVisibility(ctx context.Context, id string) error {
	return e.core.mutate(ctx, "toggle visibility", func(list models.ItemList) (models.ItemList, error) {
		return toggleVisibility(list, id), nil
	})
}

// StartEdit opens the modal with a working copy of the item.
func (e *SocialMediaEditor) StartEdit(id string) error {
	item, ok := e.core.snapshot().Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	return e.openModal(ModalEditing, item)
}

// AddNewPlatform opens the modal with the default draft. The list is not
// touched until SaveEdit succeeds.
func (e *SocialMediaEditor) AddNewPlatform() error {
	return e.openModal(ModalAdding, DefaultSocialDraft(e.ids.Generate()))
}

func (e *SocialMediaEditor) openModal(mode ModalMode, item models.ListItem) error {
	e.uiMu.Lock()
	defer e.uiMu.Unlock()

	if e.modal.Open() {
		return ErrModalBusy
	}
	e.modal = ModalState{Mode: mode, Item: item}
	return nil
}

// PatchWorkingCopy edits the modal's working copy.
func (e *SocialMediaEditor) PatchWorkingCopy(patch models.ItemPatch) error {
	if err := e.validator.Validate(context.Background(), patch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	e.uiMu.Lock()
	defer e.uiMu.Unlock()

	if !e.modal.Open() {
		return ErrModalClosed
	}
	e.modal.Item = patch.Apply(e.modal.Item)
	return nil
}

// CancelEdit closes the modal and discards the working copy.
func (e *SocialMediaEditor) CancelEdit() {
	e.uiMu.Lock()
	defer e.uiMu.Unlock()
	e.modal = ModalState{}
}

// SaveEdit saves the working copy: appended in adding mode, replacing the
// item with the same id in editing mode. The modal closes only on success;
// on failure it stays open with the working copy and the error.
func (e *SocialMediaEditor) SaveEdit(ctx context.Context) error {
	modal := e.Modal()
	if !modal.Open() {
		return ErrModalClosed
	}

	working := modal.Item
	err := e.core.mutate(ctx, "save edit", func(list models.ItemList) (models.ItemList, error) {
		if modal.Mode == ModalAdding {
			return appendItem(list, working), nil
		}
		if list.IndexOf(working.ID) < 0 {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, working.ID)
		}
		return replaceItem(list, working), nil
	})

	e.uiMu.Lock()
	if err != nil {
		e.modal.Err = err
	} else {
		e.modal = ModalState{}
	}
	e.uiMu.Unlock()

	if err != nil {
		return err
	}

	if modal.Mode == ModalAdding {
		e.notifier.Push(notify.Success, app.NoticePlatformAdded)
	} else {
		e.notifier.Push(notify.Success, app.NoticePlatformUpdated)
	}
	return nil
}

// RequestDelete asks for confirmation before deleting the item. The UI shows
// the prompt and answers with ConfirmDelete or CancelDelete.
func (e *SocialMediaEditor) RequestDelete(id string) error {
	if _, ok := e.core.snapshot().Find(id); !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	e.uiMu.Lock()
	defer e.uiMu.Unlock()
	e.pendingDelete = id
	return nil
}

// ConfirmDelete removes the item awaiting confirmation and saves the list.
func (e *SocialMediaEditor) ConfirmDelete(ctx context.Context) error {
	e.uiMu.Lock()
	id := e.pendingDelete
	e.pendingDelete = ""
	e.uiMu.Unlock()

	if id == "" {
		return ErrNoPendingDelete
	}

	if err := e.core.mutate(ctx, "delete item", func(list models.ItemList) (models.ItemList, error) {
		return removeItem(list, id), nil
	}); err != nil {
		return err
	}

	e.notifier.Push(notify.Success, app.NoticePlatformDeleted)
	return nil
}

// CancelDelete drops the pending delete request.
func (e *SocialMediaEditor) CancelDelete() {
	e.uiMu.Lock()
	defer e.uiMu.Unlock()
	e.pendingDelete = ""
}

func (e *SocialMediaEditor) setState(s LoadState) {
	e.uiMu.Lock()
	defer e.uiMu.Unlock()
	e.state = s
}
