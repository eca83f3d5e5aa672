// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/notify"
	"github.com/MKhiriev/site-settings/internal/store"
	"github.com/MKhiriev/site-settings/models"
)

// listCore is the state and save machinery shared by both editors.
//
// writeMu serializes mutations: each one derives from the latest list,
// persists and adopts before the next starts. mu guards the fields read by
// the UI so readers never wait for the network.
type listCore struct {
	key      string
	store    SettingsStore
	policy   SavePolicy
	notifier Notifier
	onChange func(models.ItemList)
	logger   *logger.Logger

	writeMu sync.Mutex

	mu           sync.RWMutex
	items        models.ItemList
	version      int64
	versionKnown bool
	pending      int
	lastErr      error
}

func newListCore(key string, st SettingsStore, o options) *listCore {
	return &listCore{
		key:      key,
		store:    st,
		policy:   o.policy,
		notifier: o.notifier,
		onChange: o.onChange,
		logger:   &logger.Logger{Logger: o.logger.Component("editor").With().Str("key", key).Logger()},
		items:    models.ItemList{},
	}
}

// snapshot returns a copy of the current list.
func (c *listCore) snapshot() models.ItemList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.Clone()
}

func (c *listCore) currentVersion() (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version, c.versionKnown
}

func (c *listCore) isPending() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pending > 0
}

func (c *listCore) lastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// setData replaces the list without persisting. A non-positive version
// means the stored version is unknown and writes go unconditionally.
func (c *listCore) setData(items models.ItemList, version int64) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	c.items = items.Clone()
	if c.items == nil {
		c.items = models.ItemList{}
	}
	c.version = version
	c.versionKnown = version > 0
	c.mu.Unlock()
}

// adopt makes list the current state and tells the owner.
func (c *listCore) adopt(list models.ItemList) {
	c.mu.Lock()
	c.items = list
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(list.Clone())
	}
}

// mutate derives a new list from the current one and saves it under the
// editor's policy. derive gets its own copy and may return an error to abort
// before anything is written.
func (c *listCore) mutate(ctx context.Context, op string, derive func(models.ItemList) (models.ItemList, error)) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	next, err := derive(c.snapshot())
	if err != nil {
		return err
	}

	if c.policy == PolicyOptimistic {
		c.adopt(next)
	}

	if err := c.persist(ctx, op, next); err != nil {
		return err
	}

	if c.policy == PolicyConfirmed {
		c.adopt(next)
	}

	return nil
}

func (c *listCore) persist(ctx context.Context, op string, next models.ItemList) error {
	var expected *int64
	c.mu.Lock()
	if c.versionKnown {
		v := c.version
		expected = &v
	}
	c.pending++
	c.mu.Unlock()

	result, err := c.store.Update(ctx, c.key, next, expected)
	if err == nil && !result.Updated {
		err = ErrSaveRejected
	}

	c.mu.Lock()
	c.pending--
	if err == nil {
		c.version = result.Version
		c.versionKnown = result.Version > 0
	}
	c.lastErr = err
	c.mu.Unlock()

	if err != nil {
		c.reportSaveFailure(op, err)
		if errors.Is(err, store.ErrVersionConflict) {
			c.refreshAfterConflict(ctx)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	c.logger.Debug().Str("op", op).Int64("version", result.Version).Int("items", len(next)).Msg("list saved")
	return nil
}

// refreshAfterConflict re-reads the stored version so the next write does not
// repeat the stale one. The optimistic policy keeps the local list, which the
// next write then carries over the stored one. The confirmed policy adopts the
// stored list, since nothing local was shown ahead of the backend. If the
// read fails, an optimistic editor falls back to an unconditional next write.
func (c *listCore) refreshAfterConflict(ctx context.Context) {
	latest, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.logger.Warn().Err(err).Msg("re-reading version after conflict failed")
		if c.policy == PolicyOptimistic {
			c.mu.Lock()
			c.versionKnown = false
			c.mu.Unlock()
		}
		return
	}

	c.mu.Lock()
	c.version = latest.Version
	c.versionKnown = latest.Version > 0
	c.mu.Unlock()

	if c.policy == PolicyConfirmed {
		items := latest.Items.Clone()
		if items == nil {
			items = models.ItemList{}
		}
		c.adopt(items)
	}

	c.logger.Info().Int64("version", latest.Version).Msg("version refreshed after conflict")
}

func (c *listCore) reportSaveFailure(op string, err error) {
	severity := notify.Error
	if c.policy == PolicyOptimistic {
		severity = notify.Warning
	}

	text := app.NoticeSaveFailed
	if errors.Is(err, store.ErrVersionConflict) {
		text = app.NoticeSaveConflict
	}

	c.logger.Err(err).Str("op", op).Str("policy", string(c.policy)).Msg("saving list failed")
	c.notifier.Push(severity, text)
}
