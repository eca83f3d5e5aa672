// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/notify"
)

const defaultHealthInterval = 30 * time.Second

// HealthWatcher polls the backend and pushes a notification whenever its
// availability changes. The first probe runs right after Start; a backend
// that is down at that moment is reported too.
type HealthWatcher struct {
	pinger   Pinger
	notifier Notifier
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	stateMu sync.RWMutex
	known   bool
	up      bool
}

// NewHealthWatcher returns an idle watcher. A non-positive interval defaults
// to 30 seconds.
func NewHealthWatcher(pinger Pinger, notifier Notifier, interval time.Duration, log *logger.Logger) *HealthWatcher {
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	if log == nil {
		log = logger.Nop()
	}

	return &HealthWatcher{
		pinger:   pinger,
		notifier: notifier,
		interval: interval,
		logger:   log.Component("health-watcher"),
	}
}

// Start implements Worker. It stops any previous run first.
func (w *HealthWatcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.probe(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.probe(jobCtx)
			}
		}
	}()
}

// Stop implements Worker.
func (w *HealthWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Status returns the last observed availability. known is false until the
// first probe finished.
func (w *HealthWatcher) Status() (up, known bool) {
	w.stateMu.RLock()
	defer w.stateMu.RUnlock()
	return w.up, w.known
}

func (w *HealthWatcher) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.pinger.Ping(probeCtx)
	if ctx.Err() != nil {
		// stopped mid-probe, the result says nothing about the backend
		return
	}
	up := err == nil

	w.stateMu.Lock()
	wasKnown, wasUp := w.known, w.up
	w.known, w.up = true, up
	w.stateMu.Unlock()

	switch {
	case !up && (!wasKnown || wasUp):
		w.logger.Warn().Err(err).Msg("settings backend is unavailable")
		w.notifier.Push(notify.Warning, app.NoticeServerDown)
	case up && wasKnown && !wasUp:
		w.logger.Info().Msg("settings backend is available again")
		w.notifier.Push(notify.Info, app.NoticeServerUp)
	}
}
