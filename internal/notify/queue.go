// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify holds user-facing notifications raised by the editors and
// background workers. The queue never blocks the caller: producers push and
// move on, the UI polls [Queue.Active] or waits on [Queue.Updates].
package notify

import (
	"sync"
	"time"
)

// Severity ranks a notification.
type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is one queued message.
type Notification struct {
	ID        uint64
	Severity  Severity
	Text      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Queue is a bounded, TTL-expiring list of notifications. It is safe for
// concurrent use.
type Queue struct {
	mu     sync.Mutex
	items  []Notification
	nextID uint64

	ttl   time.Duration
	limit int
	now   func() time.Time

	updates chan struct{}
}

// Option configures a [Queue].
type Option func(*Queue)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		q.now = now
	}
}

// NewQueue returns a queue that keeps at most limit notifications, each for
// ttl. A non-positive limit means 1.
func NewQueue(ttl time.Duration, limit int, opts ...Option) *Queue {
	if limit < 1 {
		limit = 1
	}

	q := &Queue{
		ttl:     ttl,
		limit:   limit,
		now:     time.Now,
		updates: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Push adds a notification and returns its id. When the queue is full the
// oldest notification is dropped.
func (q *Queue) Push(severity Severity, text string) uint64 {
	q.mu.Lock()

	now := q.now()
	q.pruneLocked(now)

	q.nextID++
	q.items = append(q.items, Notification{
		ID:        q.nextID,
		Severity:  severity,
		Text:      text,
		CreatedAt: now,
		ExpiresAt: now.Add(q.ttl),
	})
	if over := len(q.items) - q.limit; over > 0 {
		q.items = append(q.items[:0], q.items[over:]...)
	}
	id := q.nextID

	q.mu.Unlock()

	q.signal()
	return id
}

// Dismiss removes the notification with the given id. Unknown ids are
// ignored.
func (q *Queue) Dismiss(id uint64) {
	q.mu.Lock()
	removed := false
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			removed = true
			break
		}
	}
	q.mu.Unlock()

	if removed {
		q.signal()
	}
}

// Active returns the unexpired notifications, oldest first.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pruneLocked(q.now())

	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of unexpired notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pruneLocked(q.now())
	return len(q.items)
}

// Updates is signalled after every Push and successful Dismiss. Signals are
// coalesced, so a slow reader sees at most one pending signal.
func (q *Queue) Updates() <-chan struct{} {
	return q.updates
}

func (q *Queue) pruneLocked(now time.Time) {
	kept := q.items[:0]
	for _, n := range q.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	q.items = kept
}

func (q *Queue) signal() {
	select {
	case q.updates <- struct{}{}:
	default:
	}
}
