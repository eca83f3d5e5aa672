// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as a unit.
package workers

import (
	"context"

	"github.com/MKhiriev/site-settings/internal/notify"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutine and returns immediately; the worker
// runs until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is safe to call on a worker that never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // spawn background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // cancel and wait
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Pinger reports whether the settings backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Notifier receives availability changes.
type Notifier interface {
	Push(severity notify.Severity, text string) uint64
}
