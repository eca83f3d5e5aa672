package editor

import (
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/notify"
	"github.com/MKhiriev/site-settings/internal/utils"
	"github.com/MKhiriev/site-settings/models"
)

type options struct {
	policy   SavePolicy
	notifier Notifier
	ids      IDGenerator
	onChange func(models.ItemList)
	logger   *logger.Logger
}

// Option configures an editor.
type Option func(*options)

// WithPolicy overrides the editor's default save policy.
func WithPolicy(policy SavePolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithNotifier routes outcomes to n. Without it outcomes are only logged.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithIDGenerator replaces the UUIDv7 id source.
func WithIDGenerator(ids IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithOnChange registers a callback invoked with every adopted list. The
// callback runs while the editor holds its write lock, so it must not call
// mutating editor methods synchronously.
func WithOnChange(fn func(models.ItemList)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// WithLogger sets the editor logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(defaultPolicy SavePolicy, idPrefix string, opts []Option) options {
	o := options{
		policy: defaultPolicy,
		ids:    utils.NewPrefixedUUIDGenerator(idPrefix),
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.notifier == nil {
		o.notifier = discardNotifier{}
	}

	return o
}

type discardNotifier struct{}

func (discardNotifier) Push(notify.Severity, string) uint64 { return 0 }
