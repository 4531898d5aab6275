package memload

import (
	"sync"

	"github.com/bft-labs/memload/pkg/registry"
)

// Option configures optional behavior of a Registry.
type Option func(*options)

type options struct {
	logger          Logger
	locker          sync.Locker
	eventHandler    EventHandler
	initialCapacity int
	decompress      bool
}

func defaultOptions() options {
	return options{
		initialCapacity: registry.DefaultInitialCapacity,
		eventHandler:    BaseEventHandler{},
	}
}

// WithLogger sets a logger. If not provided, nothing is logged.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLocker sets the lock serializing registrations, lookups and teardown.
// Hosts that already hold a runtime-wide domain lock around those calls can
// pass it here instead of taking a second one.
func WithLocker(locker sync.Locker) Option {
	return func(o *options) {
		o.locker = locker
	}
}

// WithEventHandler sets a handler for registry events.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		if handler != nil {
			o.eventHandler = handler
		}
	}
}

// WithInitialCapacity sets how many domains the store holds before it first
// grows.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithDecompression enables decoding of XALZ-compressed images on Register.
func WithDecompression(enabled bool) Option {
	return func(o *options) {
		o.decompress = enabled
	}
}
