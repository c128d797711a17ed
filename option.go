package stockroom

import "github.com/rs/zerolog"

// Option configures a Manager at construction.
type Option func(*Manager)

// WithLogger attaches a structured logger. Managers log registration and
// teardown at debug level and queue-flush failures at error level; the
// default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = logger
	}
}

// WithMaxKinds bounds how many component kinds the manager accepts,
// including the two built-ins.
func WithMaxKinds(n int) Option {
	return func(m *Manager) {
		m.maxKinds = n
	}
}

// WithStoreCapacity bounds every store registered without an explicit
// WithCapacity, the built-in stores included.
func WithStoreCapacity(n int) Option {
	return func(m *Manager) {
		m.defaultCap = n
	}
}
