package repository

import "github.com/okian/paddock/pkg/logger"

// LoaderOption applies a configuration option to the Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger used to report loads.
func WithLoaderLogger(l logger.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// WithEventNormalizer replaces the event name normalization applied to
// every row.
func WithEventNormalizer(fn func(string) string) LoaderOption {
	return func(ld *Loader) {
		if fn != nil {
			ld.normalize = fn
		}
	}
}

// SessionOption applies a configuration option to the SessionStore.
type SessionOption func(*SessionStore)

// WithCapacity sets the maximum number of sessions to keep in memory.
// If capacity <= 0 the store is unbounded.
func WithCapacity(capacity int) SessionOption {
	return func(s *SessionStore) {
		s.capacity = capacity
	}
}

// WithSessionLogger sets the logger used to report evictions.
func WithSessionLogger(l logger.Logger) SessionOption {
	return func(s *SessionStore) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(fn func() string) SessionOption {
	return func(s *SessionStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}
