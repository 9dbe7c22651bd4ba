package store

import (
	"log/slog"

	"github.com/thenoetrevino/grid/internal/idgen"
)

// Option is a functional option for configuring a Store
type Option func(*storeConfig)

// storeConfig holds the configuration for Store initialization
type storeConfig struct {
	ids     idgen.Generator
	logger  *slog.Logger
	initial *State
}

// WithIDGenerator sets the generator used for new record ids
func WithIDGenerator(ids idgen.Generator) Option {
	return func(cfg *storeConfig) {
		cfg.ids = ids
	}
}

// WithLogger sets the logger dispatches are traced to
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *storeConfig) {
		cfg.logger = logger
	}
}

// WithInitialState seeds the store with an existing snapshot
func WithInitialState(s State) Option {
	return func(cfg *storeConfig) {
		cloned := s.Clone()
		cfg.initial = &cloned
	}
}
