// Package store holds the board's aggregate state and the reducers that
// transition it. All writes go through Store.Dispatch.
package store

import (
	"log/slog"
	"slices"
	"sync"
)

// Listener is called after every dispatch with the new snapshot, the
// action that produced it and the version that dispatch assigned.
type Listener func(s State, a Action, version uint64)

// Store is the single owner of the board state.
// Dispatch is serialized, so there is never more than one writer.
type Store struct {
	mu      sync.Mutex
	reducer *Reducer
	logger  *slog.Logger
	state   State
	version uint64

	listenersMu sync.RWMutex
	listeners   map[int]Listener
	nextID      int
}

// New creates a store initialized to the empty board
func New(opts ...Option) *Store {
	cfg := &storeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	initial := NewState()
	if cfg.initial != nil {
		initial = *cfg.initial
	}

	return &Store{
		reducer:   NewReducer(cfg.ids),
		logger:    logger,
		state:     initial,
		listeners: make(map[int]Listener),
	}
}

// Dispatch applies the action, replaces the held state and notifies every
// subscriber. It returns the new snapshot.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	prev := s.state
	next := s.reducer.Reduce(prev, a)
	s.state = next
	s.version++
	version := s.version
	s.mu.Unlock()

	kind := Kind("")
	if a != nil {
		kind = a.Kind()
	}
	if !s.reducer.Handles(kind) {
		s.logger.Debug("ignored unrecognized action", "kind", kind, "version", version)
	} else {
		s.logger.Debug("dispatched action",
			"kind", kind,
			"version", version,
			"projects", len(next.Projects),
			"columns", len(next.Columns),
			"cards", len(next.Cards))
	}

	s.notify(next, a, version)
	return next.Clone()
}

// State returns a snapshot of the current board
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Version returns how many actions have been dispatched
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe registers a listener and returns a function that removes it
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// notify calls listeners in subscription order, each with its own copy.
// Listeners run outside the dispatch lock so they may dispatch themselves.
func (s *Store) notify(next State, a Action, version uint64) {
	s.listenersMu.RLock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	listeners := make([]Listener, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.listenersMu.RUnlock()

	for _, l := range listeners {
		l(next.Clone(), a, version)
	}
}
