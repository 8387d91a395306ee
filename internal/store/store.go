// Package store implements the reducer state store: the single owner and
// single mutator of application state, with write-through persistence and
// change notification.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"taskpad/internal/service"
	"taskpad/internal/storage"
)

// Store holds the task state and applies actions to it one at a time.
//
// Every applied action is written through to the persistence layer
// synchronously and best-effort: a failed save leaves the in-memory state
// authoritative for the session.
type Store struct {
	// Logf, when set, receives diagnostic messages (persistence
	// failures). Must be set before the store is shared.
	Logf func(format string, args ...any)

	mu      sync.Mutex
	persist storage.Store
	state   service.State
	rev     uint64
	subs    map[int]func(service.State)
	nextSub int
	newID   func() string

	// memoized derived view, keyed on (rev, filter)
	viewRev    uint64
	viewFilter service.Filter
	view       []service.Task
	viewOK     bool
}

var _ service.Service = (*Store)(nil)

// New creates a store backed by persist. The initial state is loaded from
// persist; on a missing blob, a decode failure, or any storage error the
// store starts from the default empty state. persist may be nil, in which
// case the store is purely in-memory.
func New(ctx context.Context, persist storage.Store) *Store {
	s := &Store{
		persist: persist,
		state:   service.DefaultState(),
		subs:    make(map[int]func(service.State)),
		newID:   uuid.NewString,
	}
	if persist != nil {
		if loaded, err := persist.Load(ctx); err == nil {
			s.state = loaded
		} else {
			s.logf("load state: %v (starting empty)", err)
		}
	}
	return s
}

// SetIDFunc replaces the task id generator (for testing).
func (s *Store) SetIDFunc(fn func() string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newID = fn
}

// Dispatch implements service.Service. Actions apply one at a time to
// completion; subscribers observe only complete states.
func (s *Store) Dispatch(a service.Action) {
	s.mu.Lock()
	next, changed := reduce(s.state, a, s.newID())
	if !changed {
		s.mu.Unlock()
		return
	}
	s.state = next
	s.rev++
	s.viewOK = false

	if s.persist != nil {
		if err := s.persist.Save(context.Background(), s.state.Clone()); err != nil {
			s.logf("save state: %v", err)
		}
	}

	snapshot := s.state.Clone()
	fns := make([]func(service.State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// State implements service.Service.
func (s *Store) State() service.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe implements service.Service.
func (s *Store) Subscribe(fn func(service.State)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Close implements service.Service.
func (s *Store) Close() error {
	if s.persist == nil {
		return nil
	}
	return s.persist.Close()
}

func (s *Store) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}
