// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"taskpad/internal/service"
	"taskpad/internal/storage"
)

// FakeStore is an in-memory implementation of storage.Store for testing.
//
// It starts empty: Load returns storage.ErrNotFound until something has
// been saved or Seed is called.
type FakeStore struct {
	mu    sync.Mutex
	state service.State
	saved bool

	// Error injection for testing
	LoadErr  error
	SaveErr  error
	CloseErr error

	// SaveCalls counts every Save attempt, including failed ones.
	SaveCalls int
}

var _ storage.Store = (*FakeStore)(nil)

// NewFakeStore creates a new empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// Seed sets the persisted state directly, as if it had been saved.
func (f *FakeStore) Seed(state service.State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state.Clone()
	f.saved = true
}

// Load implements storage.Store.
func (f *FakeStore) Load(ctx context.Context) (service.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.LoadErr != nil {
		return service.State{}, f.LoadErr
	}
	if !f.saved {
		return service.State{}, storage.ErrNotFound
	}
	return f.state.Clone(), nil
}

// Save implements storage.Store.
func (f *FakeStore) Save(ctx context.Context, state service.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.state = state.Clone()
	f.saved = true
	return nil
}

// Close implements storage.Store.
func (f *FakeStore) Close() error {
	return f.CloseErr
}

// Saved returns the last successfully saved state and whether any save
// has happened.
func (f *FakeStore) Saved() (service.State, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Clone(), f.saved
}
