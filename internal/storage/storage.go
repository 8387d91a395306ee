// Package storage defines the persistence contract for task state.
package storage

import (
	"context"
	"errors"

	"taskpad/internal/service"
)

// ErrNotFound indicates no state has been persisted yet.
var ErrNotFound = errors.New("state not found")

// Store persists the complete application state as a single blob.
//
// Load and Save report failures explicitly; the caller decides the
// fallback policy. The reducer store falls back to the default state on
// any Load failure and treats Save failures as best-effort.
type Store interface {
	// Load reads the persisted state. Returns ErrNotFound when nothing
	// has been saved yet.
	Load(ctx context.Context) (service.State, error)

	// Save writes the complete state, replacing any previous blob.
	Save(ctx context.Context, state service.State) error

	// Close releases underlying resources.
	Close() error
}
