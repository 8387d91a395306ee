// Package bolt provides a BoltDB-backed implementation of storage.Store.
//
// The entire application state lives in one bucket under one fixed key,
// encoded as JSON. There is no versioning or migration; a blob that fails
// to decode is reported as a Load error and the caller falls back to the
// default state.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"taskpad/internal/service"
	"taskpad/internal/storage"
)

const (
	tasksBucket = "tasks"
	stateKey    = "state"
)

// persistedBlob is the on-disk JSON shape.
type persistedBlob struct {
	Tasks persistedTasks `json:"tasks"`
}

type persistedTasks struct {
	Items  []persistedTask `json:"items"`
	Filter string          `json:"filter"`
}

type persistedTask struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// Store is a BoltDB-backed state store.
type Store struct {
	db *bbolt.DB
}

var _ storage.Store = (*Store)(nil)

// Open opens or creates the database file at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(tasksBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load implements storage.Store.
func (s *Store) Load(ctx context.Context) (service.State, error) {
	if err := ctx.Err(); err != nil {
		return service.State{}, err
	}
	if s == nil || s.db == nil {
		return service.State{}, fmt.Errorf("storage is not configured")
	}

	var payload []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(tasksBucket))
		if bucket == nil {
			return storage.ErrNotFound
		}
		value := bucket.Get([]byte(stateKey))
		if value == nil {
			return storage.ErrNotFound
		}
		payload = append(payload, value...)
		return nil
	})
	if err != nil {
		return service.State{}, err
	}

	var blob persistedBlob
	if err := json.Unmarshal(payload, &blob); err != nil {
		return service.State{}, fmt.Errorf("decode state: %w", err)
	}

	return decodeState(blob)
}

// Save implements storage.Store.
func (s *Store) Save(ctx context.Context, state service.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	payload, err := json.Marshal(encodeState(state))
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(tasksBucket))
		if bucket == nil {
			return fmt.Errorf("tasks bucket is missing")
		}
		return bucket.Put([]byte(stateKey), payload)
	})
}

func encodeState(state service.State) persistedBlob {
	items := make([]persistedTask, 0, len(state.Items))
	for _, t := range state.Items {
		items = append(items, persistedTask{
			ID:          t.ID,
			Description: t.Description,
			Done:        t.Done,
		})
	}
	return persistedBlob{Tasks: persistedTasks{
		Items:  items,
		Filter: state.Filter.String(),
	}}
}

func decodeState(blob persistedBlob) (service.State, error) {
	filter, err := service.ParseFilter(blob.Tasks.Filter)
	if err != nil {
		return service.State{}, fmt.Errorf("decode state: %w", err)
	}

	state := service.State{Filter: filter}
	for _, t := range blob.Tasks.Items {
		state.Items = append(state.Items, service.Task{
			ID:          t.ID,
			Description: t.Description,
			Done:        t.Done,
		})
	}
	return state, nil
}
