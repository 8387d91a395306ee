package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"go.etcd.io/bbolt"

	"taskpad/internal/service"
	"taskpad/internal/storage"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("expected error for blank path")
	}
}

func TestLoadBeforeAnySave(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Load(context.Background())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	want := service.State{
		Items: []service.Task{
			{ID: "t2", Description: "Call Bob", Done: false},
			{ID: "t1", Description: "Buy milk", Done: true},
		},
		Filter: service.FilterDone,
	}

	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	want := service.State{
		Items:  []service.Task{{ID: "t1", Description: "Buy milk"}},
		Filter: service.FilterAll,
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reopen mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestSaveReplacesPreviousBlob(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	first := service.State{
		Items:  []service.Task{{ID: "t1", Description: "Buy milk"}},
		Filter: service.FilterAll,
	}
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := service.State{Filter: service.FilterNotDone}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Items) != 0 || got.Filter != service.FilterNotDone {
		t.Errorf("expected second state, got %+v", got)
	}
}

func TestLoadRejectsCorruptBlob(t *testing.T) {
	s, _ := openTestStore(t)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(tasksBucket)).Put([]byte(stateKey), []byte("not json"))
	})
	if err != nil {
		t.Fatalf("write corrupt blob: %v", err)
	}

	if _, err := s.Load(context.Background()); err == nil {
		t.Error("expected decode error for corrupt blob")
	}
}

func TestLoadRejectsUnknownFilter(t *testing.T) {
	s, _ := openTestStore(t)

	blob := []byte(`{"tasks":{"items":[],"filter":"everything"}}`)
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(tasksBucket)).Put([]byte(stateKey), blob)
	})
	if err != nil {
		t.Fatalf("write blob: %v", err)
	}

	if _, err := s.Load(context.Background()); err == nil {
		t.Error("expected error for unknown persisted filter")
	}
}
