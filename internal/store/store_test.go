package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"taskpad/internal/service"
	"taskpad/internal/store"
	"taskpad/internal/testutil"
)

// newStore creates a store over a fresh fake with deterministic ids
// t1, t2, t3, ...
func newStore(t *testing.T) (*store.Store, *testutil.FakeStore) {
	t.Helper()
	fake := testutil.NewFakeStore()
	s := store.New(context.Background(), fake)
	n := 0
	s.SetIDFunc(func() string {
		n++
		return fmt.Sprintf("t%d", n)
	})
	return s, fake
}

func TestNewLoadsPersistedState(t *testing.T) {
	fake := testutil.NewFakeStore()
	fake.Seed(service.State{
		Items:  []service.Task{{ID: "t1", Description: "persisted", Done: true}},
		Filter: service.FilterDone,
	})

	s := store.New(context.Background(), fake)
	state := s.State()
	if len(state.Items) != 1 || state.Items[0].Description != "persisted" {
		t.Errorf("unexpected items: %+v", state.Items)
	}
	if state.Filter != service.FilterDone {
		t.Errorf("expected filter done, got %q", state.Filter)
	}
}

func TestNewFallsBackToDefaultState(t *testing.T) {
	// Empty storage and failing storage both start the session empty.
	empty := testutil.NewFakeStore()
	failing := testutil.NewFakeStore()
	failing.LoadErr = errors.New("disk on fire")

	for name, fake := range map[string]*testutil.FakeStore{"empty": empty, "failing": failing} {
		s := store.New(context.Background(), fake)
		state := s.State()
		if len(state.Items) != 0 || state.Filter != service.FilterAll {
			t.Errorf("%s: expected default state, got %+v", name, state)
		}
	}
}

func TestDispatchWritesThrough(t *testing.T) {
	s, fake := newStore(t)

	s.Dispatch(service.AddTask{Description: "Buy milk"})

	saved, ok := fake.Saved()
	if !ok {
		t.Fatal("expected a save after dispatch")
	}
	if len(saved.Items) != 1 || saved.Items[0].Description != "Buy milk" {
		t.Errorf("unexpected saved state: %+v", saved)
	}
}

func TestNoOpDispatchDoesNotSave(t *testing.T) {
	s, fake := newStore(t)

	s.Dispatch(service.AddTask{Description: "   "})
	s.Dispatch(service.ToggleDone{ID: "missing"})
	s.Dispatch(service.ClearAll{})

	if fake.SaveCalls != 0 {
		t.Errorf("expected no saves, got %d", fake.SaveCalls)
	}
}

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	s, fake := newStore(t)
	fake.SaveErr = errors.New("quota exceeded")

	var logged []string
	s.Logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	s.Dispatch(service.AddTask{Description: "Buy milk"})

	state := s.State()
	if len(state.Items) != 1 {
		t.Fatal("in-memory state should keep the task despite the failed save")
	}
	if fake.SaveCalls != 1 {
		t.Errorf("expected 1 save attempt, got %d", fake.SaveCalls)
	}
	if len(logged) == 0 {
		t.Error("expected the failure to be logged")
	}
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	fake := testutil.NewFakeStore()
	s := store.New(context.Background(), fake)

	s.Dispatch(service.AddTask{Description: "one"})
	s.Dispatch(service.AddTask{Description: "two"})
	s.Dispatch(service.AddTask{Description: "three"})

	seen := make(map[string]bool)
	for _, task := range s.State().Items {
		if task.ID == "" {
			t.Error("task id should not be empty")
		}
		if seen[task.ID] {
			t.Errorf("duplicate id: %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestSubscribeNotifiesOnChange(t *testing.T) {
	s, _ := newStore(t)

	var got []service.State
	cancel := s.Subscribe(func(state service.State) {
		got = append(got, state)
	})

	s.Dispatch(service.AddTask{Description: "Buy milk"})
	s.Dispatch(service.AddTask{Description: "  "}) // no-op, no notification

	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if len(got[0].Items) != 1 || got[0].Items[0].Description != "Buy milk" {
		t.Errorf("unexpected snapshot: %+v", got[0])
	}

	cancel()
	s.Dispatch(service.AddTask{Description: "Call Bob"})
	if len(got) != 1 {
		t.Error("cancelled subscriber should not be notified")
	}
}

func TestWorkedExample(t *testing.T) {
	s, _ := newStore(t)

	s.Dispatch(service.AddTask{Description: "Buy milk"})
	s.Dispatch(service.AddTask{Description: "Call Bob"})

	items := s.State().Items
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Description != "Call Bob" || items[1].Description != "Buy milk" {
		t.Fatalf("expected newest first, got %+v", items)
	}

	s.Dispatch(service.ToggleDone{ID: items[1].ID})
	s.Dispatch(service.SetFilter{Filter: service.FilterDone})

	visible := s.Visible()
	if len(visible) != 1 {
		t.Fatalf("expected 1 visible task, got %d", len(visible))
	}
	if visible[0].Description != "Buy milk" || !visible[0].Done {
		t.Errorf("unexpected visible task: %+v", visible[0])
	}
}

func TestCloseClosesStorage(t *testing.T) {
	s, fake := newStore(t)
	fake.CloseErr = errors.New("close failed")
	if err := s.Close(); err == nil {
		t.Error("expected storage close error to propagate")
	}
}
