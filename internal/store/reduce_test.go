package store

import (
	"testing"

	"taskpad/internal/service"
)

func TestReduceAddTrimsAndPrepends(t *testing.T) {
	state := service.State{
		Items:  []service.Task{{ID: "old", Description: "older task"}},
		Filter: service.FilterAll,
	}

	next, changed := reduce(state, service.AddTask{Description: "  Buy milk  "}, "new")
	if !changed {
		t.Fatal("expected add to change state")
	}
	if len(next.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(next.Items))
	}
	if next.Items[0].ID != "new" || next.Items[0].Description != "Buy milk" {
		t.Errorf("unexpected new task: %+v", next.Items[0])
	}
	if next.Items[0].Done {
		t.Error("new task should start open")
	}
	if next.Items[1].ID != "old" {
		t.Error("existing task should follow the new one")
	}
	if len(state.Items) != 1 {
		t.Error("input state was mutated")
	}
}

func TestReduceAddBlankIsNoOp(t *testing.T) {
	state := service.DefaultState()
	for _, desc := range []string{"", "   ", "\t\n"} {
		next, changed := reduce(state, service.AddTask{Description: desc}, "id")
		if changed {
			t.Errorf("AddTask(%q): expected no-op", desc)
		}
		if len(next.Items) != 0 {
			t.Errorf("AddTask(%q): items changed", desc)
		}
	}
}

func TestReduceToggleIsInvolution(t *testing.T) {
	state := service.State{
		Items:  []service.Task{{ID: "t1", Description: "task"}},
		Filter: service.FilterAll,
	}

	once, changed := reduce(state, service.ToggleDone{ID: "t1"}, "")
	if !changed || !once.Items[0].Done {
		t.Fatal("expected first toggle to mark the task done")
	}

	twice, changed := reduce(once, service.ToggleDone{ID: "t1"}, "")
	if !changed || twice.Items[0].Done {
		t.Fatal("expected second toggle to reopen the task")
	}
}

func TestReduceToggleUnknownIDIsNoOp(t *testing.T) {
	state := service.State{
		Items:  []service.Task{{ID: "t1", Description: "task"}},
		Filter: service.FilterAll,
	}

	next, changed := reduce(state, service.ToggleDone{ID: "missing"}, "")
	if changed {
		t.Error("expected no-op for unknown id")
	}
	if next.Items[0].Done {
		t.Error("task should be untouched")
	}
}

func TestReduceEdit(t *testing.T) {
	state := service.State{
		Items:  []service.Task{{ID: "t1", Description: "old"}},
		Filter: service.FilterAll,
	}

	next, changed := reduce(state, service.EditTask{ID: "t1", Description: "  new  "}, "")
	if !changed || next.Items[0].Description != "new" {
		t.Errorf("expected trimmed replacement, got %+v", next.Items[0])
	}

	if _, changed := reduce(state, service.EditTask{ID: "t1", Description: "   "}, ""); changed {
		t.Error("blank edit should be a no-op")
	}
	if _, changed := reduce(state, service.EditTask{ID: "missing", Description: "new"}, ""); changed {
		t.Error("edit of unknown id should be a no-op")
	}
}

func TestReduceSetFilter(t *testing.T) {
	state := service.DefaultState()

	next, changed := reduce(state, service.SetFilter{Filter: service.FilterDone}, "")
	if !changed || next.Filter != service.FilterDone {
		t.Errorf("expected filter done, got %q", next.Filter)
	}

	if _, changed := reduce(state, service.SetFilter{Filter: service.Filter("bogus")}, ""); changed {
		t.Error("invalid filter should be a no-op")
	}
	if _, changed := reduce(state, service.SetFilter{Filter: service.FilterAll}, ""); changed {
		t.Error("setting the current filter should be a no-op")
	}
}

func TestReduceClearAllKeepsFilter(t *testing.T) {
	state := service.State{
		Items:  []service.Task{{ID: "t1", Description: "task"}},
		Filter: service.FilterDone,
	}

	next, changed := reduce(state, service.ClearAll{}, "")
	if !changed {
		t.Fatal("expected clear to change state")
	}
	if len(next.Items) != 0 {
		t.Errorf("expected no items, got %d", len(next.Items))
	}
	if next.Filter != service.FilterDone {
		t.Errorf("filter should be unchanged, got %q", next.Filter)
	}

	if _, changed := reduce(next, service.ClearAll{}, ""); changed {
		t.Error("clearing an empty list should be a no-op")
	}
}
