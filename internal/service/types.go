// Package service defines the task domain types and the store-agnostic
// interface the CLI and TUI use to read and mutate them.
package service

import "fmt"

// Task represents a single task item.
type Task struct {
	ID          string
	Description string
	Done        bool
}

// Filter selects which subset of tasks a view shows.
type Filter string

const (
	// FilterAll shows every task.
	FilterAll Filter = "all"

	// FilterDone shows completed tasks only.
	FilterDone Filter = "done"

	// FilterNotDone shows open tasks only.
	FilterNotDone Filter = "not"
)

// Valid reports whether f is one of the three known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterDone, FilterNotDone:
		return true
	}
	return false
}

// String returns the wire/display form of the filter.
func (f Filter) String() string { return string(f) }

// ParseFilter converts a textual filter value into a Filter.
// Returns an error for anything other than "all", "done" or "not".
func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown filter: %s", s)
	}
	return f, nil
}

// State is the complete application state: the task items in newest-first
// order and the active filter.
type State struct {
	Items  []Task
	Filter Filter
}

// DefaultState returns the empty starting state.
func DefaultState() State {
	return State{Filter: FilterAll}
}

// Clone returns a deep copy of the state. Mutating the copy never affects
// the original.
func (s State) Clone() State {
	out := State{Filter: s.Filter}
	if len(s.Items) > 0 {
		out.Items = make([]Task, len(s.Items))
		copy(out.Items, s.Items)
	}
	return out
}

// Filtered returns the subsequence of Items selected by f, preserving order.
func (s State) Filtered(f Filter) []Task {
	var out []Task
	for _, t := range s.Items {
		switch f {
		case FilterDone:
			if !t.Done {
				continue
			}
		case FilterNotDone:
			if t.Done {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
