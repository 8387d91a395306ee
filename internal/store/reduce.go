package store

import (
	"strings"

	"taskpad/internal/service"
)

// reduce applies a single action to the state and returns the next state
// plus whether anything changed. It is pure: the input state is never
// mutated, and the fresh task id is supplied by the caller.
//
// Every action from every state produces a defined result; the no-op
// conditions (blank descriptions, unknown ids, invalid filters) return the
// input state unchanged.
func reduce(state service.State, action service.Action, newID string) (service.State, bool) {
	switch a := action.(type) {
	case service.AddTask:
		desc := strings.TrimSpace(a.Description)
		if desc == "" {
			return state, false
		}
		next := state.Clone()
		next.Items = append([]service.Task{{ID: newID, Description: desc}}, next.Items...)
		return next, true

	case service.ToggleDone:
		for i, t := range state.Items {
			if t.ID == a.ID {
				next := state.Clone()
				next.Items[i].Done = !t.Done
				return next, true
			}
		}
		return state, false

	case service.EditTask:
		desc := strings.TrimSpace(a.Description)
		if desc == "" {
			return state, false
		}
		for i, t := range state.Items {
			if t.ID == a.ID {
				next := state.Clone()
				next.Items[i].Description = desc
				return next, true
			}
		}
		return state, false

	case service.SetFilter:
		if !a.Filter.Valid() || a.Filter == state.Filter {
			return state, false
		}
		next := state.Clone()
		next.Filter = a.Filter
		return next, true

	case service.ClearAll:
		if len(state.Items) == 0 {
			return state, false
		}
		next := state.Clone()
		next.Items = nil
		return next, true
	}

	return state, false
}
