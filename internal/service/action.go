package service

// Action is a mutation request applied to the store through Dispatch.
// The set of actions is closed: only the types in this file implement it.
type Action interface {
	isAction()
}

// AddTask creates a new task with the given description.
// Blank (empty after trimming) descriptions are ignored.
type AddTask struct {
	Description string
}

// ToggleDone flips the done flag on the task with the given id.
// Unknown ids are ignored.
type ToggleDone struct {
	ID string
}

// EditTask replaces the description of the task with the given id.
// Blank replacements and unknown ids are ignored.
type EditTask struct {
	ID          string
	Description string
}

// SetFilter replaces the active filter. Invalid filter values are ignored.
type SetFilter struct {
	Filter Filter
}

// ClearAll removes every task. The active filter is left unchanged.
type ClearAll struct{}

func (AddTask) isAction()    {}
func (ToggleDone) isAction() {}
func (EditTask) isAction()   {}
func (SetFilter) isAction()  {}
func (ClearAll) isAction()   {}
