package service

// Service is the single entry point for reading and mutating task state.
// Commands and the TUI never touch the store or the storage layer directly.
//
// Dispatch is total: every action from every state produces a defined next
// state, possibly identical to the current one. Validation failures (blank
// descriptions, unknown ids, invalid filters) are silent no-ops; nothing
// here returns an error to the caller.
type Service interface {
	// Dispatch applies an action to the state.
	Dispatch(a Action)

	// State returns a snapshot copy of the current state.
	State() State

	// Visible returns the tasks selected by the active filter.
	Visible() []Task

	// Subscribe registers fn to be called with a state snapshot after
	// every dispatch. The returned function cancels the subscription.
	Subscribe(fn func(State)) (cancel func())

	// Close releases the underlying persistence resources.
	Close() error
}
