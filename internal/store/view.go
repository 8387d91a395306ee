package store

import "taskpad/internal/service"

// Visible implements service.Service. It returns the tasks selected by the
// active filter, newest first.
//
// The result is memoized on (state revision, filter): repeated calls
// without an intervening state change reuse the computed slice. Callers
// receive a copy either way.
func (s *Store) Visible() []service.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.viewOK || s.viewRev != s.rev || s.viewFilter != s.state.Filter {
		s.view = s.state.Filtered(s.state.Filter)
		s.viewRev = s.rev
		s.viewFilter = s.state.Filter
		s.viewOK = true
	}

	out := make([]service.Task, len(s.view))
	copy(out, s.view)
	return out
}
