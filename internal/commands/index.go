package commands

import (
	"errors"
	"fmt"
	"strconv"

	"taskpad/internal/service"
)

// ErrIndexRequired is returned when no task index was supplied.
var ErrIndexRequired = errors.New("task number required")

// ParseIndex extracts a 1-based task number from positional args.
func ParseIndex(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrIndexRequired
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", args[0])
	}
	return n, nil
}

// taskByIndex resolves a 1-based number against the currently visible
// tasks. Numbering follows list output: the active filter applies and
// tasks are newest first.
func taskByIndex(svc service.Service, num int) (service.Task, error) {
	visible := svc.Visible()
	if num < 1 || num > len(visible) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return visible[num-1], nil
}
