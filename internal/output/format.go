// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskpad/internal/service"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  [x]  {DESCRIPTION}\n" with a space instead of the x for
// open tasks.
func FormatTask(w io.Writer, num int, task service.Task) {
	box := "[ ]"
	if task.Done {
		box = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s  %s\n", num, box, normalizeDescription(task.Description))
}

// FormatFilterHeader prints the active filter when it narrows the view.
// FilterAll prints nothing.
func FormatFilterHeader(w io.Writer, filter service.Filter) {
	switch filter {
	case service.FilterDone:
		fmt.Fprintln(w, "filter: done")
	case service.FilterNotDone:
		fmt.Fprintln(w, "filter: not done")
	}
}

// FormatCount prints the total task count line.
func FormatCount(w io.Writer, total int) {
	noun := "tasks"
	if total == 1 {
		noun = "task"
	}
	fmt.Fprintf(w, "%d %s\n", total, noun)
}

// normalizeDescription normalizes a description for single-line display.
// - Newlines are replaced with spaces
// - Empty or whitespace-only descriptions become "(untitled)"
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
