// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command,
	// index out of range).
	UserError = 1

	// StorageError indicates the task database could not be opened.
	StorageError = 2
)
