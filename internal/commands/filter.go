package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/service"
)

func init() {
	Register(&FilterCmd{})
}

// FilterCmd implements the filter command: it sets the persisted filter
// that list and the TUI use by default.
type FilterCmd struct{}

func (c *FilterCmd) Name() string      { return "filter" }
func (c *FilterCmd) Aliases() []string { return nil }
func (c *FilterCmd) Synopsis() string  { return "Set the active filter" }
func (c *FilterCmd) Usage() string     { return "taskpad filter all|done|not" }
func (c *FilterCmd) NeedsStore() bool  { return true }

func (c *FilterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FilterCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		// No argument: report the current filter.
		fmt.Fprintln(out, svc.State().Filter)
		return exitcode.Success
	}

	filter, err := service.ParseFilter(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	svc.Dispatch(service.SetFilter{Filter: filter})

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
