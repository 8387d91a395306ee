package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/output"
	"taskpad/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. With no flag it shows the view for
// the persisted filter; --filter narrows the output for this invocation
// only without touching the stored filter.
type ListCmd struct {
	filter string
}

// SetFilter sets the filter flag value (for testing).
func (c *ListCmd) SetFilter(value string) {
	c.filter = value
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskpad list [--filter all|done|not]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "", "")
	fs.StringVar(&c.filter, "f", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	state := svc.State()

	filter := state.Filter
	var visible []service.Task
	if c.filter != "" {
		parsed, err := service.ParseFilter(c.filter)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		filter = parsed
		visible = state.Filtered(parsed)
	} else {
		visible = svc.Visible()
	}

	output.FormatFilterHeader(out, filter)
	for i, task := range visible {
		output.FormatTask(out, i+1, task)
	}

	if !cfg.Quiet {
		output.FormatCount(out, len(state.Items))
	}
	return exitcode.Success
}
