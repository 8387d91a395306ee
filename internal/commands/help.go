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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskpad help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskpad                                     Open the interactive task list
  taskpad ui                                  Open the interactive task list
  taskpad list [common flags] [--filter all|done|not]
  taskpad add [common flags] <description...>
  taskpad done [common flags] <n>
  taskpad toggle [common flags] <n>
  taskpad edit [common flags] <n> <description...>
  taskpad filter [common flags] [all|done|not]
  taskpad clear [common flags]
  taskpad help
  taskpad version

Common flags:
  --data-dir <dir>  Override data directory
  --quiet           Suppress informational output
  --debug           Print debug logs to stderr
`
