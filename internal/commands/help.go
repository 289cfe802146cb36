package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/guard"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "taskdeck help" }
func (c *HelpCmd) Guard() guard.Guard { return nil }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, usageText)
	fmt.Fprintln(out, "\nCommands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-10s %s\n", cmd.Name(), cmd.Synopsis())
	}
	fmt.Fprint(out, commonFlagsText)
	return exitcode.Success
}

const usageText = `Usage:
  taskdeck                                            Open the interactive task board
  taskdeck board                                      Open the interactive task board
  taskdeck list [common flags] [--page <n>] [--limit 5|10|25] [--status <s>]
  taskdeck show [common flags] <task-id>
  taskdeck add [common flags] --title <t> --desc <d> --due <YYYY-MM-DD> [--status <s>]
  taskdeck edit [common flags] <task-id> [--title <t>] [--desc <d>] [--due <d>] [--status <s>]
  taskdeck rm [common flags] [-y] <task-id>...
  taskdeck login [common flags] [--email <addr>] [--password <pw>]
  taskdeck register [common flags]
  taskdeck logout [common flags]
  taskdeck whoami [common flags]
  taskdeck help
  taskdeck version
`

const commonFlagsText = `
Common flags:
  --config <dir>   Override config directory
  --api <url>      Override the task API root (or set TASKDECK_API)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
