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
	Register(&BoardCmd{})
}

// RunBoard launches the interactive board. It is a variable so tests can run
// the board command without a terminal; main wires in tui.Run.
var RunBoard func(ctx context.Context, env *Env) error

// BoardCmd implements the board command: the interactive single-page UI.
// It carries no guard of its own — the board resolves its initial route from
// the session (login view when anonymous, task board otherwise).
type BoardCmd struct{}

func (c *BoardCmd) Name() string       { return "board" }
func (c *BoardCmd) Aliases() []string  { return []string{"ui"} }
func (c *BoardCmd) Synopsis() string   { return "Open the interactive task board" }
func (c *BoardCmd) Usage() string      { return "taskdeck board" }
func (c *BoardCmd) Guard() guard.Guard { return nil }
func (c *BoardCmd) NeedsService() bool { return true }

func (c *BoardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *BoardCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if RunBoard == nil {
		fmt.Fprintln(errOut, "error: interactive board unavailable")
		return exitcode.UserError
	}
	if err := RunBoard(ctx, env); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
