package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/guard"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Several ids make one bulk request.
// Deletion asks for confirmation unless -y is given.
type RmCmd struct {
	yes bool
}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete tasks" }
func (c *RmCmd) Usage() string      { return "taskdeck rm [-y] <task-id>..." }
func (c *RmCmd) Guard() guard.Guard { return guard.AuthenticatedOnly }
func (c *RmCmd) NeedsService() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "y", false, "")
	fs.BoolVar(&c.yes, "yes", false, "")
}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	if !c.yes {
		fmt.Fprintf(errOut, "Delete %d task(s)? [y/N]: ", len(args))
		line, _ := bufio.NewReader(env.Stdin).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(errOut, "cancelled")
			return exitcode.Success
		}
	}

	if err := env.Svc.DeleteTasks(ctx, args); err != nil {
		return reportBackendError(errOut, err)
	}

	if !env.Cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
