package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/form"
	"taskdeck/internal/guard"
	"taskdeck/internal/tasklist"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: the mutation form in edit mode.
// Unset flags keep the task's current values, mirroring the pre-filled form.
type EditCmd struct {
	title       string
	description string
	due         string
	status      string
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Update a task" }
func (c *EditCmd) Usage() string {
	return "taskdeck edit <task-id> [--title <t>] [--desc <d>] [--due <YYYY-MM-DD>] [--status <s>]"
}
func (c *EditCmd) Guard() guard.Guard { return guard.AuthenticatedOnly }
func (c *EditCmd) NeedsService() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.status, "status", "", "")
}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	existing, err := findTask(ctx, env.Svc, args[0])
	if err != nil {
		if err == errTaskNotFound {
			fmt.Fprintf(errOut, "error: task not found: %s\n", args[0])
			return exitcode.UserError
		}
		return reportBackendError(errOut, err)
	}

	in := form.FromTask(tasklist.EditSeed(existing))
	if c.title != "" {
		in.Title = c.title
	}
	if c.description != "" {
		in.Description = c.description
	}
	if c.due != "" {
		in.DueDate = c.due
	}
	if c.status != "" {
		in.Status = c.status
	}

	if errs := form.Check(in); errs != nil {
		reportFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	if _, err := env.Svc.UpdateTask(ctx, in.Task()); err != nil {
		return reportBackendError(errOut, err)
	}

	if !env.Cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
