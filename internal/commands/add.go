package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/form"
	"taskdeck/internal/guard"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command: the mutation form in create mode.
type AddCmd struct {
	title       string
	description string
	due         string
	status      string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskdeck add --title <t> --desc <d> --due <YYYY-MM-DD> [--status <s>]"
}
func (c *AddCmd) Guard() guard.Guard { return guard.AuthenticatedOnly }
func (c *AddCmd) NeedsService() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.status, "status", "Pending", "")
}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	in := form.TaskInput{
		Title:       c.title,
		Description: c.description,
		DueDate:     c.due,
		Status:      c.status,
	}
	if errs := form.Check(in); errs != nil {
		reportFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	created, err := env.Svc.CreateTask(ctx, in.Task())
	if err != nil {
		return reportBackendError(errOut, err)
	}

	if env.Cfg.Quiet {
		fmt.Fprintln(out, created.ID)
	} else {
		fmt.Fprintf(out, "created %s\n", created.ID)
	}
	return exitcode.Success
}
