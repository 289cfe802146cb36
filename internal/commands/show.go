package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/guard"
	"taskdeck/internal/output"
	"taskdeck/internal/service"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command: the read-only detail view.
type ShowCmd struct{}

func (c *ShowCmd) Name() string       { return "show" }
func (c *ShowCmd) Aliases() []string  { return []string{"view"} }
func (c *ShowCmd) Synopsis() string   { return "Show one task" }
func (c *ShowCmd) Usage() string      { return "taskdeck show <task-id>" }
func (c *ShowCmd) Guard() guard.Guard { return guard.AuthenticatedOnly }
func (c *ShowCmd) NeedsService() bool { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	task, err := findTask(ctx, env.Svc, args[0])
	if err != nil {
		if err == errTaskNotFound {
			fmt.Fprintf(errOut, "error: task not found: %s\n", args[0])
			return exitcode.UserError
		}
		return reportBackendError(errOut, err)
	}

	output.FormatTaskDetail(out, task)
	return exitcode.Success
}

var errTaskNotFound = fmt.Errorf("task not found")

// findTask locates a task by id. The API has no get-by-id call, so pages are
// scanned at the largest page size until the id turns up or the collection is
// exhausted.
func findTask(ctx context.Context, svc service.Service, id string) (service.Task, error) {
	const limit = 25
	for page := 1; ; page++ {
		tp, err := svc.ListTasks(ctx, page, limit, "")
		if err != nil {
			return service.Task{}, err
		}
		for _, t := range tp.Tasks {
			if t.ID == id {
				return t, nil
			}
		}
		if page*limit >= tp.Total || len(tp.Tasks) == 0 {
			return service.Task{}, errTaskNotFound
		}
	}
}
