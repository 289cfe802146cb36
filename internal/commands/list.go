package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/guard"
	"taskdeck/internal/output"
	"taskdeck/internal/service"
	"taskdeck/internal/tasklist"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command: one page of the task table.
type ListCmd struct {
	page   int
	limit  int
	status string
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "taskdeck list [--page <n>] [--limit 5|10|25] [--status <s>]"
}
func (c *ListCmd) Guard() guard.Guard { return guard.AuthenticatedOnly }
func (c *ListCmd) NeedsService() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.page, "page", 1, "")
	fs.IntVar(&c.limit, "limit", tasklist.DefaultPageSize, "")
	fs.StringVar(&c.status, "status", "", "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if c.page < 1 {
		fmt.Fprintf(errOut, "error: invalid page number: %d\n", c.page)
		return exitcode.UserError
	}
	validLimit := false
	for _, n := range tasklist.PageSizes {
		if n == c.limit {
			validLimit = true
		}
	}
	if !validLimit {
		fmt.Fprintf(errOut, "error: invalid limit: %d (allowed: 5, 10, 25)\n", c.limit)
		return exitcode.UserError
	}
	status := service.Status(c.status)
	if status != "" && !service.ValidStatus(status) {
		fmt.Fprintf(errOut, "error: invalid status: %s (allowed: Pending, InProgress, Completed)\n", c.status)
		return exitcode.UserError
	}

	page, err := env.Svc.ListTasks(ctx, c.page, c.limit, status)
	if err != nil {
		return reportBackendError(errOut, err)
	}

	if len(page.Tasks) == 0 && !env.Cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	for _, task := range page.Tasks {
		output.FormatTaskRow(out, task)
	}
	if !env.Cfg.Quiet {
		pageCount := (page.Total + c.limit - 1) / c.limit
		if pageCount < 1 {
			pageCount = 1
		}
		output.FormatListFooter(out, c.page-1, pageCount, page.Total)
	}
	return exitcode.Success
}

// reportBackendError maps API failures to stderr output and an exit code,
// pointing at login when the token was rejected.
func reportBackendError(errOut io.Writer, err error) int {
	if errors.Is(err, service.ErrUnauthorized) {
		fmt.Fprintln(errOut, "error: session rejected (run: taskdeck login)")
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
