package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"sort"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/form"
	"taskdeck/internal/guard"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command. Registration does not log the
// user in; it reports the API's message and points at login.
type RegisterCmd struct {
	first    string
	last     string
	email    string
	password string
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return nil }
func (c *RegisterCmd) Synopsis() string  { return "Create a new account" }
func (c *RegisterCmd) Usage() string {
	return "taskdeck register [--first <name>] [--last <name>] [--email <addr>] [--password <pw>]"
}
func (c *RegisterCmd) Guard() guard.Guard { return guard.AnonymousOnly }
func (c *RegisterCmd) NeedsService() bool { return true }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.first, "first", "", "")
	fs.StringVar(&c.last, "last", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	reader := bufio.NewReader(env.Stdin)
	if c.first == "" {
		c.first = prompt(reader, errOut, "First name: ")
	}
	if c.last == "" {
		c.last = prompt(reader, errOut, "Last name: ")
	}
	if c.email == "" {
		c.email = prompt(reader, errOut, "Email: ")
	}
	if c.password == "" {
		c.password = prompt(reader, errOut, "Password: ")
	}

	reg := form.Registration{
		FirstName: c.first,
		LastName:  c.last,
		Email:     c.email,
		Password:  c.password,
	}
	if errs := form.Check(reg); errs != nil {
		reportFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	message, err := env.Svc.Register(ctx, reg.FirstName, reg.LastName, reg.Email, reg.Password)
	if err != nil {
		fmt.Fprintf(errOut, "error: registration failed: %v\n", err)
		return exitcode.BackendError
	}

	if message == "" {
		message = "registered"
	}
	fmt.Fprintln(out, message)
	if !env.Cfg.Quiet {
		fmt.Fprintln(out, "run: taskdeck login")
	}
	return exitcode.Success
}

// reportFieldErrors prints field validation errors in a stable order.
func reportFieldErrors(errOut io.Writer, errs form.Errors) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(errOut, "error: %s\n", errs[f])
	}
}
