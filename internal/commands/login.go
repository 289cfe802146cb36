package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/form"
	"taskdeck/internal/guard"
	"taskdeck/internal/session"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email    string
	password string
}

func (c *LoginCmd) Name() string       { return "login" }
func (c *LoginCmd) Aliases() []string  { return nil }
func (c *LoginCmd) Synopsis() string   { return "Log in and store the session" }
func (c *LoginCmd) Usage() string      { return "taskdeck login [--email <addr>] [--password <pw>]" }
func (c *LoginCmd) Guard() guard.Guard { return guard.AnonymousOnly }
func (c *LoginCmd) NeedsService() bool { return true }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	reader := bufio.NewReader(env.Stdin)
	if c.email == "" {
		c.email = prompt(reader, errOut, "Email: ")
	}
	if c.password == "" {
		c.password = prompt(reader, errOut, "Password: ")
	}

	creds := form.Credentials{Email: c.email, Password: c.password}
	if errs := form.Check(creds); errs != nil {
		for _, field := range []string{"Email", "Password"} {
			if msg := errs.Get(field); msg != "" {
				fmt.Fprintf(errOut, "error: %s\n", msg)
			}
		}
		return exitcode.UserError
	}

	identity, token, err := env.Svc.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		fmt.Fprintf(errOut, "error: login failed: %v\n", err)
		return exitcode.BackendError
	}

	if err := env.Cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := env.Sessions.Save(session.Session{Identity: identity, Token: token}); err != nil {
		fmt.Fprintf(errOut, "error: failed to save session: %v\n", err)
		return exitcode.AuthError
	}

	if !env.Cfg.Quiet {
		fmt.Fprintf(out, "logged in as %s\n", identity.Email)
	}
	return exitcode.Success
}

// prompt writes a label to errOut and reads one trimmed line.
func prompt(r *bufio.Reader, errOut io.Writer, label string) string {
	fmt.Fprint(errOut, label)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
