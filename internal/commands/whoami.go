package commands

import (
	"context"
	"flag"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/guard"
	"taskdeck/internal/output"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd implements the whoami command: the profile view. It reads the
// stored identity only; no network call is made.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string       { return "whoami" }
func (c *WhoamiCmd) Aliases() []string  { return []string{"profile"} }
func (c *WhoamiCmd) Synopsis() string   { return "Show the logged-in profile" }
func (c *WhoamiCmd) Usage() string      { return "taskdeck whoami" }
func (c *WhoamiCmd) Guard() guard.Guard { return guard.AuthenticatedOnly }
func (c *WhoamiCmd) NeedsService() bool { return false }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	output.FormatProfile(out, env.Sessions.Current().Identity)
	return exitcode.Success
}
