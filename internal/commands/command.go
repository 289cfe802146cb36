// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"taskdeck/internal/config"
	"taskdeck/internal/guard"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

// Env is the explicit per-invocation context. The session store is created
// once at startup and handed down; commands never read the session file on
// their own.
type Env struct {
	Cfg      *config.Config
	Sessions *session.Store

	// Svc is nil when the command runs without a backend
	// (help, version, logout, whoami).
	Svc service.Service

	// Stdin is the interactive input source for prompts.
	Stdin io.Reader
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Guard returns the route guard the command runs behind, or nil for
	// ungated commands. The dispatcher enforces it before Run.
	Guard() guard.Guard

	// NeedsService reports whether the command talks to the API.
	// The dispatcher only builds a backend when it does.
	NeedsService() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command and returns the exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}
