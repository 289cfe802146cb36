// Package main is the entry point for the taskdeck CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskdeck/internal/backend/taskapi"
	"taskdeck/internal/cli"
	"taskdeck/internal/commands"
	"taskdeck/internal/config"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/tui"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create service factory
	factory := func(ctx context.Context, cfg *config.Config, store *session.Store) (service.Service, error) {
		client := taskapi.New(cfg, store)
		// A rejected token behaves like a logout: the session is cleared
		// and callers redirect to login.
		client.OnUnauthorized = func() { _ = store.Clear() }
		return client, nil
	}

	// Wire the interactive board
	commands.RunBoard = func(ctx context.Context, env *commands.Env) error {
		return tui.Run(ctx, env.Svc, env.Sessions)
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
