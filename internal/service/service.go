// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned when the API rejects the stored credential.
// Callers decide how to redirect; the client never retries.
var ErrUnauthorized = errors.New("unauthorized")

// Service defines the interface for task backend operations.
// All remote API calls go through this interface; commands and the
// TUI never build HTTP requests directly.
type Service interface {
	// Login authenticates with email and password.
	// On success it returns the identity and the opaque API token.
	Login(ctx context.Context, email, password string) (Identity, string, error)

	// Register creates a new account and returns the server's message.
	// Registration does not log the user in.
	Register(ctx context.Context, firstName, lastName, email, password string) (string, error)

	// ListTasks returns one page of tasks.
	// page is 1-based; status filters by task status, "" means all.
	ListTasks(ctx context.Context, page, limit int, status Status) (TaskPage, error)

	// CreateTask creates a new task. The ID on the input is ignored.
	CreateTask(ctx context.Context, task Task) (Task, error)

	// UpdateTask updates the task keyed by task.ID.
	UpdateTask(ctx context.Context, task Task) (Task, error)

	// DeleteTasks deletes the given ids in a single request.
	DeleteTasks(ctx context.Context, ids []string) error
}
