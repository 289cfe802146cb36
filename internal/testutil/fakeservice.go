// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"taskdeck/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int

	// Accounts maps email -> password for Login; registered accounts are
	// added by Register.
	Accounts map[string]string

	// Token is returned by successful logins.
	Token string

	// Calls records every service call by name, in order.
	Calls []string

	// DeleteRequests records the id slice of each DeleteTasks call.
	DeleteRequests [][]string

	// Error injection for testing
	LoginErr    error
	RegisterErr error
	ListErr     error
	CreateErr   error
	UpdateErr   error
	DeleteErr   error
}

// NewFakeService creates an empty FakeService with one known account.
func NewFakeService() *FakeService {
	return &FakeService{
		Accounts: map[string]string{"a@b.com": "x"},
		Token:    "T1",
		nextID:   1,
	}
}

// AddTask seeds a task and returns its generated id.
func (f *FakeService) AddTask(title string, status service.Status) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := strconv.Itoa(f.nextID)
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Title:       title,
		Description: title + " description",
		DueDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:      status,
	})
	return id
}

// SeedTasks adds n pending tasks titled "Task 1".."Task n".
func (f *FakeService) SeedTasks(n int) {
	for i := 1; i <= n; i++ {
		f.AddTask(fmt.Sprintf("Task %d", i), service.StatusPending)
	}
}

// TaskCount returns the number of stored tasks.
func (f *FakeService) TaskCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.tasks)
}

func (f *FakeService) record(call string) {
	f.Calls = append(f.Calls, call)
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email, password string) (service.Identity, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Login")
	if f.LoginErr != nil {
		return service.Identity{}, "", f.LoginErr
	}
	if pw, ok := f.Accounts[email]; !ok || pw != password {
		return service.Identity{}, "", fmt.Errorf("invalid credentials")
	}
	return service.Identity{FirstName: "A", LastName: "B", Email: email}, f.Token, nil
}

// Register implements service.Service.
func (f *FakeService) Register(ctx context.Context, firstName, lastName, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Register")
	if f.RegisterErr != nil {
		return "", f.RegisterErr
	}
	if _, exists := f.Accounts[email]; exists {
		return "", fmt.Errorf("email already registered")
	}
	f.Accounts[email] = password
	return "User registered successfully", nil
}

// ListTasks implements service.Service. page is 1-based.
func (f *FakeService) ListTasks(ctx context.Context, page, limit int, status service.Status) (service.TaskPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListTasks")
	if f.ListErr != nil {
		return service.TaskPage{}, f.ListErr
	}

	var filtered []service.Task
	for _, t := range f.tasks {
		if status == "" || t.Status == status {
			filtered = append(filtered, t)
		}
	}

	start := (page - 1) * limit
	if start >= len(filtered) {
		return service.TaskPage{Total: len(filtered)}, nil
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	out := make([]service.Task, end-start)
	copy(out, filtered[start:end])
	return service.TaskPage{Tasks: out, Total: len(filtered)}, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, task service.Task) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateTask")
	if f.CreateErr != nil {
		return service.Task{}, f.CreateErr
	}
	task.ID = strconv.Itoa(f.nextID)
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, task service.Task) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTask")
	if f.UpdateErr != nil {
		return service.Task{}, f.UpdateErr
	}
	for i, t := range f.tasks {
		if t.ID == task.ID {
			f.tasks[i] = task
			return task, nil
		}
	}
	return service.Task{}, fmt.Errorf("task not found: %s", task.ID)
}

// DeleteTasks implements service.Service.
func (f *FakeService) DeleteTasks(ctx context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteTasks")
	f.DeleteRequests = append(f.DeleteRequests, append([]string(nil), ids...))
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := f.tasks[:0]
	for _, t := range f.tasks {
		if !drop[t.ID] {
			kept = append(kept, t)
		}
	}
	f.tasks = kept
	return nil
}
