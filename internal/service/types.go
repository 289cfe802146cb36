// Package service defines the backend-agnostic interface for task operations.
package service

import "time"

// Status is the three-valued task status.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists the valid statuses in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// ValidStatus reports whether s is one of the three task statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a single task item.
// The wire name for ID is "_id", matching the remote API.
type Task struct {
	ID          string    `json:"_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Status      Status    `json:"status"`
}

// DueDateOnly returns the due date with the time-of-day stripped,
// as shown in date fields and table cells.
func (t Task) DueDateOnly() string {
	return t.DueDate.Format("2006-01-02")
}

// TaskPage is one page of the task collection plus the total count
// across all pages for the active filter.
type TaskPage struct {
	Tasks []Task
	Total int
}

// Identity is the authenticated user's profile.
type Identity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// FullName returns "First Last" for display.
func (id Identity) FullName() string {
	return id.FirstName + " " + id.LastName
}
