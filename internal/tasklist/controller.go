// Package tasklist owns the task-board view state and keeps it in sync with
// the remote API. The TUI board drives the controller; the CLI commands share
// its page-size rules and edit seeding.
package tasklist

import (
	"context"
	"fmt"
	"time"

	"taskdeck/internal/service"
)

// PageSizes are the allowed page sizes.
var PageSizes = []int{5, 10, 25}

// DefaultPageSize is the initial page size.
const DefaultPageSize = 5

// Controller is the task-board state machine: current page (0-based), page
// size, status filter, ordered multi-select set, and the page-scoped cached
// copy of the collection. All mutation goes through its methods.
type Controller struct {
	svc service.Service

	page     int
	pageSize int
	filter   service.Status
	selected []string

	tasks []service.Task
	total int
}

// New creates a controller with the default page size and no filter.
func New(svc service.Service) *Controller {
	return &Controller{svc: svc, pageSize: DefaultPageSize}
}

func (c *Controller) Page() int              { return c.page }
func (c *Controller) PageSize() int          { return c.pageSize }
func (c *Controller) Filter() service.Status { return c.filter }
func (c *Controller) Total() int             { return c.total }

// Tasks returns the currently displayed page of tasks.
func (c *Controller) Tasks() []service.Task { return c.tasks }

// Selected returns the selected ids in selection order.
func (c *Controller) Selected() []string { return c.selected }

// IsSelected reports whether the id is in the selection.
func (c *Controller) IsSelected(id string) bool {
	for _, s := range c.selected {
		if s == id {
			return true
		}
	}
	return false
}

// PageCount returns the number of pages for the current total and page size,
// at least 1.
func (c *Controller) PageCount() int {
	n := (c.total + c.pageSize - 1) / c.pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// Refresh fetches the current page. On success the displayed tasks and total
// replace the cached copy and the selection is pruned to the displayed ids;
// on failure everything is left untouched (stale-on-error).
func (c *Controller) Refresh(ctx context.Context) error {
	page, err := c.svc.ListTasks(ctx, c.page+1, c.pageSize, c.filter)
	if err != nil {
		return err
	}
	c.tasks = page.Tasks
	c.total = page.Total
	c.pruneSelection()
	return nil
}

// SetFilter changes the status filter, resets to the first page, drops the
// selection and re-fetches.
func (c *Controller) SetFilter(ctx context.Context, f service.Status) error {
	if f != "" && !service.ValidStatus(f) {
		return fmt.Errorf("invalid status: %s", f)
	}
	c.filter = f
	c.page = 0
	c.selected = nil
	return c.Refresh(ctx)
}

// SetPageSize changes the page size, resets to the first page, drops the
// selection and re-fetches.
func (c *Controller) SetPageSize(ctx context.Context, n int) error {
	valid := false
	for _, s := range PageSizes {
		if s == n {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("invalid page size: %d", n)
	}
	c.pageSize = n
	c.page = 0
	c.selected = nil
	return c.Refresh(ctx)
}

// SetPage moves to the given 0-based page, dropping the selection.
// Out-of-range pages are clamped to the valid range.
func (c *Controller) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	if last := c.PageCount() - 1; page > last {
		page = last
	}
	c.page = page
	c.selected = nil
	return c.Refresh(ctx)
}

// NextPage advances one page when one exists.
func (c *Controller) NextPage(ctx context.Context) error {
	if c.page+1 >= c.PageCount() {
		return nil
	}
	return c.SetPage(ctx, c.page+1)
}

// PrevPage steps back one page when not on the first.
func (c *Controller) PrevPage(ctx context.Context) error {
	if c.page == 0 {
		return nil
	}
	return c.SetPage(ctx, c.page-1)
}

// ToggleSelectAll sets the selection to exactly the ids on the current page,
// or clears it when every displayed row is already selected.
func (c *Controller) ToggleSelectAll() {
	if len(c.tasks) > 0 && len(c.selected) == len(c.tasks) {
		c.selected = nil
		return
	}
	c.selected = make([]string, 0, len(c.tasks))
	for _, t := range c.tasks {
		c.selected = append(c.selected, t.ID)
	}
}

// Toggle adds or removes one id, preserving the relative order of the rest.
func (c *Controller) Toggle(id string) {
	for i, s := range c.selected {
		if s == id {
			c.selected = append(c.selected[:i], c.selected[i+1:]...)
			return
		}
	}
	c.selected = append(c.selected, id)
}

// Delete removes one task. On success the page is clamped and re-fetched; on
// failure the list is left unchanged. Confirmation happens at the caller.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.svc.DeleteTasks(ctx, []string{id}); err != nil {
		return err
	}
	return c.refetchAfterRemoval(ctx, 1)
}

// BulkDelete removes every selected task in one request. On success the
// selection is cleared, the page clamped and re-fetched; on failure both the
// list and the selection are left intact.
func (c *Controller) BulkDelete(ctx context.Context) error {
	if len(c.selected) == 0 {
		return fmt.Errorf("no tasks selected")
	}
	removed := len(c.selected)
	if err := c.svc.DeleteTasks(ctx, c.selected); err != nil {
		return err
	}
	c.selected = nil
	return c.refetchAfterRemoval(ctx, removed)
}

// refetchAfterRemoval clamps the current page so a delete that empties the
// last page lands on the new last page, then re-fetches.
func (c *Controller) refetchAfterRemoval(ctx context.Context, removed int) error {
	remaining := c.total - removed
	if remaining < 0 {
		remaining = 0
	}
	lastPage := (remaining + c.pageSize - 1) / c.pageSize
	if lastPage > 0 {
		lastPage--
	}
	if c.page > lastPage {
		c.page = lastPage
	}
	return c.Refresh(ctx)
}

// pruneSelection drops selected ids no longer on the displayed page.
func (c *Controller) pruneSelection() {
	if len(c.selected) == 0 {
		return
	}
	displayed := make(map[string]bool, len(c.tasks))
	for _, t := range c.tasks {
		displayed[t.ID] = true
	}
	kept := c.selected[:0]
	for _, id := range c.selected {
		if displayed[id] {
			kept = append(kept, id)
		}
	}
	c.selected = kept
}

// EditSeed prepares a task for the mutation form, normalizing the due date to
// a calendar-date-only value for the date field.
func EditSeed(t service.Task) service.Task {
	y, m, d := t.DueDate.Date()
	t.DueDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return t
}
