// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/service"
)

// FormatTaskRow formats one task line for the list command.
// Format: "{ID:<8}  {TITLE:<24}  {DUE}  {STATUS}".
func FormatTaskRow(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%-8s  %-24s  %s  %s\n",
		task.ID,
		Truncate(normalizeTitle(task.Title), 24),
		task.DueDateOnly(),
		task.Status,
	)
}

// FormatListFooter prints the pagination line under a task listing.
// page is 0-based, as held by the controller.
func FormatListFooter(w io.Writer, page, pageCount, total int) {
	fmt.Fprintf(w, "page %d/%d  (%d tasks)\n", page+1, pageCount, total)
}

// FormatTaskDetail prints the read-only detail view of one task.
func FormatTaskDetail(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "Title:       %s\n", normalizeTitle(task.Title))
	fmt.Fprintf(w, "Description: %s\n", task.Description)
	fmt.Fprintf(w, "Due Date:    %s\n", task.DueDateOnly())
	fmt.Fprintf(w, "Status:      %s\n", task.Status)
}

// FormatProfile prints the profile view of the stored identity.
func FormatProfile(w io.Writer, id service.Identity) {
	fmt.Fprintf(w, "Name:  %s\n", id.FullName())
	fmt.Fprintf(w, "Email: %s\n", id.Email)
}

// Truncate shortens s to max runes, ending with an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// normalizeTitle normalizes a title for single-line display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
