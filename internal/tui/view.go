package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/guard"
	"taskdeck/internal/output"
)

func (m Model) View() string {
	var body string
	switch m.route {
	case guard.RouteLogin:
		body = m.viewLogin()
	case guard.RouteRegister:
		body = m.viewRegister()
	case guard.RouteProfile:
		body = m.viewProfile()
	default:
		body = m.viewBoard()
	}

	if m.modal != modalNone {
		body = m.overlayModal()
	}

	if m.notice != "" {
		style := styleSuccess
		if m.noticeKind == noticeError {
			style = styleError
		}
		body += "\n" + style.Render(m.notice)
	}
	return body
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Task Management — Login"))
	b.WriteString("\n\n")
	b.WriteString(m.authForm.render(loginErrFields))
	b.WriteString("\n")
	b.WriteString(styleMuted.Render("enter: log in   ctrl+r: register   ctrl+c: quit"))
	return b.String()
}

func (m Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Task Management — Register"))
	b.WriteString("\n\n")
	b.WriteString(m.authForm.render(registerErrFields))
	b.WriteString("\n")
	b.WriteString(styleMuted.Render("enter: register   esc: back to login   ctrl+c: quit"))
	return b.String()
}

func (m Model) viewProfile() string {
	id := m.sessions.Current().Identity
	var b strings.Builder
	b.WriteString(styleTitle.Render("Profile"))
	b.WriteString("\n\n")
	b.WriteString(styleFieldLabel.Render("Name:  "))
	b.WriteString(id.FullName())
	b.WriteString("\n")
	b.WriteString(styleFieldLabel.Render("Email: "))
	b.WriteString(id.Email)
	b.WriteString("\n\n")
	b.WriteString(styleMuted.Render("esc: back   L: log out"))
	return b.String()
}

func (m Model) viewBoard() string {
	var b strings.Builder

	email := m.sessions.Current().Identity.Email
	b.WriteString(styleTitle.Render("Tasks"))
	b.WriteString(styleMuted.Render("  " + email))
	b.WriteString("\n\n")

	filter := string(m.board.Filter())
	if filter == "" {
		filter = "All"
	}
	b.WriteString(styleMuted.Render(fmt.Sprintf("filter: %s   size: %d", filter, m.board.PageSize())))
	b.WriteString("\n")

	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(styleMuted.Render(fmt.Sprintf("page %d/%d   %d tasks   %d selected",
		m.board.Page()+1, m.board.PageCount(), m.board.Total(), len(m.board.Selected()))))
	b.WriteString("\n")
	b.WriteString(styleMuted.Render("space: select   a: all   c: create   e: edit   v: view   d: delete   D: delete selected"))
	b.WriteString("\n")
	b.WriteString(styleMuted.Render("←/→: page   s: size   f: filter   r: refresh   P: profile   L: logout   q: quit"))
	return b.String()
}

func (m Model) renderTable() string {
	tasks := m.board.Tasks()
	if len(tasks) == 0 {
		return "\n" + styleMuted.Render("  no tasks") + "\n"
	}

	var b strings.Builder
	allSelected := len(tasks) > 0 && len(m.board.Selected()) == len(tasks)
	headBox := "[ ]"
	if allSelected {
		headBox = "[x]"
	}
	b.WriteString(styleHeader.Render(fmt.Sprintf("%s %-24s %-30s %-10s %s",
		headBox, "Title", "Description", "Due Date", "Status")))
	b.WriteString("\n")

	for i, t := range tasks {
		box := "[ ]"
		if m.board.IsSelected(t.ID) {
			box = "[x]"
		}
		row := fmt.Sprintf("%s %-24s %-30s %-10s %s",
			box,
			output.Truncate(t.Title, 24),
			output.Truncate(t.Description, 30),
			t.DueDateOnly(),
			t.Status,
		)
		if i == m.cursor {
			row = styleRowSelected.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) overlayModal() string {
	var title, content string
	switch m.modal {
	case modalConfirmDelete:
		title = "Confirm Delete"
		content = "Are you sure you want to delete this task?\n\n" +
			styleMuted.Render("y: delete   n: cancel")
	case modalConfirmBulk:
		title = "Confirm Bulk Delete"
		content = fmt.Sprintf("Are you sure you want to delete the %d selected tasks?\n\n",
			len(m.board.Selected())) +
			styleMuted.Render("y: delete   n: cancel")
	case modalDetail:
		title = "Task Details"
		content = fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s %s\n\n%s",
			styleFieldLabel.Render("Title:"), m.detail.Title,
			styleFieldLabel.Render("Description:"), m.detail.Description,
			styleFieldLabel.Render("Due Date:"), m.detail.DueDateOnly(),
			styleFieldLabel.Render("Status:"), m.detail.Status,
			styleMuted.Render("esc: close"))
	case modalTaskForm:
		if m.taskFormID == "" {
			title = "Create Task"
		} else {
			title = "Edit Task"
		}
		content = m.taskForm.render(taskErrFields) + "\n" +
			styleMuted.Render("tab: next field   ←/→: status   enter: save   esc: cancel")
	}

	box := styleModal.Render(styleTitle.Render(title) + "\n\n" + content)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
