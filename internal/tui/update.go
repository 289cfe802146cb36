package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/form"
	"taskdeck/internal/guard"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case noticeExpireMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeKind = noticeNone
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.modal != modalNone {
		return m.updateModal(msg)
	}
	switch m.route {
	case guard.RouteLogin:
		return m.updateLogin(msg)
	case guard.RouteRegister:
		return m.updateRegister(msg)
	case guard.RouteProfile:
		return m.updateProfile(msg)
	default:
		return m.updateBoard(msg)
	}
}

// Login view.

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.authForm.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.authForm.cycleFocus(-1)
		return m, nil
	case "ctrl+r":
		m.navigate(guard.RouteRegister)
		return m, nil
	case "enter":
		return m.submitLogin()
	}
	cmd := m.authForm.update(msg)
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	creds := form.Credentials{
		Email:    m.authForm.value(0),
		Password: m.authForm.value(1),
	}
	if errs := form.Check(creds); errs != nil {
		m.authForm.errs = errs
		return m, nil
	}
	m.authForm.errs = nil

	identity, token, err := m.svc.Login(m.ctx, creds.Email, creds.Password)
	if err != nil {
		return m, m.reportError(err, "Login failed")
	}
	if err := m.sessions.Save(session.Session{Identity: identity, Token: token}); err != nil {
		return m, m.reportError(err, "Failed to save session")
	}
	m.navigate(guard.RouteHome)
	return m, m.say(noticeSuccess, "Login successful")
}

// Register view.

func (m Model) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.authForm.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.authForm.cycleFocus(-1)
		return m, nil
	case "esc":
		m.navigate(guard.RouteLogin)
		return m, nil
	case "enter":
		return m.submitRegister()
	}
	cmd := m.authForm.update(msg)
	return m, cmd
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	reg := form.Registration{
		FirstName: m.authForm.value(0),
		LastName:  m.authForm.value(1),
		Email:     m.authForm.value(2),
		Password:  m.authForm.value(3),
	}
	if errs := form.Check(reg); errs != nil {
		m.authForm.errs = errs
		return m, nil
	}
	m.authForm.errs = nil

	message, err := m.svc.Register(m.ctx, reg.FirstName, reg.LastName, reg.Email, reg.Password)
	if err != nil {
		return m, m.reportError(err, "Registration failed")
	}
	if message == "" {
		message = "Registration successful"
	}
	m.navigate(guard.RouteLogin)
	return m, m.say(noticeSuccess, message)
}

// Profile view.

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.navigate(guard.RouteHome)
		return m, nil
	case "L":
		return m.logout()
	}
	return m, nil
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.sessions.Clear(); err != nil {
		return m, m.reportError(err, "Logout failed")
	}
	m.navigate(guard.RouteLogin)
	return m, m.say(noticeSuccess, "Logged out")
}

// Board view.

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.board.Tasks()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
		return m, nil
	case " ":
		if m.cursor < len(tasks) {
			m.board.Toggle(tasks[m.cursor].ID)
		}
		return m, nil
	case "a":
		m.board.ToggleSelectAll()
		return m, nil
	case "right", "n":
		if err := m.board.NextPage(m.ctx); err != nil {
			return m, m.reportError(err, "Failed to fetch tasks")
		}
		m.clampCursor()
		return m, nil
	case "left", "p":
		if err := m.board.PrevPage(m.ctx); err != nil {
			return m, m.reportError(err, "Failed to fetch tasks")
		}
		m.clampCursor()
		return m, nil
	case "s":
		return m.cyclePageSize()
	case "f":
		return m.cycleFilter()
	case "r":
		if err := m.board.Refresh(m.ctx); err != nil {
			return m, m.reportError(err, "Failed to fetch tasks")
		}
		m.clampCursor()
		return m, nil
	case "c":
		m.taskFormID = ""
		m.taskForm = newTaskForm(form.TaskInput{})
		m.modal = modalTaskForm
		return m, nil
	case "e":
		if m.cursor < len(tasks) {
			seed := form.FromTask(tasklist.EditSeed(tasks[m.cursor]))
			m.taskFormID = seed.ID
			m.taskForm = newTaskForm(seed)
			m.modal = modalTaskForm
		}
		return m, nil
	case "enter", "v":
		if m.cursor < len(tasks) {
			m.detail = tasks[m.cursor]
			m.modal = modalDetail
		}
		return m, nil
	case "d":
		if m.cursor < len(tasks) {
			m.deleteID = tasks[m.cursor].ID
			m.modal = modalConfirmDelete
		}
		return m, nil
	case "D":
		if len(m.board.Selected()) > 0 {
			m.modal = modalConfirmBulk
		}
		return m, nil
	case "P":
		m.navigate(guard.RouteProfile)
		return m, nil
	case "L":
		return m.logout()
	}
	return m, nil
}

func (m Model) cyclePageSize() (tea.Model, tea.Cmd) {
	next := tasklist.PageSizes[0]
	for i, n := range tasklist.PageSizes {
		if n == m.board.PageSize() {
			next = tasklist.PageSizes[(i+1)%len(tasklist.PageSizes)]
		}
	}
	if err := m.board.SetPageSize(m.ctx, next); err != nil {
		return m, m.reportError(err, "Failed to fetch tasks")
	}
	m.clampCursor()
	return m, nil
}

func (m Model) cycleFilter() (tea.Model, tea.Cmd) {
	order := []service.Status{"", service.StatusPending, service.StatusInProgress, service.StatusCompleted}
	next := order[0]
	for i, s := range order {
		if s == m.board.Filter() {
			next = order[(i+1)%len(order)]
		}
	}
	if err := m.board.SetFilter(m.ctx, next); err != nil {
		return m, m.reportError(err, "Failed to fetch tasks")
	}
	m.clampCursor()
	return m, nil
}

// Modals.

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalConfirmDelete:
		switch msg.String() {
		case "y", "enter":
			m.modal = modalNone
			if err := m.board.Delete(m.ctx, m.deleteID); err != nil {
				return m, m.reportError(err, "Failed to delete task")
			}
			m.clampCursor()
			return m, m.say(noticeSuccess, "Task deleted successfully")
		case "n", "esc":
			m.modal = modalNone
			m.deleteID = ""
			return m, nil
		}
		return m, nil

	case modalConfirmBulk:
		switch msg.String() {
		case "y", "enter":
			m.modal = modalNone
			if err := m.board.BulkDelete(m.ctx); err != nil {
				return m, m.reportError(err, "Failed to delete selected tasks")
			}
			m.clampCursor()
			return m, m.say(noticeSuccess, "Selected tasks deleted successfully")
		case "n", "esc":
			m.modal = modalNone
			return m, nil
		}
		return m, nil

	case modalDetail:
		switch msg.String() {
		case "esc", "enter", "q":
			m.modal = modalNone
		}
		return m, nil

	case modalTaskForm:
		return m.updateTaskForm(msg)
	}
	return m, nil
}

func (m Model) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "tab", "down":
		m.taskForm.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.taskForm.cycleFocus(-1)
		return m, nil
	case "left":
		if m.taskForm.onStatus() {
			m.taskForm.cycleStatus(-1)
			return m, nil
		}
	case "right":
		if m.taskForm.onStatus() {
			m.taskForm.cycleStatus(1)
			return m, nil
		}
	case "enter":
		return m.submitTaskForm()
	}
	cmd := m.taskForm.update(msg)
	return m, cmd
}

// submitTaskForm validates and saves. Once the input passes validation the
// form closes on either outcome; the board notifies and, on success,
// re-fetches.
func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	in := form.TaskInput{
		ID:          m.taskFormID,
		Title:       m.taskForm.value(0),
		Description: m.taskForm.value(1),
		DueDate:     m.taskForm.value(2),
		Status:      string(m.taskForm.status()),
	}
	if errs := form.Check(in); errs != nil {
		m.taskForm.errs = errs
		return m, nil
	}

	m.modal = modalNone
	var err error
	if in.ID == "" {
		_, err = m.svc.CreateTask(m.ctx, in.Task())
	} else {
		_, err = m.svc.UpdateTask(m.ctx, in.Task())
	}
	if err != nil {
		return m, m.reportError(err, "Failed to save task")
	}

	if refreshErr := m.board.Refresh(m.ctx); refreshErr != nil {
		return m, m.reportError(refreshErr, "Failed to fetch tasks")
	}
	m.clampCursor()
	if in.ID == "" {
		return m, m.say(noticeSuccess, "Task created successfully")
	}
	return m, m.say(noticeSuccess, "Task updated successfully")
}
