// Package tui renders the interactive single-page task board.
//
// The board mirrors the app's route map: login and register views for
// anonymous sessions, the task table and profile for authenticated ones.
// Every route change goes through the guard pair, so the session decides
// what actually renders.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/guard"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/tasklist"
)

// noticeDuration is how long a transient notice stays visible.
const noticeDuration = 4 * time.Second

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmDelete
	modalConfirmBulk
	modalTaskForm
	modalDetail
)

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeSuccess
	noticeError
)

// noticeExpireMsg clears a transient notice; seq guards against a newer
// notice being wiped by an older timer.
type noticeExpireMsg struct{ seq int }

// Model is the board's top-level bubbletea model.
type Model struct {
	ctx      context.Context
	svc      service.Service
	sessions *session.Store
	board    *tasklist.Controller

	route  guard.Route
	width  int
	height int

	cursor int
	modal  modalKind

	detail     service.Task
	deleteID   string
	taskForm   fieldSet
	taskFormID string
	authForm   fieldSet

	notice     string
	noticeKind noticeKind
	noticeSeq  int
}

// New builds the model, resolving the initial route from the session:
// anonymous sessions land on login, authenticated ones on the board.
func New(ctx context.Context, svc service.Service, sessions *session.Store) Model {
	m := Model{
		ctx:      ctx,
		svc:      svc,
		sessions: sessions,
		board:    tasklist.New(svc),
	}
	m.navigate(guard.RouteHome)
	return m
}

// Run starts the board and blocks until the user quits.
func Run(ctx context.Context, svc service.Service, sessions *session.Store) error {
	p := tea.NewProgram(New(ctx, svc, sessions), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// navigate applies the route's guard and prepares the destination view.
func (m *Model) navigate(r guard.Route) {
	dest := guard.Resolve(m.sessions.Current(), r)
	m.modal = modalNone
	switch dest {
	case guard.RouteLogin:
		if m.route != guard.RouteLogin {
			m.authForm = newLoginForm()
		}
	case guard.RouteRegister:
		if m.route != guard.RouteRegister {
			m.authForm = newRegisterForm()
		}
	case guard.RouteHome:
		if err := m.board.Refresh(m.ctx); err != nil {
			m.reportError(err, "Failed to fetch tasks")
		}
		m.clampCursor()
	}
	m.route = dest
}

// Route exposes the active route for tests.
func (m Model) Route() guard.Route { return m.route }

// Board exposes the list controller for tests.
func (m Model) Board() *tasklist.Controller { return m.board }

// Notice exposes the visible notice text for tests.
func (m Model) Notice() string { return m.notice }

func (m *Model) clampCursor() {
	if n := len(m.board.Tasks()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// say shows a transient notice and returns the expiry tick.
func (m *Model) say(kind noticeKind, text string) tea.Cmd {
	m.notice = text
	m.noticeKind = kind
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpireMsg{seq: seq}
	})
}

// reportError surfaces a failure as a notice. An unauthorized response
// behaves like a logout: the session is gone, so the guard sends the board
// back to login.
func (m *Model) reportError(err error, fallback string) tea.Cmd {
	if errors.Is(err, service.ErrUnauthorized) {
		_ = m.sessions.Clear()
		m.navigate(guard.RouteLogin)
		return m.say(noticeError, "Session expired, please log in again")
	}
	msg := fallback
	if err != nil && err.Error() != "" {
		msg = fallback + ": " + err.Error()
	}
	return m.say(noticeError, msg)
}
