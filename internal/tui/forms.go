package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/form"
	"taskdeck/internal/service"
)

// fieldSet is a small vertical form: labeled text inputs plus an optional
// trailing status picker, with one focused element at a time.
type fieldSet struct {
	labels    []string
	inputs    []textinput.Model
	focus     int
	hasStatus bool
	statusIdx int
	errs      form.Errors
}

func newFieldSet(hasStatus bool, fields ...fieldSpec) fieldSet {
	fs := fieldSet{hasStatus: hasStatus}
	for i, spec := range fields {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.CharLimit = 256
		ti.Width = 38
		if spec.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		ti.SetValue(spec.value)
		if i == 0 {
			ti.Focus()
		}
		fs.labels = append(fs.labels, spec.label)
		fs.inputs = append(fs.inputs, ti)
	}
	return fs
}

type fieldSpec struct {
	label       string
	placeholder string
	value       string
	secret      bool
}

// count returns the number of focusable elements.
func (f *fieldSet) count() int {
	n := len(f.inputs)
	if f.hasStatus {
		n++
	}
	return n
}

// onStatus reports whether focus sits on the status picker.
func (f *fieldSet) onStatus() bool {
	return f.hasStatus && f.focus == len(f.inputs)
}

func (f *fieldSet) cycleFocus(delta int) {
	f.focus = (f.focus + delta + f.count()) % f.count()
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *fieldSet) cycleStatus(delta int) {
	n := len(service.Statuses)
	f.statusIdx = (f.statusIdx + delta + n) % n
}

func (f *fieldSet) status() service.Status {
	return service.Statuses[f.statusIdx]
}

func (f *fieldSet) setStatus(s service.Status) {
	for i, st := range service.Statuses {
		if st == s {
			f.statusIdx = i
		}
	}
}

func (f *fieldSet) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// update forwards key input to the focused text field.
func (f *fieldSet) update(msg tea.Msg) tea.Cmd {
	if f.onStatus() {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// render draws labels, inputs, the status picker and any field errors.
func (f *fieldSet) render(errFields []string) string {
	var b strings.Builder
	for i, ti := range f.inputs {
		b.WriteString(styleFieldLabel.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(ti.View())
		b.WriteString("\n")
		if msg := f.errs.Get(errFields[i]); msg != "" {
			b.WriteString(styleFieldError.Render(msg))
			b.WriteString("\n")
		}
	}
	if f.hasStatus {
		b.WriteString(styleFieldLabel.Render("Status"))
		b.WriteString("\n")
		picker := "  " + string(f.status()) + "  "
		if f.onStatus() {
			picker = styleRowSelected.Render("◀" + picker + "▶")
		}
		b.WriteString(picker)
		b.WriteString("\n")
		if msg := f.errs.Get("Status"); msg != "" {
			b.WriteString(styleFieldError.Render(msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Form constructors.

func newLoginForm() fieldSet {
	return newFieldSet(false,
		fieldSpec{label: "Email", placeholder: "you@example.com"},
		fieldSpec{label: "Password", secret: true},
	)
}

func newRegisterForm() fieldSet {
	return newFieldSet(false,
		fieldSpec{label: "First name"},
		fieldSpec{label: "Last name"},
		fieldSpec{label: "Email", placeholder: "you@example.com"},
		fieldSpec{label: "Password", secret: true},
	)
}

// newTaskForm builds the mutation form. An empty seed means create mode.
func newTaskForm(seed form.TaskInput) fieldSet {
	fs := newFieldSet(true,
		fieldSpec{label: "Title", value: seed.Title},
		fieldSpec{label: "Description", value: seed.Description},
		fieldSpec{label: "Due Date", placeholder: "YYYY-MM-DD", value: seed.DueDate},
	)
	if seed.Status != "" {
		fs.setStatus(service.Status(seed.Status))
	}
	return fs
}

var (
	loginErrFields    = []string{"Email", "Password"}
	registerErrFields = []string{"FirstName", "LastName", "Email", "Password"}
	taskErrFields     = []string{"Title", "Description", "DueDate"}
)
