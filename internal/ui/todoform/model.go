package todoform

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todo/internal/keys"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/theme"
)

// TodoCreatedMsg is dispatched when the create form is submitted.
type TodoCreatedMsg struct {
	Draft model.Draft
}

// TodoUpdatedMsg is dispatched when the edit form is submitted.
type TodoUpdatedMsg struct {
	ID    string
	Patch model.Patch
}

// TodoFormCancelMsg is dispatched when the user cancels the form.
type TodoFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title   string
	note    string
	dueDate string
	url     string
}

// Options controls validation that depends on configuration.
type Options struct {
	// RejectPastDueDates refuses due dates before today on creation.
	RejectPastDueDates bool

	// Now supplies the current time for the past due date check.
	Now func() time.Time
}

// Model is the Bubble Tea model for the todo create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	opts     Options
	editMode bool
	editID   string
	// done is set once the form has reported completion or abort.
	done     bool
	width    int
	height   int
}

// New creates a new todo form model.
func New(opts Options, width, height int) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return Model{
		fb:     &formBindings{},
		opts:   opts,
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for creating a new todo.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = ""
	m.done = false
	*m.fb = formBindings{}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing todo.
func (m *Model) StartEdit(todo model.Todo) tea.Cmd {
	m.editMode = true
	m.editID = todo.ID
	m.done = false
	*m.fb = formBindings{
		title: todo.Title,
		note:  todo.Note,
		url:   todo.URL,
	}
	if todo.EndAt != nil {
		m.fb.dueDate = todo.EndAt.Local().Format(model.DateLayout)
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Editing reports whether the form edits an existing todo.
func (m Model) Editing() bool {
	return m.editMode
}

// Update handles messages for the todo form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil || m.done {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.done = true
		return m, m.handleSubmit()
	case huh.StateAborted:
		m.done = true
		return m, func() tea.Msg { return TodoFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the todo form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Todo"
	if m.editMode {
		titleText = "Edit Todo"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What needs to be done?").
				CharLimit(model.MaxTitleLength).
				Value(&m.fb.title).
				Validate(model.ValidateTitle),
			huh.NewText().
				Title("Note").
				Placeholder("Optional details...").
				CharLimit(model.MaxNoteLength).
				Value(&m.fb.note).
				Validate(model.ValidateNote),
			huh.NewInput().
				Title("Due Date").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&m.fb.dueDate).
				Validate(m.validateDueDate),
			huh.NewInput().
				Title("URL").
				Placeholder("https://... (optional)").
				Value(&m.fb.url).
				Validate(model.ValidateURL),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight()).WithKeyMap(keys.FormKeyMap())
}

// validateDueDate accepts an empty value or a YYYY-MM-DD date. New todos
// may not be due in the past when configured so.
func (m *Model) validateDueDate(s string) error {
	endAt, err := model.ParseDueDate(s, time.Local)
	if err != nil {
		return err
	}
	if m.opts.RejectPastDueDates && !m.editMode {
		return model.ValidateDueDate(endAt, m.opts.Now())
	}
	return nil
}

func (m Model) handleSubmit() tea.Cmd {
	title := strings.TrimSpace(m.fb.title)
	note := strings.TrimSpace(m.fb.note)
	url := strings.TrimSpace(m.fb.url)
	// Validated by the field, so a parse error cannot happen here.
	endAt, _ := model.ParseDueDate(m.fb.dueDate, time.Local)

	if m.editMode {
		id := m.editID
		patch := model.Patch{
			Title:      &title,
			Note:       &note,
			URL:        &url,
			EndAt:      endAt,
			ClearEndAt: endAt == nil,
		}
		return func() tea.Msg { return TodoUpdatedMsg{ID: id, Patch: patch} }
	}

	draft := model.Draft{Title: title, Note: note, EndAt: endAt, URL: url}
	return func() tea.Msg { return TodoCreatedMsg{Draft: draft} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}
