package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todo/internal/duedate"
	"github.com/nhle/todo/internal/keys"
	"github.com/nhle/todo/internal/markdown"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/theme"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// OpenURLMsg asks the parent to open the todo's link in a browser.
type OpenURLMsg struct {
	URL string
}

// EditMsg asks the parent to open the edit form for the shown todo.
type EditMsg struct {
	ID string
}

// Model is the todo detail view component.
type Model struct {
	todo       *model.Todo
	viewport   viewport.Model
	keys       *keys.KeyMap
	now        func() time.Time
	dateFormat string
	width      int
	height     int
}

// New creates a new detail view model.
func New(keys *keys.KeyMap, now func() time.Time, dateFormat string, width, height int) Model {
	if now == nil {
		now = time.Now
	}
	if dateFormat == "" {
		dateFormat = model.DateLayout
	}
	vp := viewport.New(width, max(height-2, 0))
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport:   vp,
		keys:       keys,
		now:        now,
		dateFormat: dateFormat,
		width:      width,
		height:     height,
	}
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.OpenURL):
			if m.todo != nil && m.todo.URL != "" {
				url := m.todo.URL
				return m, func() tea.Msg { return OpenURLMsg{URL: url} }
			}
			return m, nil

		case key.Matches(msg, m.keys.Edit):
			if m.todo != nil && !m.todo.Completed {
				id := m.todo.ID
				return m, func() tea.Msg { return EditMsg{ID: id} }
			}
			return m, nil
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.todo == nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No todo selected")
	}
	return m.viewport.View()
}

// Todo returns the todo being shown.
func (m Model) Todo() (model.Todo, bool) {
	if m.todo == nil {
		return model.Todo{}, false
	}
	return *m.todo, true
}

// SetTodo updates the todo being displayed and re-renders the content.
func (m *Model) SetTodo(todo model.Todo) {
	t := todo.Clone()
	m.todo = &t
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Refresh re-renders the shown todo from a newer copy, or clears the view
// when the todo no longer exists.
func (m *Model) Refresh(todo model.Todo, ok bool) {
	if !ok {
		m.todo = nil
		m.viewport.SetContent("")
		return
	}
	t := todo.Clone()
	m.todo = &t
	m.viewport.SetContent(m.renderContent())
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 0)
	if m.todo != nil {
		m.viewport.SetContent(m.renderContent())
	}
}

func (m Model) renderContent() string {
	t := m.todo
	variant := duedate.Classify(*t, m.now())

	var sections []string

	sections = append(sections, theme.TitleStyle(variant).Bold(true).Render(t.Title))

	status := "Active"
	if t.Completed {
		status = "Completed"
	}
	statusStyle := lipgloss.NewStyle().Foreground(theme.ColorBlue)
	if t.Completed {
		statusStyle = theme.CheckedStyle
	}
	sections = append(sections, statusStyle.Render(status), "")

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)

	due := "none"
	dueStyle := valStyle
	if t.HasDueDate() {
		due = t.EndAt.Local().Format(m.dateFormat)
		switch variant {
		case duedate.VariantOverdue:
			due += " (overdue)"
		case duedate.VariantDueToday:
			due += " (today)"
		}
		dueStyle = theme.DateStyle(variant)
	}
	sections = append(sections, fmt.Sprintf("%s  %s", metaStyle.Render("Due:"), dueStyle.Render(due)))

	if t.URL != "" {
		sections = append(sections, fmt.Sprintf("%s  %s", metaStyle.Render("URL:"), valStyle.Render(t.URL)))
	}

	separator := lipgloss.NewStyle().
		Foreground(theme.ColorSubtle).
		Render(strings.Repeat("─", max(min(m.width-4, 80), 1)))
	sections = append(sections, "", separator, "")

	sections = append(sections, lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Render("Note"))

	body := markdown.Render(max(min(m.width-4, 80), 20), t.Note)
	if body == "" {
		body = lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Italic(true).
			Render("No note")
	}
	sections = append(sections, body)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
