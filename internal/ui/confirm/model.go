// Package confirm asks a yes/no question before a destructive action.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todo/internal/keys"
	"github.com/nhle/todo/internal/theme"
)

// ConfirmedMsg is dispatched when the user accepts. IDs are the todos the
// question was about.
type ConfirmedMsg struct {
	IDs []string
}

// CancelledMsg is dispatched when the user declines or aborts.
type CancelledMsg struct{}

type bindings struct {
	ok bool
}

// Model wraps a single huh confirm field.
type Model struct {
	form   *huh.Form
	b      *bindings
	ids    []string
	done   bool
	width  int
	height int
}

// New creates an idle confirm model.
func New(width, height int) Model {
	return Model{b: &bindings{}, width: width, height: height}
}

// Ask resets the dialog to a new question about ids.
func (m *Model) Ask(title, description string, ids []string) tea.Cmd {
	m.b.ok = false
	m.done = false
	m.ids = append([]string(nil), ids...)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&m.b.ok),
		),
	).WithWidth(max(min(m.width-4, 60), 20)).WithShowHelp(false).WithKeyMap(keys.FormKeyMap())
	return m.form.Init()
}

// Update handles messages for the dialog.
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
		if m.b.ok {
			ids := m.ids
			return m, func() tea.Msg { return ConfirmedMsg{IDs: ids} }
		}
		return m, func() tea.Msg { return CancelledMsg{} }
	case huh.StateAborted:
		m.done = true
		return m, func() tea.Msg { return CancelledMsg{} }
	}
	return m, cmd
}

// View renders the dialog.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.DetailPanelStyle.Render(m.form.View()))
}

// SetSize updates the dialog dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
