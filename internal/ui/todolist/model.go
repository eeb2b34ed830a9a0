package todolist

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/theme"
)

// Model is the todo list view component. It only renders and navigates;
// the parent decides what the rows are.
type Model struct {
	list      list.Model
	emptyHint string
	width     int
	height    int
}

// New creates a list view. sel is consulted on every render for the
// selection boxes and now supplies the time used to classify due dates.
func New(sel Selector, now func() time.Time, dateFormat string, width, height int) Model {
	delegate := ItemDelegate{selection: sel, now: now, dateFormat: dateFormat}
	l := list.New([]list.Item{}, delegate, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	// Leave letter keys to the application.
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "pgup"))
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "pgdown"))
	l.KeyMap.GoToStart = key.NewBinding(key.WithKeys("home"))
	l.KeyMap.GoToEnd = key.NewBinding(key.WithKeys("end"))
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	return Model{
		list:      l,
		emptyHint: "No todos yet.\n\nPress n to add one.",
		width:     width,
		height:    height,
	}
}

// SetRows replaces the rows, keeping the cursor on the same todo or
// heading when it is still present. emptyHint is shown when rows is empty.
func (m *Model) SetRows(rows []Row, emptyHint string) tea.Cmd {
	prev := ""
	if cur, ok := m.Current(); ok {
		prev = cur.key()
	}
	prevIndex := m.list.Index()

	items := make([]list.Item, len(rows))
	target := -1
	for i, r := range rows {
		items[i] = r
		if prev != "" && r.key() == prev {
			target = i
		}
	}

	m.emptyHint = emptyHint
	cmd := m.list.SetItems(items)
	switch {
	case len(items) == 0:
	case target >= 0:
		m.list.Select(target)
	case prevIndex >= len(items):
		m.list.Select(len(items) - 1)
	default:
		m.list.Select(prevIndex)
	}
	return cmd
}

// Current returns the row under the cursor.
func (m Model) Current() (Row, bool) {
	row, ok := m.list.SelectedItem().(Row)
	return row, ok
}

// CurrentTodo returns the todo under the cursor, if the cursor is on one.
func (m Model) CurrentTodo() (model.Todo, bool) {
	row, ok := m.Current()
	if !ok || row.Kind != RowTodo {
		return model.Todo{}, false
	}
	return row.Todo, true
}

// VisibleIDs returns the ids of every todo row in display order.
func (m Model) VisibleIDs() []string {
	var ids []string
	for _, it := range m.list.Items() {
		if row, ok := it.(Row); ok && row.Kind == RowTodo {
			ids = append(ids, row.Todo.ID)
		}
	}
	return ids
}

// Len returns the number of rows.
func (m Model) Len() int {
	return len(m.list.Items())
}

// Index returns the cursor position.
func (m Model) Index() int {
	return m.list.Index()
}

// Update forwards navigation to the underlying list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list or an empty state.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render(m.emptyHint)
	}
	return m.list.View()
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}
