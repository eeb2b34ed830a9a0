package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/ui/todolist"
)

// handleListKey maps a key pressed on the list view to an intent. Keys
// that are not bindings fall through to the list for navigation.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.previousView = ViewList
		m.currentView = ViewHelp
		return m, nil

	case key.Matches(msg, k.Command):
		m.previousView = ViewList
		m.currentView = ViewCommand
		m.commandView.Reset()
		return m, m.commandView.Focus()

	case key.Matches(msg, k.New):
		return m, m.startCreate()

	case key.Matches(msg, k.Edit):
		if t, ok := m.todoList.CurrentTodo(); ok && !t.Completed {
			return m, m.startEdit(t)
		}
		return m, nil

	case key.Matches(msg, k.Open):
		if t, ok := m.todoList.CurrentTodo(); ok {
			m.detail.SetTodo(t)
			m.previousView = ViewList
			m.currentView = ViewDetail
		}
		return m, nil

	case key.Matches(msg, k.OpenURL):
		if t, ok := m.todoList.CurrentTodo(); ok && t.URL != "" {
			return m, m.openLink(t.URL)
		}
		return m, nil

	case key.Matches(msg, k.ToggleComplete):
		if t, ok := m.todoList.CurrentTodo(); ok {
			return m, m.setCompleted(t.ID, !t.Completed)
		}
		return m, nil

	case key.Matches(msg, k.Delete):
		if t, ok := m.todoList.CurrentTodo(); ok {
			if !t.Completed && m.cfg.Behavior.ConfirmDelete {
				return m, m.askDelete([]string{t.ID}, false)
			}
			return m, m.deleteTodos([]string{t.ID})
		}
		return m, nil

	case key.Matches(msg, k.Select):
		row, ok := m.todoList.Current()
		if !ok {
			return m, nil
		}
		if row.Kind == todolist.RowTodo {
			m.selection.Toggle(row.Todo.ID)
		} else {
			m.selection.ToggleMany(row.IDs)
		}
		return m, nil

	case key.Matches(msg, k.SelectAll):
		m.selection.ToggleMany(m.todoList.VisibleIDs())
		return m, nil

	case key.Matches(msg, k.Back):
		m.selection.Clear()
		return m, nil

	case key.Matches(msg, k.BulkComplete):
		ids := m.selection.IDs()
		if len(ids) == 0 {
			return m, nil
		}
		m.selection.Clear()
		return m, m.completeTodos(ids)

	case key.Matches(msg, k.BulkDelete):
		ids := m.selection.IDs()
		if len(ids) == 0 {
			return m, nil
		}
		return m, m.askDelete(ids, true)

	case key.Matches(msg, k.CopySelected):
		ids := m.selection.IDs()
		if len(ids) == 0 {
			return m, nil
		}
		return m, m.copySelected(ids)

	case key.Matches(msg, k.CopyUrgent):
		return m, m.copyUrgent()

	case key.Matches(msg, k.CycleFilter):
		return m, m.setFilter(m.prefs.Filter().Next())

	case key.Matches(msg, k.FilterAll):
		return m, m.setFilter(model.FilterAll)

	case key.Matches(msg, k.FilterActive):
		return m, m.setFilter(model.FilterActive)

	case key.Matches(msg, k.FilterCompleted):
		return m, m.setFilter(model.FilterCompleted)

	case key.Matches(msg, k.CycleSort):
		return m, m.setSort(m.prefs.Sort().Next())

	case key.Matches(msg, k.ToggleGroup):
		return m, m.setGrouped(!m.prefs.Grouped())
	}

	var cmd tea.Cmd
	m.todoList, cmd = m.todoList.Update(msg)
	return m, cmd
}
