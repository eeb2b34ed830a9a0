package app

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo/internal/listing"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/ui/todolist"
)

// saveResultMsg is sent after a snapshot has been written (or skipped
// because a newer one was already written).
type saveResultMsg struct {
	what    string
	err     error
	skipped bool
}

// persister writes whole snapshots of one value. Each Save takes a
// generation number; a snapshot older than the last written one is
// dropped so a slow write can never overwrite a newer state.
type persister[T any] struct {
	what  string
	write func(context.Context, T) error

	mu      sync.Mutex
	next    uint64
	written uint64
}

func newPersister[T any](what string, write func(context.Context, T) error) *persister[T] {
	return &persister[T]{what: what, write: write}
}

// Save returns a command that writes v.
func (p *persister[T]) Save(v T) tea.Cmd {
	p.mu.Lock()
	p.next++
	gen := p.next
	p.mu.Unlock()

	return func() tea.Msg {
		p.mu.Lock()
		defer p.mu.Unlock()
		if gen <= p.written {
			return saveResultMsg{what: p.what, skipped: true}
		}
		if err := p.write(context.Background(), v); err != nil {
			return saveResultMsg{what: p.what, err: err}
		}
		p.written = gen
		return saveResultMsg{what: p.what}
	}
}

func (m *Model) handleSaveResult(msg saveResultMsg) {
	if msg.err != nil {
		m.logger.Error("save failed", "what", msg.what, "err", msg.err)
		m.saveErr = msg.err
		return
	}
	if !msg.skipped {
		m.saveErr = nil
	}
}

func (m *Model) persistTodos() tea.Cmd {
	return m.saveTodos.Save(m.tasks.All())
}

func (m *Model) persistPrefs() tea.Cmd {
	return m.savePrefs.Save(m.prefs.Snapshot())
}

// refreshList rebuilds the visible rows from the stores.
func (m *Model) refreshList() tea.Cmd {
	prefs := m.prefs.Snapshot()
	todos := m.tasks.All()

	var rows []todolist.Row
	if prefs.Grouped {
		rows = todolist.GroupRows(listing.Group(todos, prefs))
	} else {
		rows = todolist.TodoRows(listing.Apply(todos, prefs))
	}
	return m.todoList.SetRows(rows, emptyHint(len(todos), prefs.Filter))
}

func emptyHint(total int, f model.Filter) string {
	if total == 0 {
		return "No tasks yet.\n\nPress n to add one."
	}
	return fmt.Sprintf("No %s tasks.\n\nPress 1 to show all.", f)
}

// changed refreshes the list and saves the todos after a mutation.
func (m *Model) changed() tea.Cmd {
	return tea.Batch(m.refreshList(), m.persistTodos())
}

func (m *Model) startCreate() tea.Cmd {
	m.previousView = ViewList
	m.currentView = ViewTodoCreate
	return m.todoForm.StartCreate()
}

func (m *Model) startEdit(t model.Todo) tea.Cmd {
	if t.Completed {
		return nil
	}
	if m.currentView != ViewTodoEdit {
		m.previousView = m.currentView
	}
	m.currentView = ViewTodoEdit
	return m.todoForm.StartEdit(t)
}

func (m *Model) createTodo(d model.Draft) tea.Cmd {
	t := m.tasks.Add(d)
	m.logger.Debug("todo created", "id", t.ID)
	return m.changed()
}

func (m *Model) updateTodo(id string, p model.Patch) tea.Cmd {
	if !m.tasks.Update(id, p) {
		// Deleted meanwhile.
		if m.currentView == ViewDetail {
			m.currentView = ViewList
		}
		return m.refreshList()
	}
	m.logger.Debug("todo updated", "id", id)
	if m.currentView == ViewDetail {
		t, ok := m.tasks.Get(id)
		m.detail.Refresh(t, ok)
	}
	return m.changed()
}

func (m *Model) setCompleted(id string, completed bool) tea.Cmd {
	if !m.tasks.SetCompleted(id, completed) {
		return nil
	}
	m.logger.Debug("todo completion changed", "id", id, "completed", completed)
	return m.changed()
}

func (m *Model) completeTodos(ids []string) tea.Cmd {
	n := m.tasks.CompleteMany(ids)
	m.logger.Debug("todos completed", "count", n)
	if n == 0 {
		return m.refreshList()
	}
	return m.changed()
}

func (m *Model) deleteTodos(ids []string) tea.Cmd {
	n := m.tasks.RemoveMany(ids)
	m.selection.Retain(m.tasks.IDs())
	m.logger.Debug("todos deleted", "count", n)
	if n == 0 {
		return m.refreshList()
	}
	return m.changed()
}

// askDelete opens the confirmation dialog. bulk marks a selection delete,
// which clears the selection once confirmed.
func (m *Model) askDelete(ids []string, bulk bool) tea.Cmd {
	title := "Delete this task?"
	if len(ids) == 1 {
		if t, ok := m.tasks.Get(ids[0]); ok {
			title = fmt.Sprintf("Delete %q?", t.Title)
		}
	} else {
		title = fmt.Sprintf("Delete %s?", plural(len(ids), "task"))
	}
	m.pendingBulk = bulk
	m.previousView = ViewList
	m.currentView = ViewConfirm
	return m.confirmView.Ask(title, "This cannot be undone.", ids)
}

func (m *Model) setFilter(f model.Filter) tea.Cmd {
	if !m.prefs.SetFilter(f) {
		return nil
	}
	if m.cfg.Behavior.ClearSelectionOnFilterChange {
		m.selection.Clear()
	}
	return tea.Batch(m.refreshList(), m.persistPrefs())
}

func (m *Model) setSort(s model.SortOrder) tea.Cmd {
	if !m.prefs.SetSort(s) {
		return nil
	}
	return tea.Batch(m.refreshList(), m.persistPrefs())
}

func (m *Model) setGrouped(grouped bool) tea.Cmd {
	if !m.prefs.SetGrouped(grouped) {
		return nil
	}
	return tea.Batch(m.refreshList(), m.persistPrefs())
}

func (m *Model) openLink(url string) tea.Cmd {
	open := m.openURL
	return func() tea.Msg {
		return openURLResultMsg{url: url, err: open(url)}
	}
}

// Flush writes the current todos and preferences synchronously. It is
// called after the program exits so a save still in flight is not lost.
func (m Model) Flush() error {
	for _, save := range []tea.Cmd{m.persistTodos(), m.persistPrefs()} {
		if res, ok := save().(saveResultMsg); ok && res.err != nil {
			return fmt.Errorf("saving %s: %w", res.what, res.err)
		}
	}
	return nil
}
