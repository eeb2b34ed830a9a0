// Package state holds the in-memory containers behind the UI: the task
// list, the view preferences and the selection.
//
// Containers are constructed once at startup and passed by reference to
// the presentation layer. They perform no I/O and no validation; the caller
// persists snapshots after each mutation.
package state

import (
	"github.com/google/uuid"

	"github.com/nhle/todo/internal/model"
)

// TaskList is the ordered todo collection. Insertion order is the
// canonical order before any filtering or sorting.
type TaskList struct {
	todos []model.Todo
	newID func() string
}

// TaskListOption configures a TaskList.
type TaskListOption func(*TaskList)

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(fn func() string) TaskListOption {
	return func(l *TaskList) {
		l.newID = fn
	}
}

// NewTaskList creates a task list seeded with todos, typically the
// collection loaded from the store.
func NewTaskList(todos []model.Todo, opts ...TaskListOption) *TaskList {
	l := &TaskList{
		todos: cloneAll(todos),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends a new incomplete todo built from d and returns it.
func (l *TaskList) Add(d model.Draft) model.Todo {
	t := model.Todo{
		ID:    l.uniqueID(),
		Title: d.Title,
		Note:  d.Note,
		URL:   d.URL,
	}
	if d.EndAt != nil {
		end := *d.EndAt
		t.EndAt = &end
	}
	l.todos = append(l.todos, t)
	return t.Clone()
}

// Remove deletes the todo with the given id. It reports false when no
// such todo exists.
func (l *TaskList) Remove(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.todos = append(l.todos[:i:i], l.todos[i+1:]...)
	return true
}

// SetCompleted sets the completion flag of a todo.
func (l *TaskList) SetCompleted(id string, completed bool) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.todos[i].Completed = completed
	return true
}

// Update merges p into the todo with the given id.
func (l *TaskList) Update(id string, p model.Patch) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.todos[i] = p.Apply(l.todos[i])
	return true
}

// CompleteMany marks every listed todo completed and returns how many
// todos were found.
func (l *TaskList) CompleteMany(ids []string) int {
	n := 0
	for _, id := range ids {
		if l.SetCompleted(id, true) {
			n++
		}
	}
	return n
}

// RemoveMany deletes every listed todo and returns how many were removed.
func (l *TaskList) RemoveMany(ids []string) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := l.todos[:0:0]
	for _, t := range l.todos {
		if !drop[t.ID] {
			kept = append(kept, t)
		}
	}
	n := len(l.todos) - len(kept)
	l.todos = kept
	return n
}

// Get returns a copy of the todo with the given id.
func (l *TaskList) Get(id string) (model.Todo, bool) {
	i := l.index(id)
	if i < 0 {
		return model.Todo{}, false
	}
	return l.todos[i].Clone(), true
}

// All returns a copy of the collection in insertion order.
func (l *TaskList) All() []model.Todo {
	return cloneAll(l.todos)
}

// IDs returns the ids of all todos as a set.
func (l *TaskList) IDs() map[string]bool {
	ids := make(map[string]bool, len(l.todos))
	for _, t := range l.todos {
		ids[t.ID] = true
	}
	return ids
}

// Len returns the number of todos.
func (l *TaskList) Len() int {
	return len(l.todos)
}

// Counts tallies the collection by completion state.
func (l *TaskList) Counts() model.Counts {
	return model.CountTodos(l.todos)
}

func (l *TaskList) index(id string) int {
	for i := range l.todos {
		if l.todos[i].ID == id {
			return i
		}
	}
	return -1
}

// uniqueID draws ids until one is unused. With uuids this loops once.
func (l *TaskList) uniqueID() string {
	for {
		id := l.newID()
		if l.index(id) < 0 {
			return id
		}
	}
}

func cloneAll(todos []model.Todo) []model.Todo {
	out := make([]model.Todo, len(todos))
	for i, t := range todos {
		out[i] = t.Clone()
	}
	return out
}
