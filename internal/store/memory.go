package store

import (
	"context"
	"sync"

	"github.com/nhle/todo/internal/model"
)

// MemoryStore keeps everything in process memory. Nothing survives a
// restart.
type MemoryStore struct {
	mu    sync.RWMutex
	todos []model.Todo
	prefs *model.Preferences
	opts  options
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{opts: buildOptions(opts)}
}

// LoadTodos returns a copy of the stored collection.
func (m *MemoryStore) LoadTodos(_ context.Context) ([]model.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyTodos(m.todos), nil
}

// SaveTodos replaces the stored collection with a copy of todos.
func (m *MemoryStore) SaveTodos(_ context.Context, todos []model.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.todos = copyTodos(todos)
	return nil
}

// LoadPreferences returns the stored preferences or the defaults.
func (m *MemoryStore) LoadPreferences(_ context.Context) (model.Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.prefs == nil {
		return m.opts.defaults, nil
	}
	return *m.prefs, nil
}

// SavePreferences stores p.
func (m *MemoryStore) SavePreferences(_ context.Context, p model.Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = &p
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

func copyTodos(todos []model.Todo) []model.Todo {
	out := make([]model.Todo, len(todos))
	for i, t := range todos {
		out[i] = t.Clone()
	}
	return out
}
