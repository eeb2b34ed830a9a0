package testutil

import (
	"context"
	"testing"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(store.MemoryPath)
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// SeedTodos replaces the todo collection of s.
func SeedTodos(t *testing.T, s store.Store, todos ...model.Todo) {
	t.Helper()

	if err := s.SaveTodos(context.Background(), todos); err != nil {
		t.Fatalf("seeding todos: %v", err)
	}
}

// SeedPreferences stores p as the saved preferences of s.
func SeedPreferences(t *testing.T, s store.Store, p model.Preferences) {
	t.Helper()

	if err := s.SavePreferences(context.Background(), p); err != nil {
		t.Fatalf("seeding preferences: %v", err)
	}
}

// NewSeededStore returns a test store holding todos and p.
func NewSeededStore(t *testing.T, p model.Preferences, todos ...model.Todo) *store.SQLiteStore {
	t.Helper()

	s := NewTestStore(t)
	SeedTodos(t, s, todos...)
	SeedPreferences(t, s, p)
	return s
}
