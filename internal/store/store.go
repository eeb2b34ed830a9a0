package store

import (
	"context"

	"github.com/nhle/todo/internal/model"
)

// PreferencesKey is the fixed key the view preferences are stored under.
const PreferencesKey = "todo-filter"

// Store defines the persistence interface for the todo collection and the
// view preferences. Each value is read once at startup and rewritten as a
// whole after every change.
type Store interface {
	// === Todos ===

	// LoadTodos returns the collection in insertion order. A store that
	// has never been written returns an empty collection.
	LoadTodos(ctx context.Context) ([]model.Todo, error)

	// SaveTodos replaces the whole collection atomically.
	SaveTodos(ctx context.Context, todos []model.Todo) error

	// === Preferences ===

	// LoadPreferences returns the saved preferences, or the defaults
	// when nothing has been saved yet.
	LoadPreferences(ctx context.Context) (model.Preferences, error)
	SavePreferences(ctx context.Context, p model.Preferences) error

	Close() error
}

// Option configures a Store implementation.
type Option func(*options)

type options struct {
	defaults model.Preferences
}

// WithDefaultPreferences sets what LoadPreferences returns before any
// preferences have been saved.
func WithDefaultPreferences(p model.Preferences) Option {
	return func(o *options) {
		o.defaults = p.Normalize()
	}
}

func buildOptions(opts []Option) options {
	o := options{defaults: model.DefaultPreferences()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
