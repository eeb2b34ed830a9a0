package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/store"
	"github.com/nhle/todo/tests/testutil"
)

func sampleTodos() []model.Todo {
	end := time.Date(2025, 4, 2, 0, 0, 0, 0, time.Local)
	return []model.Todo{
		{ID: "b", Title: "second inserted first", Note: "multi\nline", EndAt: &end, URL: "https://x.test"},
		{ID: "a", Title: "plain", Completed: true},
	}
}

func assertSameTodos(t *testing.T, want, got []model.Todo) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Note, got[i].Note)
		assert.Equal(t, want[i].URL, got[i].URL)
		assert.Equal(t, want[i].Completed, got[i].Completed)
		if want[i].EndAt == nil {
			assert.Nil(t, got[i].EndAt)
			continue
		}
		require.NotNil(t, got[i].EndAt)
		assert.True(t, want[i].EndAt.Equal(*got[i].EndAt), "end_at of %s", want[i].ID)
	}
}

// backends runs each test against both Store implementations.
func backends(t *testing.T) map[string]store.Store {
	return map[string]store.Store{
		"sqlite": testutil.NewTestStore(t),
		"memory": store.NewMemoryStore(),
	}
}

func TestEmptyStore(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			todos, err := s.LoadTodos(ctx)
			require.NoError(t, err)
			assert.Empty(t, todos)

			prefs, err := s.LoadPreferences(ctx)
			require.NoError(t, err)
			assert.Equal(t, model.DefaultPreferences(), prefs)
		})
	}
}

func TestSaveLoadTodosKeepsOrder(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			want := sampleTodos()
			require.NoError(t, s.SaveTodos(ctx, want))

			got, err := s.LoadTodos(ctx)
			require.NoError(t, err)
			assertSameTodos(t, want, got)
		})
	}
}

func TestSaveTodosReplacesCollection(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			testutil.SeedTodos(t, s, sampleTodos()...)
			require.NoError(t, s.SaveTodos(ctx, []model.Todo{{ID: "c", Title: "only"}}))

			got, err := s.LoadTodos(ctx)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "c", got[0].ID)

			require.NoError(t, s.SaveTodos(ctx, nil))
			got, err = s.LoadTodos(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			p := model.Preferences{Filter: model.FilterCompleted, Sort: model.SortDateDesc, Grouped: false}
			require.NoError(t, s.SavePreferences(ctx, p))

			got, err := s.LoadPreferences(ctx)
			require.NoError(t, err)
			assert.Equal(t, p, got)

			p.Filter = model.FilterActive
			require.NoError(t, s.SavePreferences(ctx, p))
			got, err = s.LoadPreferences(ctx)
			require.NoError(t, err)
			assert.Equal(t, model.FilterActive, got.Filter)
		})
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "todo.db")

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveTodos(ctx, sampleTodos()))
	require.NoError(t, s.SavePreferences(ctx, model.Preferences{Filter: model.FilterActive, Sort: model.SortDateAsc}))
	require.NoError(t, s.Close())

	reopened, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.LoadTodos(ctx)
	require.NoError(t, err)
	assertSameTodos(t, sampleTodos(), got)

	prefs, err := reopened.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.FilterActive, prefs.Filter)
	assert.Equal(t, model.SortDateAsc, prefs.Sort)
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	todos := sampleTodos()
	require.NoError(t, s.SaveTodos(ctx, todos))
	todos[0].Title = "changed after save"

	got, err := s.LoadTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second inserted first", got[0].Title)
}

func TestDefaultPreferencesOption(t *testing.T) {
	ctx := context.Background()
	want := model.Preferences{Filter: model.FilterAll, Sort: model.SortNone, Grouped: false}

	sqlite, err := store.NewSQLiteStore(store.MemoryPath, store.WithDefaultPreferences(want))
	require.NoError(t, err)
	defer sqlite.Close()

	for name, s := range map[string]store.Store{
		"sqlite": sqlite,
		"memory": store.NewMemoryStore(store.WithDefaultPreferences(want)),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := s.LoadPreferences(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
