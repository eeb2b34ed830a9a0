package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/store"
	"github.com/nhle/todo/tests/testutil"
)

var now = time.Date(2025, 3, 15, 9, 0, 0, 0, time.Local)

func day(d int) *time.Time {
	t := time.Date(2025, 3, d, 0, 0, 0, 0, time.Local)
	return &t
}

func TestAddTodoAppendsAndSaves(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	testutil.SeedTodos(t, s, model.Todo{ID: "a", Title: "first"})

	added, err := addTodo(ctx, s, model.Draft{Title: "  second  ", EndAt: day(20)}, now, false)
	require.NoError(t, err)
	assert.Equal(t, "second", added.Title)
	assert.NotEmpty(t, added.ID)
	assert.False(t, added.Completed)

	todos, err := s.LoadTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "a", todos[0].ID)
	assert.Equal(t, added.ID, todos[1].ID)
}

func TestAddTodoValidates(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	tests := []struct {
		name       string
		draft      model.Draft
		rejectPast bool
		want       error
	}{
		{"empty title", model.Draft{Title: "   "}, false, model.ErrEmptyTitle},
		{"bad url", model.Draft{Title: "x", URL: "ftp://host"}, false, model.ErrInvalidURL},
		{"past due", model.Draft{Title: "x", EndAt: day(1)}, true, model.ErrPastDueDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := addTodo(ctx, s, tt.draft, now, tt.rejectPast)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := addTodo(ctx, s, model.Draft{Title: "x", EndAt: day(1)}, now, false)
	assert.NoError(t, err, "past dates allowed unless configured")

	todos, err := s.LoadTodos(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestWriteListFlat(t *testing.T) {
	todos := []model.Todo{
		{ID: "1", Title: "later", EndAt: day(20)},
		{ID: "2", Title: "late", EndAt: day(14)},
		{ID: "3", Title: "today", EndAt: day(15), URL: "https://x.test"},
		{ID: "4", Title: "done", Completed: true},
	}
	var buf bytes.Buffer
	writeList(&buf, todos, model.Preferences{Filter: model.FilterActive, Sort: model.SortDateAsc}, now, "")

	assert.Equal(t, "[ ] late  due 2025-03-14 (overdue)\n"+
		"[ ] today  due 2025-03-15 (today)  https://x.test\n"+
		"[ ] later  due 2025-03-20\n", buf.String())
}

func TestWriteListGrouped(t *testing.T) {
	todos := []model.Todo{
		{ID: "1", Title: "someday"},
		{ID: "2", Title: "late", EndAt: day(14)},
	}
	var buf bytes.Buffer
	writeList(&buf, todos, model.Preferences{Filter: model.FilterAll, Grouped: true}, now, "")

	assert.Equal(t, "2025 (1)\n"+
		"  March (1)\n"+
		"    [ ] late  due 2025-03-14 (overdue)\n"+
		"No due date (1)\n"+
		"  [ ] someday\n", buf.String())
}

func TestWriteListEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeList(&buf, nil, model.DefaultPreferences(), now, "")
	assert.Equal(t, "No tasks.\n", buf.String())
}

type failingClipboard struct{}

func (failingClipboard) WriteAll(string) error { return errors.New("no display") }

func TestCopyToWrapsError(t *testing.T) {
	err := copyTo(failingClipboard{}, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copying to clipboard")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo", "config.yaml")
	require.NoError(t, writeDefaultConfig(path, false))

	cfg, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, model.ExportFormatDetailed, cfg.Export.Format)
	assert.True(t, cfg.Behavior.ConfirmDelete)

	assert.Error(t, writeDefaultConfig(path, false))
	assert.NoError(t, writeDefaultConfig(path, true))
}
