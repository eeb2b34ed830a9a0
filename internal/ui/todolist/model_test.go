package todolist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo/internal/listing"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/state"
)

var fixedNow = time.Date(2025, 3, 15, 9, 0, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func todos() []model.Todo {
	return []model.Todo{
		{ID: "a", Title: "file taxes", EndAt: day(2025, 3, 14)},
		{ID: "b", Title: "water plants", EndAt: day(2025, 3, 15), URL: "https://plants.test"},
		{ID: "c", Title: "someday"},
	}
}

func TestGroupRows(t *testing.T) {
	rows := GroupRows(listing.Group(todos(), model.DefaultPreferences()))

	kinds := make([]RowKind, len(rows))
	for i, r := range rows {
		kinds[i] = r.Kind
	}
	assert.Equal(t, []RowKind{RowYear, RowMonth, RowTodo, RowTodo, RowYear, RowTodo}, kinds)
	assert.Equal(t, "2025", rows[0].Label)
	assert.Equal(t, []string{"a", "b"}, rows[0].IDs)
	assert.Equal(t, "March", rows[1].Label)
	assert.Equal(t, listing.NoDateLabel, rows[4].Label)
	assert.Equal(t, []string{"c"}, rows[4].IDs)
}

func TestSetRowsKeepsCursorOnTodo(t *testing.T) {
	m := New(state.NewSelection(), clock, "", 80, 20)
	m.SetRows(TodoRows(todos()), "")
	m.list.Select(1)

	cur, ok := m.CurrentTodo()
	require.True(t, ok)
	require.Equal(t, "b", cur.ID)

	// Reorder: b moves to the front.
	reordered := []model.Todo{todos()[1], todos()[0], todos()[2]}
	m.SetRows(TodoRows(reordered), "")

	cur, ok = m.CurrentTodo()
	require.True(t, ok)
	assert.Equal(t, "b", cur.ID)
}

func TestSetRowsClampsCursorWhenRowVanishes(t *testing.T) {
	m := New(state.NewSelection(), clock, "", 80, 20)
	m.SetRows(TodoRows(todos()), "")
	m.list.Select(2)

	m.SetRows(TodoRows(todos()[:2]), "")
	assert.Equal(t, 1, m.Index())
}

func TestVisibleIDsSkipsHeadings(t *testing.T) {
	m := New(state.NewSelection(), clock, "", 80, 20)
	m.SetRows(GroupRows(listing.Group(todos(), model.DefaultPreferences())), "")

	assert.Equal(t, []string{"a", "b", "c"}, m.VisibleIDs())
	assert.Equal(t, 6, m.Len())

	_, ok := m.CurrentTodo()
	assert.False(t, ok, "cursor starts on the year heading")
}

func TestEmptyStateShowsHint(t *testing.T) {
	m := New(state.NewSelection(), clock, "", 60, 10)
	m.SetRows(nil, "Nothing here")
	assert.Contains(t, m.View(), "Nothing here")
}

func TestRenderMarksSelectionAndUrgency(t *testing.T) {
	sel := state.NewSelection()
	sel.Toggle("a")
	rows := GroupRows(listing.Group(todos(), model.DefaultPreferences()))

	d := ItemDelegate{selection: sel, now: clock}
	assert.Contains(t, d.renderHeading(rows[0]), "[-]")
	assert.Contains(t, d.renderTodo(rows[2].Todo), "[x]")
	assert.Contains(t, d.renderTodo(rows[2].Todo), "(overdue)")
	assert.Contains(t, d.renderTodo(rows[3].Todo), "(today)")
	assert.Contains(t, d.renderTodo(rows[3].Todo), "↗")
	assert.Contains(t, d.renderTodo(rows[5].Todo), "[ ]")
}
