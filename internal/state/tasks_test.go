package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo/internal/model"
)

func sequentialIDs() TaskListOption {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func seed() []model.Todo {
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	return []model.Todo{
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second", EndAt: &end, Completed: true},
	}
}

func TestTaskListAdd(t *testing.T) {
	l := NewTaskList(seed(), sequentialIDs())
	end := time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)

	got := l.Add(model.Draft{Title: "X", Note: "n", EndAt: &end, URL: "https://x.test"})

	assert.Equal(t, "id-1", got.ID)
	assert.False(t, got.Completed)
	assert.Equal(t, "X", got.Title)
	require.NotNil(t, got.EndAt)
	assert.True(t, got.EndAt.Equal(end))

	all := l.All()
	require.Len(t, all, 3)
	assert.Equal(t, "id-1", all[2].ID, "new todos are appended")
}

func TestTaskListAddSkipsCollidingIDs(t *testing.T) {
	ids := []string{"a", "a", "fresh"}
	i := 0
	l := NewTaskList(seed(), WithIDGenerator(func() string {
		id := ids[i]
		i++
		return id
	}))

	got := l.Add(model.Draft{Title: "X"})
	assert.Equal(t, "fresh", got.ID)
}

func TestTaskListAddRemoveRoundTrip(t *testing.T) {
	l := NewTaskList(seed())
	before := l.All()

	added := l.Add(model.Draft{Title: "X"})
	require.True(t, l.Remove(added.ID))

	assert.Equal(t, before, l.All())
}

func TestTaskListAddRemoveRoundTripEmpty(t *testing.T) {
	l := NewTaskList(nil)
	added := l.Add(model.Draft{Title: "X"})
	require.True(t, l.Remove(added.ID))
	assert.Empty(t, l.All())
	assert.Equal(t, 0, l.Len())
}

func TestTaskListMissingIDIsNoop(t *testing.T) {
	l := NewTaskList(seed())
	before := l.All()
	title := "changed"

	assert.False(t, l.Remove("nope"))
	assert.False(t, l.SetCompleted("nope", true))
	assert.False(t, l.Update("nope", model.Patch{Title: &title}))
	assert.Equal(t, before, l.All())
}

func TestTaskListSetCompleted(t *testing.T) {
	l := NewTaskList(seed())

	require.True(t, l.SetCompleted("a", true))
	got, ok := l.Get("a")
	require.True(t, ok)
	assert.True(t, got.Completed)
	assert.Equal(t, "first", got.Title)

	require.True(t, l.SetCompleted("a", false))
	got, _ = l.Get("a")
	assert.False(t, got.Completed)
}

func TestTaskListUpdate(t *testing.T) {
	l := NewTaskList(seed())
	title := "renamed"

	require.True(t, l.Update("b", model.Patch{Title: &title, ClearEndAt: true}))

	got, _ := l.Get("b")
	assert.Equal(t, "renamed", got.Title)
	assert.Nil(t, got.EndAt)
	assert.True(t, got.Completed, "update never touches completion")
	assert.Equal(t, "b", got.ID)
}

func TestTaskListReturnsCopies(t *testing.T) {
	l := NewTaskList(seed())

	all := l.All()
	all[0].Title = "mutated"
	*all[1].EndAt = all[1].EndAt.AddDate(5, 0, 0)

	fresh := l.All()
	assert.Equal(t, "first", fresh[0].Title)
	assert.Equal(t, 2025, fresh[1].EndAt.Year())
}

func TestTaskListBulk(t *testing.T) {
	l := NewTaskList([]model.Todo{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}})

	assert.Equal(t, 2, l.CompleteMany([]string{"1", "3", "missing"}))
	assert.Equal(t, model.Counts{Total: 4, Active: 2, Completed: 2}, l.Counts())

	assert.Equal(t, 2, l.RemoveMany([]string{"2", "3", "missing"}))
	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "4", all[1].ID)
	assert.Equal(t, map[string]bool{"1": true, "4": true}, l.IDs())
}
