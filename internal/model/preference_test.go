package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatches(t *testing.T) {
	open := Todo{ID: "1"}
	done := Todo{ID: "2", Completed: true}

	assert.True(t, FilterAll.Matches(open))
	assert.True(t, FilterAll.Matches(done))
	assert.True(t, FilterActive.Matches(open))
	assert.False(t, FilterActive.Matches(done))
	assert.False(t, FilterCompleted.Matches(open))
	assert.True(t, FilterCompleted.Matches(done))
}

func TestCycles(t *testing.T) {
	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterCompleted, FilterActive.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
	assert.Equal(t, FilterAll, Filter("bogus").Next())

	assert.Equal(t, SortDateAsc, SortNone.Next())
	assert.Equal(t, SortDateDesc, SortDateAsc.Next())
	assert.Equal(t, SortNone, SortDateDesc.Next())
}

func TestParsePreferenceValues(t *testing.T) {
	f, err := ParseFilter("completed")
	require.NoError(t, err)
	assert.Equal(t, FilterCompleted, f)

	_, err = ParseFilter("done")
	assert.True(t, errors.Is(err, ErrInvalidFilter))

	s, err := ParseSortOrder("date-desc")
	require.NoError(t, err)
	assert.Equal(t, SortDateDesc, s)

	_, err = ParseSortOrder("title")
	assert.True(t, errors.Is(err, ErrInvalidSortOrder))
}

func TestPreferencesNormalize(t *testing.T) {
	p := Preferences{Filter: "weird", Sort: "sideways", Grouped: true}.Normalize()
	assert.Equal(t, Preferences{Filter: FilterAll, Sort: SortNone, Grouped: true}, p)

	kept := Preferences{Filter: FilterActive, Sort: SortDateAsc}
	assert.Equal(t, kept, kept.Normalize())
}

func TestPatchApply(t *testing.T) {
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	base := Todo{ID: "a", Title: "old", Note: "n", URL: "https://x.test", EndAt: &end, Completed: true}

	title := "new"
	got := Patch{Title: &title}.Apply(base)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "n", got.Note)
	assert.Equal(t, "a", got.ID)
	assert.True(t, got.Completed)
	require.NotNil(t, got.EndAt)

	got = Patch{ClearEndAt: true, EndAt: &end}.Apply(base)
	assert.Nil(t, got.EndAt)

	empty := ""
	got = Patch{Note: &empty, URL: &empty}.Apply(base)
	assert.Empty(t, got.Note)
	assert.Empty(t, got.URL)
}

func TestCloneDetachesEndAt(t *testing.T) {
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	orig := Todo{ID: "a", EndAt: &end}
	c := orig.Clone()
	*c.EndAt = c.EndAt.AddDate(1, 0, 0)
	assert.Equal(t, 2025, orig.EndAt.Year())
	assert.True(t, c.HasDueDate())
	assert.False(t, Todo{ID: "b"}.HasDueDate())
}

func TestCountTodos(t *testing.T) {
	c := CountTodos([]Todo{{ID: "1"}, {ID: "2", Completed: true}, {ID: "3"}})
	assert.Equal(t, Counts{Total: 3, Active: 2, Completed: 1}, c)
	assert.Equal(t, Counts{}, CountTodos(nil))
}
