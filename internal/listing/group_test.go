package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo/internal/model"
)

type bucket struct {
	label string
	ids   []string
}

func shape(groups []YearGroup) []bucket {
	var out []bucket
	for _, g := range groups {
		for _, m := range g.Months {
			out = append(out, bucket{label: g.Label() + "/" + m.Label(), ids: m.IDs()})
		}
	}
	return out
}

func TestGroupActiveAscending(t *testing.T) {
	groups := Group(fixture(), model.Preferences{Filter: model.FilterActive, Sort: model.SortNone})

	assert.Equal(t, []bucket{
		{"2024/December", []string{"c"}},
		{"2025/March", []string{"a", "d"}},
		{NoDateLabel + "/" + NoDateLabel, []string{"n1"}},
	}, shape(groups))
}

func TestGroupCompletedDescending(t *testing.T) {
	groups := Group(fixture(), model.Preferences{Filter: model.FilterCompleted, Sort: model.SortNone})

	assert.Equal(t, []bucket{
		{NoDateLabel + "/" + NoDateLabel, []string{"n2"}},
		{"2025/March", []string{"e"}},
		{"2025/January", []string{"b"}},
	}, shape(groups))
}

func TestGroupExplicitSortOverridesFilterDirection(t *testing.T) {
	asc := Group(fixture(), model.Preferences{Filter: model.FilterCompleted, Sort: model.SortDateAsc})
	assert.Equal(t, []bucket{
		{"2025/January", []string{"b"}},
		{"2025/March", []string{"e"}},
		{NoDateLabel + "/" + NoDateLabel, []string{"n2"}},
	}, shape(asc))

	desc := Group(fixture(), model.Preferences{Filter: model.FilterAll, Sort: model.SortDateDesc})
	assert.Equal(t, []bucket{
		{NoDateLabel + "/" + NoDateLabel, []string{"n1", "n2"}},
		{"2025/March", []string{"a", "d", "e"}},
		{"2025/January", []string{"b"}},
		{"2024/December", []string{"c"}},
	}, shape(desc))
}

func TestGroupYearsHoldMonths(t *testing.T) {
	groups := Group(fixture(), model.Preferences{Filter: model.FilterAll, Sort: model.SortDateAsc})

	require.Len(t, groups, 3)
	assert.Equal(t, 2024, groups[0].Year)
	assert.Equal(t, 2025, groups[1].Year)
	require.Len(t, groups[1].Months, 2)
	assert.Equal(t, time.January, groups[1].Months[0].Month)
	assert.Equal(t, time.March, groups[1].Months[1].Month)
	assert.Equal(t, 4, groups[1].Len())
	assert.Equal(t, []string{"b", "e", "a", "d"}, groups[1].IDs())
	assert.True(t, groups[2].NoDate)
}

func TestGroupIsTotalPermutation(t *testing.T) {
	todos := fixture()
	for _, f := range []model.Filter{model.FilterAll, model.FilterActive, model.FilterCompleted} {
		for _, s := range []model.SortOrder{model.SortNone, model.SortDateAsc, model.SortDateDesc} {
			p := model.Preferences{Filter: f, Sort: s}
			flat := ids(Flatten(Group(todos, p)))
			assert.ElementsMatch(t, ids(FilterTodos(todos, f)), flat, "filter %s sort %s", f, s)

			seen := map[string]bool{}
			for _, id := range flat {
				assert.False(t, seen[id], "duplicate %s", id)
				seen[id] = true
			}
		}
	}
}

func TestGroupFlattenMatchesExplicitSort(t *testing.T) {
	todos := fixture()
	for _, f := range []model.Filter{model.FilterAll, model.FilterActive, model.FilterCompleted} {
		for _, s := range []model.SortOrder{model.SortDateAsc, model.SortDateDesc} {
			p := model.Preferences{Filter: f, Sort: s}
			assert.Equal(t, ids(Apply(todos, p)), ids(Flatten(Group(todos, p))), "filter %s sort %s", f, s)
		}
	}
}

func TestGroupIdempotent(t *testing.T) {
	p := model.Preferences{Filter: model.FilterAll, Sort: model.SortNone}
	assert.Equal(t, Group(fixture(), p), Group(fixture(), p))
}

func TestGroupEmpty(t *testing.T) {
	assert.Empty(t, Group(nil, model.DefaultPreferences()))
	assert.Empty(t, Group([]model.Todo{{ID: "x", Completed: true}}, model.Preferences{Filter: model.FilterActive}))
	assert.Empty(t, Flatten(nil))
}
