package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/todo/internal/model"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()

	s.Toggle("a")
	assert.True(t, s.IsSelected("a"))
	assert.Equal(t, 1, s.Len())

	s.Toggle("a")
	assert.False(t, s.IsSelected("a"))
	assert.Equal(t, 0, s.Len())
}

func TestSelectionToggleManySelectsRemaining(t *testing.T) {
	s := NewSelection()
	s.Toggle("b")

	s.ToggleMany([]string{"a", "b", "c"})
	assert.Equal(t, []string{"b", "a", "c"}, s.IDs())

	s.ToggleMany([]string{"a", "b", "c"})
	assert.Empty(t, s.IDs())
}

func TestSelectionToggleManyTwiceRestores(t *testing.T) {
	ids := []string{"1", "2", "3"}

	tests := []struct {
		name    string
		initial []string
	}{
		{"none selected", nil},
		{"unrelated selected", []string{"x", "y"}},
		{"all selected", []string{"1", "2", "3"}},
		{"all selected plus others", []string{"x", "1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			for _, id := range tt.initial {
				s.Toggle(id)
			}

			s.ToggleMany(ids)
			s.ToggleMany(ids)

			assert.ElementsMatch(t, tt.initial, s.IDs())
		})
	}
}

func TestSelectionToggleManyEmpty(t *testing.T) {
	s := NewSelection()
	s.Toggle("a")
	s.ToggleMany(nil)
	assert.Equal(t, []string{"a"}, s.IDs())
}

func TestSelectionTriState(t *testing.T) {
	s := NewSelection()
	ids := []string{"1", "2"}

	assert.False(t, s.AllSelected(ids))
	assert.False(t, s.SomeSelected(ids))

	s.Toggle("1")
	assert.False(t, s.AllSelected(ids))
	assert.True(t, s.SomeSelected(ids))

	s.Toggle("2")
	assert.True(t, s.AllSelected(ids))
	assert.False(t, s.SomeSelected(ids))

	assert.False(t, s.AllSelected(nil), "empty ids are never all selected")
	assert.False(t, s.SomeSelected(nil))
}

func TestSelectionClearAndRetain(t *testing.T) {
	s := NewSelection()
	s.ToggleMany([]string{"1", "2", "3"})

	s.Retain(map[string]bool{"1": true, "3": true})
	assert.Equal(t, []string{"1", "3"}, s.IDs())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsSelected("1"))
}

func TestPreferences(t *testing.T) {
	p := NewPreferences(model.Preferences{Filter: "bogus", Sort: model.SortDateAsc})

	assert.Equal(t, model.FilterAll, p.Filter())
	assert.Equal(t, model.SortDateAsc, p.Sort())

	assert.True(t, p.SetFilter(model.FilterActive))
	assert.False(t, p.SetFilter(model.FilterActive), "unchanged value")
	assert.False(t, p.SetFilter("nope"), "unknown value")
	assert.Equal(t, model.FilterActive, p.Filter())

	assert.True(t, p.SetSort(model.SortDateDesc))
	assert.False(t, p.SetSort("title"))

	assert.True(t, p.SetGrouped(true))
	assert.False(t, p.SetGrouped(true))

	assert.Equal(t, model.Preferences{
		Filter:  model.FilterActive,
		Sort:    model.SortDateDesc,
		Grouped: true,
	}, p.Snapshot())
}
