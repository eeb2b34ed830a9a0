// Package listing derives the displayed todo sequence from the collection
// and the view preferences.
//
// Every function is pure: inputs are never modified, equal inputs give
// equal outputs, and ties are always broken by the original position so
// the result is fully ordered.
package listing

import (
	"sort"

	"github.com/nhle/todo/internal/model"
)

// Direction is the due date ordering used by sorting and grouping.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// DirectionFor returns the ordering for a filter and sort order. An
// explicit sort order wins. Otherwise completed todos read newest first
// and everything else reads soonest first.
func DirectionFor(f model.Filter, s model.SortOrder) Direction {
	switch s {
	case model.SortDateAsc:
		return Ascending
	case model.SortDateDesc:
		return Descending
	}
	if f == model.FilterCompleted {
		return Descending
	}
	return Ascending
}

// FilterTodos returns the todos matching f, in their original order.
func FilterTodos(todos []model.Todo, f model.Filter) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if f.Matches(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// SortTodos returns todos ordered by s.
//
// With SortNone the order is unchanged. Ascending puts todos without a due
// date last, descending puts them first.
func SortTodos(todos []model.Todo, s model.SortOrder) []model.Todo {
	out := make([]model.Todo, len(todos))
	for i, t := range todos {
		out[i] = t.Clone()
	}
	switch s {
	case model.SortDateAsc:
		sortByDueDate(out, Ascending)
	case model.SortDateDesc:
		sortByDueDate(out, Descending)
	}
	return out
}

// Apply filters then sorts todos according to p.
func Apply(todos []model.Todo, p model.Preferences) []model.Todo {
	return SortTodos(FilterTodos(todos, p.Filter), p.Sort)
}

// sortByDueDate orders todos in place. The sort is stable, so equal due
// dates keep their relative order.
func sortByDueDate(todos []model.Todo, dir Direction) {
	sort.SliceStable(todos, func(i, j int) bool {
		return dueBefore(todos[i], todos[j], dir)
	})
}

// dueBefore reports whether a sorts strictly before b.
func dueBefore(a, b model.Todo, dir Direction) bool {
	switch {
	case !a.HasDueDate() && !b.HasDueDate():
		return false
	case !a.HasDueDate():
		return dir == Descending
	case !b.HasDueDate():
		return dir == Ascending
	case dir == Descending:
		return a.EndAt.After(*b.EndAt)
	default:
		return a.EndAt.Before(*b.EndAt)
	}
}
