package model

import "fmt"

// Filter selects which todos are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

var filterCycle = []Filter{FilterAll, FilterActive, FilterCompleted}

// IsValid reports whether f is a known filter.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t Todo) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter that follows f in the all → active → completed cycle.
func (f Filter) Next() Filter {
	for i, c := range filterCycle {
		if c == f {
			return filterCycle[(i+1)%len(filterCycle)]
		}
	}
	return FilterAll
}

// ParseFilter converts s to a Filter.
func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
	return f, nil
}

// SortOrder selects how todos are ordered by due date.
type SortOrder string

const (
	SortNone     SortOrder = "none"
	SortDateAsc  SortOrder = "date-asc"
	SortDateDesc SortOrder = "date-desc"
)

var sortCycle = []SortOrder{SortNone, SortDateAsc, SortDateDesc}

// IsValid reports whether s is a known sort order.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortNone, SortDateAsc, SortDateDesc:
		return true
	}
	return false
}

// Next returns the sort order that follows s in the none → asc → desc cycle.
func (s SortOrder) Next() SortOrder {
	for i, c := range sortCycle {
		if c == s {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return SortNone
}

// Label is the short human readable form used in the header.
func (s SortOrder) Label() string {
	switch s {
	case SortDateAsc:
		return "date ↑"
	case SortDateDesc:
		return "date ↓"
	default:
		return "unsorted"
	}
}

// ParseSortOrder converts s to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	o := SortOrder(s)
	if !o.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
	return o, nil
}

// Preferences is the persisted view state.
type Preferences struct {
	Filter  Filter    `json:"filter"`
	Sort    SortOrder `json:"sort"`
	Grouped bool      `json:"grouped"`
}

// DefaultPreferences returns the preferences used on first start.
func DefaultPreferences() Preferences {
	return Preferences{
		Filter:  FilterAll,
		Sort:    SortNone,
		Grouped: true,
	}
}

// Normalize replaces unknown values with their defaults.
func (p Preferences) Normalize() Preferences {
	if !p.Filter.IsValid() {
		p.Filter = FilterAll
	}
	if !p.Sort.IsValid() {
		p.Sort = SortNone
	}
	return p
}
