package state

import "github.com/nhle/todo/internal/model"

// Preferences holds the filter, sort order and grouping mode.
type Preferences struct {
	p model.Preferences
}

// NewPreferences creates a preference holder seeded with p. Unknown
// values are replaced by their defaults.
func NewPreferences(p model.Preferences) *Preferences {
	return &Preferences{p: p.Normalize()}
}

// Filter returns the active filter.
func (s *Preferences) Filter() model.Filter { return s.p.Filter }

// Sort returns the active sort order.
func (s *Preferences) Sort() model.SortOrder { return s.p.Sort }

// Grouped reports whether the year/month grouping is on.
func (s *Preferences) Grouped() bool { return s.p.Grouped }

// SetFilter changes the filter and reports whether it differed.
// Unknown values are ignored.
func (s *Preferences) SetFilter(f model.Filter) bool {
	if !f.IsValid() || f == s.p.Filter {
		return false
	}
	s.p.Filter = f
	return true
}

// SetSort changes the sort order and reports whether it differed.
// Unknown values are ignored.
func (s *Preferences) SetSort(o model.SortOrder) bool {
	if !o.IsValid() || o == s.p.Sort {
		return false
	}
	s.p.Sort = o
	return true
}

// SetGrouped turns grouping on or off and reports whether it changed.
func (s *Preferences) SetGrouped(grouped bool) bool {
	if grouped == s.p.Grouped {
		return false
	}
	s.p.Grouped = grouped
	return true
}

// Snapshot returns the current value for persistence.
func (s *Preferences) Snapshot() model.Preferences {
	return s.p
}
