package state

// Selection is the session-scoped set of selected todo ids. It is never
// persisted. IDs are reported in the order they were selected.
type Selection struct {
	order []string
	set   map[string]bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{set: make(map[string]bool)}
}

// Toggle flips membership of id.
func (s *Selection) Toggle(id string) {
	if s.set[id] {
		s.remove(id)
		return
	}
	s.add(id)
}

// ToggleMany clears every id in ids when all of them are selected, and
// otherwise selects the ones that are not selected yet.
func (s *Selection) ToggleMany(ids []string) {
	if s.AllSelected(ids) {
		for _, id := range ids {
			s.remove(id)
		}
		return
	}
	for _, id := range ids {
		s.add(id)
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.order = nil
	s.set = make(map[string]bool)
}

// IsSelected reports whether id is selected.
func (s *Selection) IsSelected(id string) bool {
	return s.set[id]
}

// AllSelected reports whether ids is non-empty and every id is selected.
func (s *Selection) AllSelected(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s.set[id] {
			return false
		}
	}
	return true
}

// SomeSelected reports whether some, but not all, of ids are selected.
func (s *Selection) SomeSelected(ids []string) bool {
	n := 0
	for _, id := range ids {
		if s.set[id] {
			n++
		}
	}
	return n > 0 && n < len(ids)
}

// Retain drops selected ids that are not in valid.
func (s *Selection) Retain(valid map[string]bool) {
	for _, id := range s.IDs() {
		if !valid[id] {
			s.remove(id)
		}
	}
}

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.order)
}

func (s *Selection) add(id string) {
	if s.set[id] {
		return
	}
	s.set[id] = true
	s.order = append(s.order, id)
}

func (s *Selection) remove(id string) {
	if !s.set[id] {
		return
	}
	delete(s.set, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			return
		}
	}
}
