package model

import "time"

// Length limits enforced by ValidateTitle and ValidateNote.
const (
	MaxTitleLength = 100
	MaxNoteLength  = 1000
)

// Todo is a single task owned by the user.
//
// ID is assigned at creation and never changes. Completed is only changed
// through the dedicated toggle path, never through an update patch.
type Todo struct {
	ID        string     `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Note      string     `json:"note,omitempty" db:"note"`
	EndAt     *time.Time `json:"end_at,omitempty" db:"end_at"`
	URL       string     `json:"url,omitempty" db:"url"`
	Completed bool       `json:"completed" db:"completed"`
}

// HasDueDate reports whether the todo carries a due date.
func (t Todo) HasDueDate() bool {
	return t.EndAt != nil
}

// Clone returns a copy that shares no pointers with t.
func (t Todo) Clone() Todo {
	if t.EndAt != nil {
		end := *t.EndAt
		t.EndAt = &end
	}
	return t
}

// Draft carries the user supplied fields of a todo that does not exist yet.
type Draft struct {
	Title string
	Note  string
	EndAt *time.Time
	URL   string
}

// Patch is a partial update. Nil fields are left untouched.
// ClearEndAt removes the due date and takes precedence over EndAt.
type Patch struct {
	Title      *string
	Note       *string
	URL        *string
	EndAt      *time.Time
	ClearEndAt bool
}

// Apply merges p into t and returns the result.
func (p Patch) Apply(t Todo) Todo {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	if p.URL != nil {
		t.URL = *p.URL
	}
	switch {
	case p.ClearEndAt:
		t.EndAt = nil
	case p.EndAt != nil:
		end := *p.EndAt
		t.EndAt = &end
	}
	return t
}

// Counts summarizes a todo collection.
type Counts struct {
	Total     int
	Active    int
	Completed int
}

// CountTodos tallies todos by completion state.
func CountTodos(todos []Todo) Counts {
	c := Counts{Total: len(todos)}
	for _, t := range todos {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}
