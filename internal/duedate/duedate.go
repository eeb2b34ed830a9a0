// Package duedate classifies todos relative to the current calendar day.
//
// All functions take the current time explicitly. Results change at local
// midnight, so callers recompute them on every render instead of caching.
package duedate

import (
	"time"

	"github.com/nhle/todo/internal/model"
)

// Variant is the display class of a todo.
type Variant int

const (
	VariantDefault Variant = iota
	VariantCompleted
	VariantOverdue
	VariantDueToday
)

// String returns a short name for v.
func (v Variant) String() string {
	switch v {
	case VariantCompleted:
		return "completed"
	case VariantOverdue:
		return "overdue"
	case VariantDueToday:
		return "due-today"
	default:
		return "default"
	}
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsOverdue reports whether an incomplete todo was due before today.
func IsOverdue(endAt *time.Time, completed bool, now time.Time) bool {
	if completed || endAt == nil {
		return false
	}
	return endAt.Before(StartOfDay(now))
}

// IsDueToday reports whether an incomplete todo is due within today.
func IsDueToday(endAt *time.Time, completed bool, now time.Time) bool {
	if completed || endAt == nil {
		return false
	}
	today := StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	return !endAt.Before(today) && endAt.Before(tomorrow)
}

// IsUrgent reports whether t is overdue or due today.
func IsUrgent(t model.Todo, now time.Time) bool {
	return IsOverdue(t.EndAt, t.Completed, now) || IsDueToday(t.EndAt, t.Completed, now)
}

// Classify returns the display variant of t at now.
func Classify(t model.Todo, now time.Time) Variant {
	switch {
	case t.Completed:
		return VariantCompleted
	case IsOverdue(t.EndAt, t.Completed, now):
		return VariantOverdue
	case IsDueToday(t.EndAt, t.Completed, now):
		return VariantDueToday
	default:
		return VariantDefault
	}
}
