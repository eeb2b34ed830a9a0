// Package export turns todos into plain text for the clipboard.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/nhle/todo/internal/duedate"
	"github.com/nhle/todo/internal/model"
)

// EmptyUrgentText is produced when there is nothing urgent to export.
const EmptyUrgentText = "No urgent tasks."

const (
	overdueLabel  = "[OVERDUE] "
	dueTodayLabel = "[TODAY] "
)

// Urgent returns the incomplete todos that are overdue or due today, in
// collection order.
func Urgent(todos []model.Todo, now time.Time) []model.Todo {
	var out []model.Todo
	for _, t := range todos {
		if duedate.IsUrgent(t, now) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Format renders the urgent todos of the collection with the named format
// (model.ExportFormatDetailed or model.ExportFormatCompact). Unknown
// names fall back to the detailed format.
func Format(format string, todos []model.Todo, now time.Time) string {
	urgent := Urgent(todos, now)
	if format == model.ExportFormatCompact {
		return FormatCompact(urgent, now)
	}
	return FormatDetailed(urgent, now)
}

// FormatDetailed writes one block per todo:
//
//	[OVERDUE] Title (due: 2025-03-14)
//	  Note: ...
//	  URL: ...
//
// Blocks are separated by a blank line.
func FormatDetailed(todos []model.Todo, now time.Time) string {
	if len(todos) == 0 {
		return EmptyUrgentText
	}

	blocks := make([]string, 0, len(todos))
	for _, t := range todos {
		var b strings.Builder
		switch {
		case duedate.IsOverdue(t.EndAt, t.Completed, now):
			b.WriteString(overdueLabel)
		case duedate.IsDueToday(t.EndAt, t.Completed, now):
			b.WriteString(dueTodayLabel)
		}
		b.WriteString(t.Title)
		if t.HasDueDate() {
			fmt.Fprintf(&b, " (due: %s)", t.EndAt.Local().Format(model.DateLayout))
		}
		if note := strings.TrimSpace(t.Note); note != "" {
			fmt.Fprintf(&b, "\n  Note: %s", note)
		}
		if t.URL != "" {
			fmt.Fprintf(&b, "\n  URL: %s", t.URL)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// FormatCompact writes a numbered list of titles, overdue todos before
// those due today.
func FormatCompact(todos []model.Todo, now time.Time) string {
	if len(todos) == 0 {
		return EmptyUrgentText
	}

	var overdue, today, rest []model.Todo
	for _, t := range todos {
		switch {
		case duedate.IsOverdue(t.EndAt, t.Completed, now):
			overdue = append(overdue, t)
		case duedate.IsDueToday(t.EndAt, t.Completed, now):
			today = append(today, t)
		default:
			rest = append(rest, t)
		}
	}

	ordered := append(append(overdue, today...), rest...)
	lines := make([]string, len(ordered))
	for i, t := range ordered {
		lines[i] = fmt.Sprintf("%d. %s", i+1, t.Title)
	}
	return strings.Join(lines, "\n")
}

// Markdown renders todos as a Markdown bullet list of titles.
func Markdown(todos []model.Todo) string {
	lines := make([]string, len(todos))
	for i, t := range todos {
		lines[i] = "- " + t.Title
	}
	return strings.Join(lines, "\n")
}

// Selected returns the todos whose id is in ids, in collection order.
func Selected(todos []model.Todo, ids []string) []model.Todo {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Todo
	for _, t := range todos {
		if want[t.ID] {
			out = append(out, t.Clone())
		}
	}
	return out
}
