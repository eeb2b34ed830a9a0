package todolist

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo/internal/duedate"
	"github.com/nhle/todo/internal/listing"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/theme"
)

// RowKind distinguishes headings from todos.
type RowKind int

const (
	RowTodo RowKind = iota
	RowYear
	RowMonth
)

// Row is one line of the list: a year heading, a month heading or a todo.
// Headings carry the ids of every todo beneath them.
type Row struct {
	Kind  RowKind
	Label string
	IDs   []string
	Todo  model.Todo
}

// FilterValue returns the string used for fuzzy filtering.
func (r Row) FilterValue() string {
	if r.Kind == RowTodo {
		return r.Todo.Title
	}
	return r.Label
}

// key identifies the row across rebuilds so the cursor can follow it.
func (r Row) key() string {
	if r.Kind == RowTodo {
		return "todo:" + r.Todo.ID
	}
	return fmt.Sprintf("%d:%s", r.Kind, strings.Join(r.IDs, ","))
}

// TodoRows wraps a flat todo sequence.
func TodoRows(todos []model.Todo) []Row {
	rows := make([]Row, len(todos))
	for i, t := range todos {
		rows[i] = Row{Kind: RowTodo, Todo: t}
	}
	return rows
}

// GroupRows turns grouped todos into headings followed by their todos.
// The no-date bucket gets a single heading.
func GroupRows(groups []listing.YearGroup) []Row {
	var rows []Row
	for _, g := range groups {
		rows = append(rows, Row{Kind: RowYear, Label: g.Label(), IDs: g.IDs()})
		for _, m := range g.Months {
			if !m.NoDate {
				rows = append(rows, Row{Kind: RowMonth, Label: m.Label(), IDs: m.IDs()})
			}
			rows = append(rows, TodoRows(m.Todos)...)
		}
	}
	return rows
}

// Selector answers selection queries for rendering.
type Selector interface {
	IsSelected(id string) bool
	AllSelected(ids []string) bool
	SomeSelected(ids []string) bool
}

// ItemDelegate implements list.ItemDelegate for rendering rows.
type ItemDelegate struct {
	selection  Selector
	now        func() time.Time
	dateFormat string
}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single row.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(Row)
	if !ok {
		return
	}

	var line string
	if row.Kind == RowTodo {
		line = d.renderTodo(row.Todo)
	} else {
		line = d.renderHeading(row)
	}

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

func (d ItemDelegate) checkbox(ids ...string) string {
	switch {
	case d.selection == nil:
		return "[ ]"
	case d.selection.AllSelected(ids):
		return theme.CheckedStyle.Render("[x]")
	case d.selection.SomeSelected(ids):
		return theme.CheckedStyle.Render("[-]")
	default:
		return "[ ]"
	}
}

func (d ItemDelegate) renderHeading(row Row) string {
	indent := ""
	if row.Kind == RowMonth {
		indent = "  "
	}
	label := theme.GroupHeaderStyle.Render(row.Label)
	return fmt.Sprintf("%s%s %s (%d)", indent, d.checkbox(row.IDs...), label, len(row.IDs))
}

func (d ItemDelegate) renderTodo(t model.Todo) string {
	now := time.Now()
	if d.now != nil {
		now = d.now()
	}
	variant := duedate.Classify(t, now)

	mark := "○"
	if t.Completed {
		mark = "✓"
	}

	title := theme.TitleStyle(variant).Render(t.Title)

	due := ""
	if t.HasDueDate() {
		layout := d.dateFormat
		if layout == "" {
			layout = model.DateLayout
		}
		text := "due " + t.EndAt.Local().Format(layout)
		switch variant {
		case duedate.VariantOverdue:
			text += " (overdue)"
		case duedate.VariantDueToday:
			text += " (today)"
		}
		due = "  " + theme.DateStyle(variant).Render(text)
	}

	var badges []string
	if strings.TrimSpace(t.Note) != "" {
		badges = append(badges, "¶")
	}
	if t.URL != "" {
		badges = append(badges, "↗")
	}
	extra := ""
	if len(badges) > 0 {
		extra = " " + theme.DueDateStyle.Render(strings.Join(badges, " "))
	}

	return fmt.Sprintf("    %s %s %s%s%s", d.checkbox(t.ID), mark, title, extra, due)
}
