package listing

import (
	"sort"
	"strconv"
	"time"

	"github.com/nhle/todo/internal/model"
)

// NoDateLabel names the bucket holding todos without a due date.
const NoDateLabel = "No due date"

// YearGroup holds the months of one calendar year, or the single no-date
// bucket when NoDate is set.
type YearGroup struct {
	Year   int
	NoDate bool
	Months []MonthGroup
}

// Label returns the heading text of the group.
func (g YearGroup) Label() string {
	if g.NoDate {
		return NoDateLabel
	}
	return strconv.Itoa(g.Year)
}

// Len returns the number of todos in the group.
func (g YearGroup) Len() int {
	n := 0
	for _, m := range g.Months {
		n += len(m.Todos)
	}
	return n
}

// IDs returns the ids of every todo in the group, in display order.
func (g YearGroup) IDs() []string {
	var ids []string
	for _, m := range g.Months {
		ids = append(ids, m.IDs()...)
	}
	return ids
}

// MonthGroup holds the todos due in one month.
type MonthGroup struct {
	Month  time.Month
	NoDate bool
	Todos  []model.Todo
}

// Label returns the heading text of the month.
func (g MonthGroup) Label() string {
	if g.NoDate {
		return NoDateLabel
	}
	return g.Month.String()
}

// IDs returns the ids of the month's todos, in display order.
func (g MonthGroup) IDs() []string {
	ids := make([]string, len(g.Todos))
	for i, t := range g.Todos {
		ids[i] = t.ID
	}
	return ids
}

type yearMonth struct {
	year  int
	month time.Month
}

// Group filters todos by p.Filter and partitions them by due year and
// month in local time. The direction comes from DirectionFor and applies
// to years, months and todos inside a month alike. The no-date bucket
// comes last when ascending and first when descending. An empty input
// yields an empty result.
func Group(todos []model.Todo, p model.Preferences) []YearGroup {
	filtered := FilterTodos(todos, p.Filter)
	if len(filtered) == 0 {
		return nil
	}
	dir := DirectionFor(p.Filter, p.Sort)

	buckets := make(map[yearMonth][]model.Todo)
	var noDate []model.Todo
	for _, t := range filtered {
		if !t.HasDueDate() {
			noDate = append(noDate, t)
			continue
		}
		local := t.EndAt.Local()
		k := yearMonth{year: local.Year(), month: local.Month()}
		buckets[k] = append(buckets[k], t)
	}

	keys := make([]yearMonth, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.year != b.year {
			if dir == Descending {
				return a.year > b.year
			}
			return a.year < b.year
		}
		if dir == Descending {
			return a.month > b.month
		}
		return a.month < b.month
	})

	var groups []YearGroup
	for _, k := range keys {
		month := buckets[k]
		sortByDueDate(month, dir)
		mg := MonthGroup{Month: k.month, Todos: month}

		if n := len(groups); n > 0 && !groups[n-1].NoDate && groups[n-1].Year == k.year {
			groups[n-1].Months = append(groups[n-1].Months, mg)
			continue
		}
		groups = append(groups, YearGroup{Year: k.year, Months: []MonthGroup{mg}})
	}

	if len(noDate) > 0 {
		bucket := YearGroup{NoDate: true, Months: []MonthGroup{{NoDate: true, Todos: noDate}}}
		if dir == Descending {
			groups = append([]YearGroup{bucket}, groups...)
		} else {
			groups = append(groups, bucket)
		}
	}

	return groups
}

// Flatten concatenates the todos of groups in display order.
func Flatten(groups []YearGroup) []model.Todo {
	var out []model.Todo
	for _, g := range groups {
		for _, m := range g.Months {
			out = append(out, m.Todos...)
		}
	}
	return out
}
