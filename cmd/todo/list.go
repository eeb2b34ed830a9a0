package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhle/todo/internal/duedate"
	"github.com/nhle/todo/internal/listing"
	"github.com/nhle/todo/internal/model"
)

var (
	listFilter  string
	listSort    string
	listGrouped bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print todos using the saved filter, sort and grouping",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listFilter, "filter", "", "all, active or completed (default: saved filter)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "none, date-asc or date-desc (default: saved sort)")
	listCmd.Flags().BoolVar(&listGrouped, "grouped", false, "group by year and month (default: saved grouping)")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	todos, err := s.LoadTodos(ctx)
	if err != nil {
		return fmt.Errorf("loading todos: %w", err)
	}
	prefs, err := s.LoadPreferences(ctx)
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}

	if cmd.Flags().Changed("filter") {
		if prefs.Filter, err = model.ParseFilter(listFilter); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("sort") {
		if prefs.Sort, err = model.ParseSortOrder(listSort); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("grouped") {
		prefs.Grouped = listGrouped
	}

	writeList(cmd.OutOrStdout(), todos, prefs, time.Now(), cfg.Display.DateFormat)
	return nil
}

// writeList prints the todos the way the list view arranges them.
func writeList(w io.Writer, todos []model.Todo, prefs model.Preferences, now time.Time, dateFormat string) {
	if prefs.Grouped {
		groups := listing.Group(todos, prefs)
		if len(groups) == 0 {
			fmt.Fprintln(w, "No tasks.")
			return
		}
		for _, g := range groups {
			fmt.Fprintf(w, "%s (%d)\n", g.Label(), g.Len())
			for _, mg := range g.Months {
				indent := "  "
				if !mg.NoDate {
					fmt.Fprintf(w, "  %s (%d)\n", mg.Label(), len(mg.Todos))
					indent = "    "
				}
				for _, t := range mg.Todos {
					fmt.Fprintln(w, indent+formatLine(t, now, dateFormat))
				}
			}
		}
		return
	}

	visible := listing.Apply(todos, prefs)
	if len(visible) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	for _, t := range visible {
		fmt.Fprintln(w, formatLine(t, now, dateFormat))
	}
}

func formatLine(t model.Todo, now time.Time, dateFormat string) string {
	if dateFormat == "" {
		dateFormat = model.DateLayout
	}
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s", mark, t.Title)
	if t.HasDueDate() {
		line += "  due " + t.EndAt.Local().Format(dateFormat)
		switch duedate.Classify(t, now) {
		case duedate.VariantOverdue:
			line += " (overdue)"
		case duedate.VariantDueToday:
			line += " (today)"
		}
	}
	if t.URL != "" {
		line += "  " + t.URL
	}
	return line
}
