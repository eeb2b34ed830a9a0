package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/state"
	"github.com/nhle/todo/internal/store"
)

var (
	addNote string
	addDue  string
	addURL  string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addNote, "note", "", "note text")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addURL, "url", "", "link to open from the todo")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	now := time.Now()
	endAt, err := model.ParseDueDate(addDue, now.Location())
	if err != nil {
		return err
	}
	draft := model.Draft{Title: args[0], Note: addNote, EndAt: endAt, URL: addURL}

	t, err := addTodo(cmd.Context(), s, draft, now, cfg.Behavior.RejectPastDueDates)
	if err != nil {
		return err
	}
	cliLogger(cfg).Debug("todo created", "id", t.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", t.Title, t.ID)
	return nil
}

// addTodo validates d, appends it to the stored collection and saves.
func addTodo(ctx context.Context, s store.Store, d model.Draft, now time.Time, rejectPast bool) (model.Todo, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Note = strings.TrimSpace(d.Note)
	d.URL = strings.TrimSpace(d.URL)
	if err := model.ValidateDraft(d, now, rejectPast); err != nil {
		return model.Todo{}, err
	}

	todos, err := s.LoadTodos(ctx)
	if err != nil {
		return model.Todo{}, fmt.Errorf("loading todos: %w", err)
	}
	list := state.NewTaskList(todos)
	t := list.Add(d)
	if err := s.SaveTodos(ctx, list.All()); err != nil {
		return model.Todo{}, fmt.Errorf("saving todos: %w", err)
	}
	return t, nil
}
