package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhle/todo/internal/export"
	"github.com/nhle/todo/internal/model"
)

var (
	urgentFormat string
	urgentCopy   bool
)

var urgentCmd = &cobra.Command{
	Use:   "urgent",
	Short: "Print the overdue and due-today todos",
	Args:  cobra.NoArgs,
	RunE:  runUrgent,
}

func init() {
	rootCmd.AddCommand(urgentCmd)
	urgentCmd.Flags().StringVar(&urgentFormat, "format", "", "detailed or compact (default: export.format from config)")
	urgentCmd.Flags().BoolVar(&urgentCopy, "copy", false, "copy to the clipboard instead of printing")
}

func runUrgent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := cfg.Export.Format
	if cmd.Flags().Changed("format") {
		format = urgentFormat
	}
	if format != model.ExportFormatDetailed && format != model.ExportFormatCompact {
		return fmt.Errorf("unknown format %q: want %s or %s", format, model.ExportFormatDetailed, model.ExportFormatCompact)
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	todos, err := s.LoadTodos(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading todos: %w", err)
	}

	text := export.Format(format, todos, time.Now())
	if !urgentCopy {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	if err := copyTo(export.SystemClipboard{}, text); err != nil {
		cliLogger(cfg).Error("copy to clipboard failed", "err", err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard.")
	return nil
}

func copyTo(cb export.Clipboard, text string) error {
	if err := cb.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
