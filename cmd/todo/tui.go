package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/todo/internal/app"
	"github.com/nhle/todo/internal/logging"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout belongs to the UI, so the log goes to a file.
	logger, closer, err := logging.Open(cfg.Log.Path, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer closer.Close()

	s, err := openStore(cfg)
	if err != nil {
		logger.Error("opening store failed", "err", err)
		return err
	}
	defer s.Close()

	m, err := app.Load(cmd.Context(), app.Options{
		Store:  s,
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Error("loading state failed", "err", err)
		return err
	}

	logger.Info("starting", "store", cfg.Storage.Path, "memory", useMemory)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running tui: %w", err)
	}

	if fm, ok := final.(app.Model); ok {
		if err := fm.Flush(); err != nil {
			logger.Error("final save failed", "err", err)
			return err
		}
	}
	logger.Info("stopped")
	return nil
}
