// Package main implements the todo CLI and terminal UI.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nhle/todo/internal/logging"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/store"
)

var (
	configPath string
	useMemory  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "todo",
	Short:        "A todo list for the terminal",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", model.DefaultConfigPath(), "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&useMemory, "memory", false, "keep todos in memory; nothing is saved")
}

// loadConfig reads the config file named by --config.
func loadConfig() (*model.AppConfig, error) {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openStore opens the configured store, or a memory store with --memory.
func openStore(cfg *model.AppConfig) (store.Store, error) {
	defaults := model.DefaultPreferences()
	defaults.Grouped = cfg.Display.GroupedDefault
	opt := store.WithDefaultPreferences(defaults)

	if useMemory {
		return store.NewMemoryStore(opt), nil
	}
	s, err := store.NewSQLiteStore(cfg.Storage.Path, opt)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", cfg.Storage.Path, err)
	}
	return s, nil
}

// cliLogger logs to stderr for the non-interactive commands.
func cliLogger(cfg *model.AppConfig) *log.Logger {
	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.Log.Level)
	opts.Formatter = logging.ParseFormatter(cfg.Log.Format)
	opts.ReportTimestamp = false
	return logging.New(os.Stderr, opts)
}
