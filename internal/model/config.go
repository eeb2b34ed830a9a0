package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Export formats accepted by ExportConfig.Format.
const (
	ExportFormatDetailed = "detailed"
	ExportFormatCompact  = "compact"
)

// StorageConfig controls where todos and preferences are persisted.
type StorageConfig struct {
	// Path is the SQLite database file.
	Path string `mapstructure:"path" yaml:"path"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// GroupedDefault is the grouping mode used before any preference is saved.
	GroupedDefault bool   `mapstructure:"grouped_default" yaml:"grouped_default"`
	DateFormat     string `mapstructure:"date_format" yaml:"date_format"`
}

// BehaviorConfig holds policy switches.
type BehaviorConfig struct {
	// ConfirmDelete asks before deleting a todo that is not completed.
	ConfirmDelete bool `mapstructure:"confirm_delete" yaml:"confirm_delete"`

	// ClearSelectionOnFilterChange empties the selection whenever the
	// filter changes, so hidden todos are never acted on.
	ClearSelectionOnFilterChange bool `mapstructure:"clear_selection_on_filter_change" yaml:"clear_selection_on_filter_change"`

	// RejectPastDueDates refuses new todos whose due date is before today.
	RejectPastDueDates bool `mapstructure:"reject_past_due_dates" yaml:"reject_past_due_dates"`
}

// ExportConfig controls clipboard export.
type ExportConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Path   string `mapstructure:"path" yaml:"path"`
	Format string `mapstructure:"format" yaml:"format"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
	Behavior BehaviorConfig `mapstructure:"behavior" yaml:"behavior"`
	Export   ExportConfig   `mapstructure:"export" yaml:"export"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// configDir returns ~/.config/todo, or the working directory when the
// home directory cannot be determined.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "todo")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/todo/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	dir := configDir()
	return &AppConfig{
		Storage: StorageConfig{
			Path: filepath.Join(dir, "todo.db"),
		},
		Display: DisplayConfig{
			GroupedDefault: true,
			DateFormat:     DateLayout,
		},
		Behavior: BehaviorConfig{
			ConfirmDelete:                true,
			ClearSelectionOnFilterChange: true,
		},
		Export: ExportConfig{
			Format: ExportFormatDetailed,
		},
		Log: LogConfig{
			Level:  "info",
			Path:   filepath.Join(dir, "todo.log"),
			Format: "text",
		},
	}
}

func setDefaults(v *viper.Viper, cfg *AppConfig) {
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("display.grouped_default", cfg.Display.GroupedDefault)
	v.SetDefault("display.date_format", cfg.Display.DateFormat)
	v.SetDefault("behavior.confirm_delete", cfg.Behavior.ConfirmDelete)
	v.SetDefault("behavior.clear_selection_on_filter_change", cfg.Behavior.ClearSelectionOnFilterChange)
	v.SetDefault("behavior.reject_past_due_dates", cfg.Behavior.RejectPastDueDates)
	v.SetDefault("export.format", cfg.Export.Format)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.path", cfg.Log.Path)
	v.SetDefault("log.format", cfg.Log.Format)
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Environment variables prefixed with TODO_ override file values
// (TODO_STORAGE_PATH, TODO_LOG_LEVEL, ...). If the file does not exist,
// defaults and environment overrides are used.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("todo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultAppConfig())

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	switch cfg.Export.Format {
	case ExportFormatDetailed, ExportFormatCompact:
	default:
		return nil, fmt.Errorf("parsing config %s: unknown export format %q", path, cfg.Export.Format)
	}
	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Log.Path = expandHome(cfg.Log.Path)

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("display", cfg.Display)
	v.Set("behavior", cfg.Behavior)
	v.Set("export", cfg.Export)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
