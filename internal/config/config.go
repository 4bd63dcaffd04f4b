// Package config provides configuration types and defaults for clipedit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/clipedit/internal/history"
	"github.com/zjrosen/clipedit/internal/log"
	"github.com/zjrosen/clipedit/internal/store"
	"github.com/zjrosen/clipedit/internal/tracing"
)

// Config holds all configuration options for clipedit.
type Config struct {
	History HistoryConfig   `mapstructure:"history"`
	Storage StorageConfig   `mapstructure:"storage"`
	UI      UIConfig        `mapstructure:"ui"`
	Search  SearchConfig    `mapstructure:"search"`
	Tracing tracing.Config  `mapstructure:"tracing"`
	Flags   map[string]bool `mapstructure:"flags"`
}

// HistoryConfig bounds the undo history.
type HistoryConfig struct {
	MaxEntries int `mapstructure:"max_entries"`
}

// StorageConfig controls where editor content is persisted.
type StorageConfig struct {
	Path          string        `mapstructure:"path"` // empty = ~/.config/clipedit/clipedit.db
	Key           string        `mapstructure:"key"`
	Watch         bool          `mapstructure:"watch"` // reload content written by other instances
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	NotificationDuration time.Duration `mapstructure:"notification_duration"`
	ShowStatusBar        bool          `mapstructure:"show_status_bar"`
	MarkdownStyle        string        `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// SearchConfig holds the initial state of the search panel toggles.
type SearchConfig struct {
	CaseSensitive bool `mapstructure:"case_sensitive"`
	UseRegex      bool `mapstructure:"use_regex"`
}

// StoragePath returns the configured database path or the default one.
func (c Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return store.DefaultPath()
}

// DefaultTracesFilePath returns ~/.config/clipedit/traces/traces.jsonl.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "clipedit", "traces", "traces.jsonl")
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		History: HistoryConfig{
			MaxEntries: history.DefaultMaxEntries,
		},
		Storage: StorageConfig{
			Key:           store.DefaultKey,
			Watch:         true,
			WatchDebounce: 500 * time.Millisecond,
		},
		UI: UIConfig{
			NotificationDuration: 3 * time.Second,
			ShowStatusBar:        true,
			MarkdownStyle:        "dark",
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// Validate checks values that would otherwise fail later at startup.
func Validate(c Config) error {
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("history.max_entries must not be negative, got %d", c.History.MaxEntries)
	}
	if c.Storage.WatchDebounce < 0 {
		return fmt.Errorf("storage.watch_debounce must not be negative, got %s", c.Storage.WatchDebounce)
	}
	if c.UI.NotificationDuration < 0 {
		return fmt.Errorf("ui.notification_duration must not be negative, got %s", c.UI.NotificationDuration)
	}
	switch c.UI.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", c.UI.MarkdownStyle)
	}
	return ValidateTracing(c.Tracing)
}

// ValidateTracing validates the tracing section.
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	switch t.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
	}

	if t.Enabled && t.Exporter == "otlp" && t.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}

// DefaultConfigTemplate returns the commented config written on first run.
func DefaultConfigTemplate() string {
	return `# clipedit configuration

# Undo history
history:
  max_entries: 10        # Snapshots kept besides the current one

# Where editor content is saved between runs
storage:
  # path: ~/.config/clipedit/clipedit.db
  key: editor_content
  watch: true            # Reload content saved by another clipedit
  watch_debounce: 500ms

# UI settings
ui:
  notification_duration: 3s
  show_status_bar: true
  # markdown_style: dark # Help rendering style: "dark" (default) or "light"

# Initial search panel toggles (updated when you flip them)
search:
  case_sensitive: false
  use_regex: false

# Tracing of editor operations
# tracing:
#   enabled: false
#   exporter: file                 # none, file, stdout, otlp
#   file_path: ~/.config/clipedit/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0

# Feature flags
# flags:
#   mouse-toolbar: true
#   markdown-help: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
