// Package config provides configuration types and defaults for nacre.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/nacre/internal/log"
)

// Config holds all configuration options for nacre.
type Config struct {
	Sources    []string        `mapstructure:"sources"`
	AutoReload bool            `mapstructure:"auto_reload"`
	DebounceMs int             `mapstructure:"debounce_ms"`
	I18n       I18nConfig      `mapstructure:"i18n"`
	Store      StoreConfig     `mapstructure:"store"`
	Tracing    TracingConfig   `mapstructure:"tracing"`
	UI         UIConfig        `mapstructure:"ui"`
	Flags      map[string]bool `mapstructure:"flags"`
}

// I18nConfig holds translation settings.
type I18nConfig struct {
	// Locale selects the translation locale. Default: "en".
	Locale string `mapstructure:"locale"`

	// Dir is the directory of <locale>.yml translation files. Empty
	// disables the file backend; labels fall back to humanized names.
	Dir string `mapstructure:"dir"`

	// CacheTTLMinutes bounds how long resolved labels stay cached.
	// Default: 10.
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes"`
}

// StoreConfig holds the optional SQLite-backed definition store settings.
type StoreConfig struct {
	// Path is the SQLite database file. Empty disables the store.
	Path string `mapstructure:"path"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowCounts  bool   `mapstructure:"show_counts"`  // Show value counts in the browse list
	ShowFormats bool   `mapstructure:"show_formats"` // Show the formats column in tables
	DocsStyle   string `mapstructure:"docs_style"`   // Markdown rendering style: "dark" (default) or "light"
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active. Default: false.
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	// Default: ~/.config/nacre/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0). Default: 1.0.
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/nacre/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nacre", "traces", "traces.jsonl")
}

// Debounce returns the watcher debounce interval.
func (c Config) Debounce() time.Duration {
	if c.DebounceMs <= 0 {
		return time.Second
	}
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// CacheTTL returns the i18n label cache TTL.
func (i I18nConfig) CacheTTL() time.Duration {
	if i.CacheTTLMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(i.CacheTTLMinutes) * time.Minute
}

// ValidateSources checks source paths for errors. An empty list is valid;
// the registry simply holds nothing until Define is called.
func ValidateSources(sources []string) error {
	for i, src := range sources {
		if src == "" {
			return fmt.Errorf("sources[%d]: path is empty", i)
		}
	}
	return nil
}

// ValidateI18n checks translation configuration for errors.
func ValidateI18n(i18n I18nConfig) error {
	if i18n.CacheTTLMinutes < 0 {
		return fmt.Errorf("i18n.cache_ttl_minutes must not be negative, got %d", i18n.CacheTTLMinutes)
	}
	return nil
}

// ValidateUI checks user interface configuration for errors.
func ValidateUI(ui UIConfig) error {
	switch ui.DocsStyle {
	case "", "dark", "light":
		return nil
	default:
		return fmt.Errorf("ui.docs_style must be \"dark\" or \"light\", got %q", ui.DocsStyle)
	}
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Validate runs every section validator.
func (c Config) Validate() error {
	if err := ValidateSources(c.Sources); err != nil {
		return err
	}
	if err := ValidateI18n(c.I18n); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Sources:    nil,
		AutoReload: true,
		DebounceMs: 1000,
		I18n: I18nConfig{
			Locale:          "en",
			CacheTTLMinutes: 10,
		},
		UI: UIConfig{
			ShowCounts:  true,
			ShowFormats: true,
			DocsStyle:   "dark",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Nacre Configuration

# Enum definition sources, loaded in order.
# Supported: .yml / .yaml / .toml structured documents, and .db / .sqlite
# databases written by 'nacre sources' tooling. Unrecognized files are
# skipped.
sources:
  - enums.yml

# Reload the registry automatically when a source changes ('nacre watch')
auto_reload: true

# Debounce between a source change and the reload, in milliseconds
# debounce_ms: 1000

# Translation settings
i18n:
  locale: en
  # Directory of <locale>.yml files, Rails layout:
  #   en:
  #     enums:
  #       statuses:
  #         in_review: In review
  # dir: locales
  # cache_ttl_minutes: 10

# Optional SQLite-backed definition store
# store:
#   path: ~/.config/nacre/enums.db

# UI settings
ui:
  show_counts: true    # Show value counts in the browse list
  show_formats: true   # Show the formats column in tables
  # docs_style: dark   # Markdown rendering style: "dark" (default) or "light"

# Feature flags
# flags:
#   strict-labels: true

# Distributed tracing configuration
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/nacre/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
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
