package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/nacre/internal/config"
	"github.com/zjrosen/nacre/internal/log"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "nacre",
	Short:   "Named enumerations from plain definition files",
	Long: `Nacre loads named enumerations (statuses, roles, kinds...) from YAML,
TOML, or SQLite sources and lets you inspect, validate, diff, and browse
them from the terminal.

Running nacre without a subcommand opens the interactive browser.`,
	Version: version,
	RunE:    runBrowse,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/nacre/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"enable debug logging to debug.log (or $NACRE_LOG)")
	rootCmd.PersistentFlags().StringArrayP("source", "s", nil,
		"enum source file (repeatable, overrides configured sources)")

	_ = viper.BindPFlag("sources", rootCmd.PersistentFlags().Lookup("source"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("debounce_ms", defaults.DebounceMs)
	viper.SetDefault("i18n.locale", defaults.I18n.Locale)
	viper.SetDefault("i18n.cache_ttl_minutes", defaults.I18n.CacheTTLMinutes)
	viper.SetDefault("ui.show_counts", defaults.UI.ShowCounts)
	viper.SetDefault("ui.show_formats", defaults.UI.ShowFormats)
	viper.SetDefault("ui.docs_style", defaults.UI.DocsStyle)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	viper.SetEnvPrefix("NACRE")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .nacre/config.yaml (current directory)
		// 2. ~/.config/nacre/config.yaml (user config)
		if _, err := os.Stat(".nacre/config.yaml"); err == nil {
			viper.SetConfigFile(".nacre/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "nacre"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// Missing config is fine; the CLI runs on defaults plus --source.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)

	initDebugLog()
}

func initDebugLog() {
	if os.Getenv("NACRE_DEBUG") == "" && !debugFlag {
		return
	}
	logPath := os.Getenv("NACRE_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	if _, err := log.Init(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize debug log: %v\n", err)
		return
	}
	log.SetEnabled(true)
	log.Info(log.CatCLI, "Nacre starting", "version", version, "logPath", logPath)
}

// configFilePath returns the path of the loaded config file, or the default
// location when none was loaded.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return ".nacre/config.yaml"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
