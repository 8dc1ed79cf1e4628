package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/nacre/internal/config"
	"github.com/zjrosen/nacre/internal/flags"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enums.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func withConfig(t *testing.T, c config.Config) {
	t.Helper()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func TestBuildRegistry_LoadsConfiguredSources(t *testing.T) {
	path := writeSource(t, "statuses:\n  - draft\n  - published\n")
	withConfig(t, config.Config{Sources: []string{path}, Tracing: config.TracingConfig{SampleRate: 1.0}})

	reg, cleanup, err := buildRegistry()
	require.NoError(t, err)
	defer cleanup()

	e, err := reg.Lookup(context.Background(), "statuses")
	require.NoError(t, err)
	require.Equal(t, []string{"draft", "published"}, e.Names())
}

func TestBuildRegistry_InvalidConfig(t *testing.T) {
	withConfig(t, config.Config{Sources: []string{""}})

	_, _, err := buildRegistry()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

func TestBuildRegistry_SQLiteLoaderBehindFlag(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "enums.db")
	withConfig(t, config.Config{
		Sources: []string{dbPath},
		Flags:   map[string]bool{flags.FlagSQLiteSources: false},
		Tracing: config.TracingConfig{SampleRate: 1.0},
	})

	reg, cleanup, err := buildRegistry()
	require.NoError(t, err)
	defer cleanup()

	// Database sources are skipped by the default loader when the flag is
	// off, so population succeeds with nothing defined.
	require.NoError(t, reg.Populate(context.Background()))
	require.Equal(t, 0, reg.Len())
}

func TestBuildLocalizer_LocaleOverride(t *testing.T) {
	withConfig(t, config.Config{I18n: config.I18nConfig{Locale: "en"}})

	require.Equal(t, "en", buildLocalizer("").Locale())
	require.Equal(t, "de", buildLocalizer("de").Locale())
}

func TestFeatureFlags_FromConfig(t *testing.T) {
	withConfig(t, config.Config{Flags: map[string]bool{flags.FlagStrictLabels: true}})

	require.True(t, featureFlags().Enabled(flags.FlagStrictLabels))
	require.False(t, featureFlags().Enabled(flags.FlagSQLiteSources))
}

func TestConfigFilePath_Default(t *testing.T) {
	require.NotEmpty(t, configFilePath())
}
