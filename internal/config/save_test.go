package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readSources(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed struct {
		Sources []string `yaml:"sources"`
	}
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	return parsed.Sources
}

func TestSaveSources_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveSources(path, []string{"enums.yml", "extra.toml"}))
	require.Equal(t, []string{"enums.yml", "extra.toml"}, readSources(t, path))
}

func TestSaveSources_PreservesOtherSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	initial := "# my config\nauto_reload: false\nsources:\n  - old.yml\n"
	require.NoError(t, os.WriteFile(path, []byte(initial), 0644))

	require.NoError(t, SaveSources(path, []string{"new.yml"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# my config")
	require.Contains(t, string(data), "auto_reload: false")
	require.Equal(t, []string{"new.yml"}, readSources(t, path))
}

func TestSaveSources_AppendsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auto_reload: true\n"), 0644))

	require.NoError(t, SaveSources(path, []string{"enums.yml"}))
	require.Equal(t, []string{"enums.yml"}, readSources(t, path))
}

func TestAddSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, AddSource(path, "a.yml", nil))
	require.NoError(t, AddSource(path, "b.yml", []string{"a.yml"}))
	require.Equal(t, []string{"a.yml", "b.yml"}, readSources(t, path))
}

func TestAddSource_DuplicateIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveSources(path, []string{"a.yml"}))
	require.NoError(t, AddSource(path, "a.yml", []string{"a.yml"}))
	require.Equal(t, []string{"a.yml"}, readSources(t, path))
}

func TestRemoveSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveSources(path, []string{"a.yml", "b.yml"}))

	require.NoError(t, RemoveSource(path, "a.yml", []string{"a.yml", "b.yml"}))
	require.Equal(t, []string{"b.yml"}, readSources(t, path))
}

func TestRemoveSource_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := RemoveSource(path, "ghost.yml", []string{"a.yml"})
	require.Error(t, err)
}
