package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/nacre/internal/enum"
	"github.com/zjrosen/nacre/internal/registry"
)

// Statuses returns a canonical workflow-status declaration with formats.
func Statuses() []any {
	return []any{
		map[string]any{"value": "draft", "short": "d"},
		map[string]any{"value": "published", "short": "p"},
		map[string]any{"value": "archived", "short": "a"},
	}
}

// Roles returns a plain role declaration.
func Roles() []any {
	return []any{"admin", "editor", "viewer"}
}

// Priorities returns a numeric-coded priority declaration.
func Priorities() []any {
	return []any{
		map[string]any{"value": "low", "code": 1},
		map[string]any{"value": "medium", "code": 2},
		map[string]any{"value": "high", "code": 3},
	}
}

// StatusEnum builds the statuses enum directly.
func StatusEnum(t *testing.T) *enum.Enum {
	t.Helper()
	e, err := enum.New("statuses", Statuses()...)
	require.NoError(t, err)
	return e
}

// SeedRegistry returns a registry pre-defined with the preset enums.
func SeedRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	t.Cleanup(reg.Close)

	for name, raws := range map[string][]any{
		"statuses":   Statuses(),
		"roles":      Roles(),
		"priorities": Priorities(),
	} {
		_, err := reg.Define(name, raws...)
		require.NoError(t, err)
	}
	return reg
}

// PresetSource writes a YAML source containing all preset enums and
// returns its path.
func PresetSource(t *testing.T) string {
	t.Helper()
	return NewSource(t).
		WithEnum("statuses", WithRaw(Statuses()[0]), WithRaw(Statuses()[1]), WithRaw(Statuses()[2])).
		WithEnum("roles", WithValues("admin", "editor", "viewer")).
		WithEnum("priorities", WithRaw(Priorities()[0]), WithRaw(Priorities()[1]), WithRaw(Priorities()[2])).
		WriteYAML()
}
