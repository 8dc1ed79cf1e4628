package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/nacre/internal/registry"
)

func TestSourceBuilder_WriteYAML(t *testing.T) {
	path := NewSource(t).
		WithEnum("statuses", WithValues("draft", "published")).
		WithEnum("roles", WithValue("admin", map[string]any{"short": "a"})).
		WriteYAML()

	reg := registry.New(registry.WithSources(path))
	defer reg.Close()
	require.NoError(t, reg.Populate(context.Background()))

	statuses, err := reg.Lookup(context.Background(), "statuses")
	require.NoError(t, err)
	require.Equal(t, []string{"draft", "published"}, statuses.Names())

	roles, err := reg.Lookup(context.Background(), "roles")
	require.NoError(t, err)
	admin, ok := roles.Lookup("admin")
	require.True(t, ok)
	require.Equal(t, "a", admin.Format("short"))
}

func TestSourceBuilder_EmptyEnum(t *testing.T) {
	path := NewSource(t).WithEnum("empty").WriteYAML()

	reg := registry.New(registry.WithSources(path))
	defer reg.Close()
	require.NoError(t, reg.Populate(context.Background()))

	e, err := reg.Lookup(context.Background(), "empty")
	require.NoError(t, err)
	require.Equal(t, 0, e.Len())
}

func TestSourceBuilder_WriteYAMLTo(t *testing.T) {
	path := t.TempDir() + "/nested/dir/defs.yml"
	got := NewSource(t).WithEnum("sizes", WithValues("s", "m", "l")).WriteYAMLTo(path)
	require.Equal(t, path, got)

	reg := registry.New(registry.WithSources(path))
	defer reg.Close()
	require.NoError(t, reg.Populate(context.Background()))
	require.Equal(t, 1, reg.Len())
}
