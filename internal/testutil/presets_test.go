package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedRegistry(t *testing.T) {
	reg := SeedRegistry(t)

	require.Equal(t, 3, reg.Len())
	require.ElementsMatch(t, []string{"statuses", "roles", "priorities"}, reg.Names())

	statuses, err := reg.Lookup(context.Background(), "statuses")
	require.NoError(t, err)
	draft, ok := statuses.Lookup("draft")
	require.True(t, ok)
	require.Equal(t, "d", draft.Format("short"))
}

func TestPresetSource(t *testing.T) {
	path := PresetSource(t)
	require.FileExists(t, path)
}

func TestNewTestStore_RoundTrip(t *testing.T) {
	store := NewTestStore(t)
	e := StatusEnum(t)

	require.NoError(t, store.Save(context.Background(), e))

	loaded, err := store.Load(context.Background(), "statuses")
	require.NoError(t, err)
	require.Equal(t, e.Names(), loaded.Names())
}
