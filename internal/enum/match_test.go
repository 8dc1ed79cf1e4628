package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatch_ValueAgainstRaw(t *testing.T) {
	e := mkEnum(t, "statuses", "active", "retired")

	active, _ := e.Lookup("active")

	require.True(t, Match(active, "active"))
	require.True(t, Match("active", active))
	require.False(t, Match(active, "retired"))
	require.False(t, Match(active, nil))
}

func TestMatch_ListAgainstSlice(t *testing.T) {
	e := mkEnum(t, "roles", "admin", "user")

	l := mkList(t, e, []string{"admin", "user"})

	require.True(t, Match(l, []string{"admin", "user"}))
	require.True(t, Match([]string{"admin", "user"}, l))
	require.False(t, Match(l, []string{"admin"}))
}

func TestMatch_PlainFallback(t *testing.T) {
	require.True(t, Match("a", "a"))
	require.True(t, Match(3, 3))
	require.False(t, Match("a", "b"))
	require.False(t, Match(3, "3"))
}
