package attr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/nacre/internal/enum"
)

type providerHost struct {
	statuses *enum.Enum
}

func (h *providerHost) EnumFor(attribute string) (*enum.Enum, bool) {
	if attribute == "status" {
		return h.statuses, true
	}
	return nil, false
}

type methodHost struct {
	statuses *enum.Enum
}

func (h *methodHost) StatusEnum() *enum.Enum { return h.statuses }

func (h *methodHost) AccessLevelEnum() *enum.Enum { return h.statuses }

type wrongShapeHost struct{}

func (wrongShapeHost) StatusEnum(extra int) *enum.Enum { return nil }

func TestFind_ProviderInterface(t *testing.T) {
	e := statusEnum(t)
	got, ok := Find(&providerHost{statuses: e}, "status")
	require.True(t, ok)
	require.Same(t, e, got)
}

func TestFind_ProviderMiss(t *testing.T) {
	_, ok := Find(&providerHost{statuses: statusEnum(t)}, "priority")
	require.False(t, ok)
}

func TestFind_ReflectedMethod(t *testing.T) {
	e := statusEnum(t)
	got, ok := Find(&methodHost{statuses: e}, "status")
	require.True(t, ok)
	require.Same(t, e, got)
}

func TestFind_SnakeCaseAttribute(t *testing.T) {
	e := statusEnum(t)
	got, ok := Find(&methodHost{statuses: e}, "access_level")
	require.True(t, ok)
	require.Same(t, e, got)
}

func TestFind_WrongMethodShape(t *testing.T) {
	_, ok := Find(wrongShapeHost{}, "status")
	require.False(t, ok)
}

func TestFind_NilHost(t *testing.T) {
	_, ok := Find(nil, "status")
	require.False(t, ok)
}

func TestFind_NilEnumFromMethod(t *testing.T) {
	_, ok := Find(&methodHost{}, "status")
	require.False(t, ok)
}
