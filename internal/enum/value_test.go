package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// mkEnum builds an enum for tests, failing on bad definitions.
func mkEnum(t *testing.T, name string, raws ...any) *Enum {
	t.Helper()
	e, err := New(name, raws...)
	require.NoError(t, err)
	return e
}

func TestValue_String_ReturnsCanonical(t *testing.T) {
	e := mkEnum(t, "colors", "Red", "green")

	v, ok := e.Lookup("red")
	require.True(t, ok)
	require.Equal(t, "Red", v.String())
}

func TestValue_Key_IsNormalized(t *testing.T) {
	e := mkEnum(t, "colors", "Red")

	v, ok := e.Lookup("RED")
	require.True(t, ok)
	require.Equal(t, "red", v.Key())
}

func TestValue_ScalarDefinitions(t *testing.T) {
	e := mkEnum(t, "mixed", 1, 2.5, true, "text")

	require.Equal(t, []string{"1", "2.5", "true", "text"}, e.Names())
}

func TestValue_StructuredDefinition_CarriesFormats(t *testing.T) {
	e := mkEnum(t, "test_enum", "one", "two", map[string]any{"value": "three", "number": "3"})

	v, ok := e.Lookup("three")
	require.True(t, ok)
	require.Equal(t, "three", v.String())
	require.Equal(t, "3", v.Format("number"))
}

func TestValue_StructuredDefinition_MissingValueKey(t *testing.T) {
	_, err := New("broken", map[string]any{"number": "3"})

	require.ErrorIs(t, err, ErrNoValueKey)
}

func TestValue_EmptyStringForm_Rejected(t *testing.T) {
	_, err := New("broken", "")

	require.ErrorIs(t, err, ErrBadRawValue)
}

func TestValue_UnconvertibleDefinition_Rejected(t *testing.T) {
	_, err := New("broken", struct{ X int }{X: 1})

	require.ErrorIs(t, err, ErrBadRawValue)
}

func TestValue_Format_FallsBackToCanonical(t *testing.T) {
	e := mkEnum(t, "test_enum", map[string]any{"value": "three", "number": "3"}, "one")

	three, _ := e.Lookup("three")
	one, _ := e.Lookup("one")

	require.Equal(t, "3", three.Format("number"))
	require.Equal(t, "three", three.Format("unset"))
	require.Equal(t, "one", one.Format("number"))
}

func TestValue_Formats_ReturnsCopy(t *testing.T) {
	e := mkEnum(t, "test_enum", map[string]any{"value": "three", "number": "3"})

	v, _ := e.Lookup("three")
	formats := v.Formats()
	formats["number"] = "clobbered"

	require.Equal(t, "3", v.Format("number"))
}

func TestValue_Int_LooseLeadingParse(t *testing.T) {
	e := mkEnum(t, "loose", "3", "12 months", "-4c", "three")

	cases := map[string]int{
		"3":         3,
		"12 months": 12,
		"-4c":       -4,
		"three":     0,
	}
	for canonical, want := range cases {
		v, ok := e.Lookup(canonical)
		require.True(t, ok, canonical)
		require.Equal(t, want, v.Int(), canonical)
	}
}

func TestValue_Float_LooseLeadingParse(t *testing.T) {
	e := mkEnum(t, "loose", "1.5", "2.5kg", ".5", "three")

	cases := map[string]float64{
		"1.5":   1.5,
		"2.5kg": 2.5,
		".5":    0.5,
		"three": 0,
	}
	for canonical, want := range cases {
		v, ok := e.Lookup(canonical)
		require.True(t, ok, canonical)
		require.InDelta(t, want, v.Float(), 1e-9, canonical)
	}
}

func TestValue_Is_MemberNames(t *testing.T) {
	e := mkEnum(t, "roles", "admin", "user")

	admin, _ := e.Lookup("admin")

	isAdmin, err := admin.Is("admin")
	require.NoError(t, err)
	require.True(t, isAdmin)

	isUser, err := admin.Is("user")
	require.NoError(t, err)
	require.False(t, isUser)
}

func TestValue_Is_NonMemberName_Errors(t *testing.T) {
	e := mkEnum(t, "roles", "admin", "user")

	admin, _ := e.Lookup("admin")

	_, err := admin.Is("superuser")
	require.ErrorIs(t, err, ErrNotMember)
}

func TestValue_Is_IndifferentToCase(t *testing.T) {
	e := mkEnum(t, "roles", "Admin", "user")

	admin, _ := e.Lookup("admin")

	ok, err := admin.Is("ADMIN")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestValue_Equal_LooseStringForm(t *testing.T) {
	e := mkEnum(t, "numbers", "1", "2")

	one, _ := e.Lookup("1")

	require.True(t, one.Equal("1"))
	require.True(t, one.Equal(1))
	require.False(t, one.Equal("2"))
	require.False(t, one.Equal(nil))
}

func TestValue_Equal_IsCaseSensitive(t *testing.T) {
	e := mkEnum(t, "roles", "admin")

	admin, _ := e.Lookup("admin")

	require.False(t, admin.Equal("Admin"))
}

func TestValue_Equal_OtherValue(t *testing.T) {
	a := mkEnum(t, "a", "shared")
	b := mkEnum(t, "b", "shared")

	va, _ := a.Lookup("shared")
	vb, _ := b.Lookup("shared")

	require.True(t, va.Equal(vb))
	require.False(t, va.Equal((*Value)(nil)))
}

func TestValue_Identical_RequiresSameOwner(t *testing.T) {
	a := mkEnum(t, "a", "shared")
	b := mkEnum(t, "b", "shared")

	va, _ := a.Lookup("shared")
	vb, _ := b.Lookup("shared")

	require.True(t, va.Identical(va))
	require.False(t, va.Identical(vb))
	require.False(t, va.Identical(nil))
}

func TestValue_Dup_ReownsAndCopiesFormats(t *testing.T) {
	src := mkEnum(t, "src", map[string]any{"value": "three", "number": "3"})
	dst := mkEnum(t, "dst")

	v, _ := src.Lookup("three")
	copied, err := v.Dup(dst)
	require.NoError(t, err)

	require.Same(t, dst, copied.Owner())
	require.Equal(t, "3", copied.Format("number"))
	require.False(t, v.Identical(copied))
}

func TestValue_Dup_NilOwner(t *testing.T) {
	src := mkEnum(t, "src", "one")

	v, _ := src.Lookup("one")
	_, err := v.Dup(nil)

	require.ErrorIs(t, err, ErrNoOwner)
}

func TestValue_MarshalJSON_BareCanonical(t *testing.T) {
	e := mkEnum(t, "test_enum", map[string]any{"value": "three", "number": "3"})

	v, _ := e.Lookup("three")
	data, err := json.Marshal(v)

	require.NoError(t, err)
	require.JSONEq(t, `"three"`, string(data))
}

func TestValue_MarshalText_BareCanonical(t *testing.T) {
	e := mkEnum(t, "colors", "Red")

	v, _ := e.Lookup("red")
	data, err := v.MarshalText()

	require.NoError(t, err)
	require.Equal(t, "Red", string(data))
}
