package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNew_EmptyName(t *testing.T) {
	_, err := New("")

	require.ErrorIs(t, err, ErrNoName)
}

func TestNew_BadDefinition_ReturnsNoEnum(t *testing.T) {
	e, err := New("broken", "one", "")

	require.ErrorIs(t, err, ErrBadRawValue)
	require.Nil(t, e)
}

func TestEnum_Lookup_Indifferent(t *testing.T) {
	e := mkEnum(t, "test_enum", "One", 2)

	for _, key := range []any{"one", "One", "ONE"} {
		v, ok := e.Lookup(key)
		require.True(t, ok, key)
		require.Equal(t, "One", v.String())
	}
	for _, key := range []any{2, "2"} {
		v, ok := e.Lookup(key)
		require.True(t, ok, key)
		require.Equal(t, "2", v.String())
	}
}

func TestEnum_Lookup_Miss(t *testing.T) {
	e := mkEnum(t, "colors", "red")

	v, ok := e.Lookup("blue")

	require.False(t, ok)
	require.Nil(t, v)
}

func TestEnum_Lookup_ByValue(t *testing.T) {
	e := mkEnum(t, "colors", "red", "green")

	red, _ := e.Lookup("red")
	again, ok := e.Lookup(red)

	require.True(t, ok)
	require.Same(t, red, again)
}

func TestEnum_Values_PreservesInsertionOrder(t *testing.T) {
	e := mkEnum(t, "ordered", "zulu", "alpha", "mike")

	require.Equal(t, []string{"zulu", "alpha", "mike"}, e.Names())
}

func TestEnum_Extend_AppendsInOrder(t *testing.T) {
	e := mkEnum(t, "ordered", "one")

	require.NoError(t, e.Extend("two", "three"))
	require.Equal(t, []string{"one", "two", "three"}, e.Names())
	require.Equal(t, 3, e.Len())
}

func TestEnum_Extend_DuplicateKeyOverwritesInPlace(t *testing.T) {
	e := mkEnum(t, "roles", "admin", "user", "guest")

	require.NoError(t, e.Extend(map[string]any{"value": "User", "short": "u"}))

	require.Equal(t, []string{"admin", "User", "guest"}, e.Names())
	v, _ := e.Lookup("user")
	require.Equal(t, "u", v.Format("short"))
}

func TestEnum_Extend_BadDefinitionLeavesEnumUntouched(t *testing.T) {
	e := mkEnum(t, "roles", "admin")

	err := e.Extend("user", "")

	require.ErrorIs(t, err, ErrBadRawValue)
	require.Equal(t, []string{"admin"}, e.Names())
}

func TestEnum_Extend_ReownsExistingValues(t *testing.T) {
	src := mkEnum(t, "src", "shared")
	dst := mkEnum(t, "dst")

	v, _ := src.Lookup("shared")
	require.NoError(t, dst.Extend(v))

	got, ok := dst.Lookup("shared")
	require.True(t, ok)
	require.Same(t, dst, got.Owner())
	require.NotSame(t, v, got)

	// The source member is untouched.
	require.Same(t, src, v.Owner())
}

func TestEnum_Dup_DeepCopy(t *testing.T) {
	e := mkEnum(t, "roles", "admin", map[string]any{"value": "user", "short": "u"})

	copied := e.Dup()
	require.NoError(t, copied.Extend("guest"))

	require.Equal(t, []string{"admin", "user"}, e.Names())
	require.Equal(t, []string{"admin", "user", "guest"}, copied.Names())

	v, _ := copied.Lookup("user")
	require.Same(t, copied, v.Owner())
	require.Equal(t, "u", v.Format("short"))
}

func TestEnum_Without_ExcludesKeys(t *testing.T) {
	e := mkEnum(t, "roles", "admin", "user", "guest")

	derived := e.Without("USER")

	require.Equal(t, []string{"admin", "guest"}, derived.Names())
	require.Equal(t, []string{"admin", "user", "guest"}, e.Names())
}

func TestEnum_Only_KeepsSourceOrder(t *testing.T) {
	e := mkEnum(t, "roles", "admin", "user", "guest")

	derived := e.Only("guest", "admin", "missing")

	require.Equal(t, []string{"admin", "guest"}, derived.Names())
}

func TestEnum_Derivations_ReownValues(t *testing.T) {
	e := mkEnum(t, "roles", "admin", "user")

	admin, _ := e.Lookup("admin")

	for _, derived := range []*Enum{e.Dup(), e.Without("user"), e.Only("admin")} {
		got, ok := derived.Lookup("admin")
		require.True(t, ok)
		require.Same(t, derived, got.Owner())
		require.False(t, admin.Identical(got))
		require.True(t, admin.Equal(got))
	}
}

func TestEnum_LookupByFormat(t *testing.T) {
	e := mkEnum(t, "test_enum", "one", "two", map[string]any{"value": "three", "number": "3"})

	v, ok := e.LookupByFormat("number", "3")
	require.True(t, ok)
	require.Equal(t, "three", v.String())
}

func TestEnum_LookupByFormat_OpenFallbackMatchesCanonical(t *testing.T) {
	e := mkEnum(t, "test_enum", "one", map[string]any{"value": "three", "number": "3"})

	// "one" carries no number format, so its canonical form matches.
	v, ok := e.LookupByFormat("number", "one")
	require.True(t, ok)
	require.Equal(t, "one", v.String())

	_, ok = e.LookupByFormat("number", "three")
	require.False(t, ok)
}

func TestEnum_I18nScope(t *testing.T) {
	e := mkEnum(t, "statuses")

	require.Equal(t, []string{"enums", "statuses"}, e.I18nScope())
}

func TestEnum_Definitions_RoundTripShape(t *testing.T) {
	e := mkEnum(t, "test_enum", "one", "two", map[string]any{"value": "three", "number": "3"})

	defs := e.Definitions()

	require.Equal(t, "one", defs[0])
	require.Equal(t, "two", defs[1])
	require.Equal(t, map[string]any{"value": "three", "number": "3"}, defs[2])
}

func TestEnum_MarshalJSON_DefinitionDocument(t *testing.T) {
	e := mkEnum(t, "colors", "red", "green")

	data, err := json.Marshal(e)

	require.NoError(t, err)
	require.JSONEq(t, `{"colors":["red","green"]}`, string(data))
}

func TestEnum_MarshalYAML_DefinitionDocument(t *testing.T) {
	e := mkEnum(t, "test_enum", "one", map[string]any{"value": "three", "number": "3"})

	data, err := yaml.Marshal(e)
	require.NoError(t, err)

	var doc map[string][]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Len(t, doc["test_enum"], 2)
	require.Equal(t, "one", doc["test_enum"][0])
}
