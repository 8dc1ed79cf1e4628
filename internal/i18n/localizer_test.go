package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/nacre/internal/enum"
)

func statusBackend() Backend {
	return NewStaticBackend(map[string]any{
		"en": map[string]any{
			"enums": map[string]any{
				"statuses": map[string]any{
					"draft":     "Draft",
					"in_review": "In review",
				},
			},
		},
		"de": map[string]any{
			"enums": map[string]any{
				"statuses": map[string]any{
					"draft": "Entwurf",
				},
			},
		},
	})
}

func statusEnum(t *testing.T) *enum.Enum {
	t.Helper()
	e, err := enum.New("statuses", "draft", "in_review", "published")
	require.NoError(t, err)
	return e
}

func TestLocalizer_Label(t *testing.T) {
	l := NewLocalizer("en", statusBackend())
	e := statusEnum(t)

	v, ok := e.Lookup("in_review")
	require.True(t, ok)
	require.Equal(t, "In review", l.Label(v))
}

func TestLocalizer_Label_HumanizedFallback(t *testing.T) {
	l := NewLocalizer("en", statusBackend())
	e := statusEnum(t)

	v, ok := e.Lookup("published")
	require.True(t, ok)
	require.Equal(t, "Published", l.Label(v))
}

func TestLocalizer_LabelStrict_Missing(t *testing.T) {
	l := NewLocalizer("en", statusBackend())
	e := statusEnum(t)

	v, ok := e.Lookup("published")
	require.True(t, ok)

	_, err := l.LabelStrict(v)
	require.ErrorIs(t, err, ErrTranslationMissing)
}

func TestLocalizer_LabelStrict_NilValue(t *testing.T) {
	l := NewLocalizer("en", statusBackend())

	_, err := l.LabelStrict(nil)
	require.ErrorIs(t, err, ErrTranslationMissing)
}

func TestLocalizer_LocaleSelection(t *testing.T) {
	l := NewLocalizer("de", statusBackend())
	e := statusEnum(t)

	v, ok := e.Lookup("draft")
	require.True(t, ok)
	require.Equal(t, "Entwurf", l.Label(v))
}

func TestLocalizer_DefaultLocale(t *testing.T) {
	l := NewLocalizer("", statusBackend())
	require.Equal(t, DefaultLocale, l.Locale())
}

func TestLocalizer_NilBackend(t *testing.T) {
	l := NewLocalizer("en", nil)
	e := statusEnum(t)

	v, ok := e.Lookup("draft")
	require.True(t, ok)
	require.Equal(t, "Draft", l.Label(v))
}

func TestLocalizer_CachesResolvedLabels(t *testing.T) {
	calls := 0
	backend := backendFunc(func(locale string, scope []string, key string) (string, bool) {
		calls++
		return "Label", true
	})
	l := NewLocalizer("en", backend)
	e := statusEnum(t)

	v, ok := e.Lookup("draft")
	require.True(t, ok)

	require.Equal(t, "Label", l.Label(v))
	require.Equal(t, "Label", l.Label(v))
	require.Equal(t, 1, calls)
}

type backendFunc func(locale string, scope []string, key string) (string, bool)

func (f backendFunc) Lookup(locale string, scope []string, key string) (string, bool) {
	return f(locale, scope, key)
}

func TestHumanize(t *testing.T) {
	require.Equal(t, "In review", Humanize("in_review"))
	require.Equal(t, "Read only", Humanize("read-only"))
	require.Equal(t, "Draft", Humanize("draft"))
	require.Equal(t, "", Humanize(""))
}
