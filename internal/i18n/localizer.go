package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/zjrosen/nacre/internal/cachemanager"
	"github.com/zjrosen/nacre/internal/enum"
)

// ErrTranslationMissing is returned by LabelStrict when the backend has no
// entry for a value and no fallback is wanted.
var ErrTranslationMissing = errors.New("translation missing")

// DefaultLocale is used when a Localizer is built with an empty locale.
const DefaultLocale = "en"

// DefaultLabelTTL bounds how long a resolved label stays cached.
const DefaultLabelTTL = 10 * time.Minute

type labelQuery struct {
	scope []string
	key   string
}

// Localizer resolves display labels for enum values against a Backend,
// caching resolved labels per locale+scope+key.
type Localizer struct {
	locale  string
	backend Backend
	ttl     time.Duration
	cache   *cachemanager.ReadThroughCache[string, string, labelQuery]
}

// LocalizerOption configures a Localizer.
type LocalizerOption func(*Localizer)

// WithLabelTTL overrides the label cache TTL.
func WithLabelTTL(ttl time.Duration) LocalizerOption {
	return func(l *Localizer) { l.ttl = ttl }
}

// NewLocalizer builds a Localizer for locale over backend. An empty locale
// falls back to DefaultLocale; a nil backend behaves as an empty one.
func NewLocalizer(locale string, backend Backend, opts ...LocalizerOption) *Localizer {
	if locale == "" {
		locale = DefaultLocale
	}
	if backend == nil {
		backend = NewStaticBackend(nil)
	}
	l := &Localizer{
		locale:  locale,
		backend: backend,
		ttl:     DefaultLabelTTL,
	}
	for _, opt := range opts {
		opt(l)
	}

	labels := cachemanager.NewInMemoryCacheManager[string, string](
		"i18n-labels", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval,
	)
	l.cache = cachemanager.NewReadThroughCache(labels, func(ctx context.Context, q labelQuery) (string, error) {
		label, ok := l.backend.Lookup(l.locale, q.scope, q.key)
		if !ok {
			return "", fmt.Errorf("%w: %s.%s", ErrTranslationMissing, strings.Join(q.scope, "."), q.key)
		}
		return label, nil
	}, false)
	return l
}

// Locale reports the locale the Localizer resolves against.
func (l *Localizer) Locale() string { return l.locale }

// Label resolves the display label for v. When the backend has no entry the
// canonical string form is humanized instead, so Label always returns
// something presentable.
func (l *Localizer) Label(v *enum.Value) string {
	label, err := l.LabelStrict(v)
	if err != nil {
		return Humanize(v.String())
	}
	return label
}

// LabelStrict resolves the display label for v, returning
// ErrTranslationMissing when the backend has no entry.
func (l *Localizer) LabelStrict(v *enum.Value) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%w: nil value", ErrTranslationMissing)
	}
	q := labelQuery{scope: scopeOf(v), key: v.String()}
	cacheKey := l.locale + "/" + strings.Join(q.scope, ".") + "/" + q.key
	return l.cache.Get(context.Background(), cacheKey, q, l.ttl)
}

func scopeOf(v *enum.Value) []string {
	if owner := v.Owner(); owner != nil {
		return owner.I18nScope()
	}
	return nil
}

// Humanize turns a canonical value string into a presentable label:
// underscores and hyphens become spaces and the first rune is upper-cased.
func Humanize(s string) string {
	replaced := strings.NewReplacer("_", " ", "-", " ").Replace(s)
	runes := []rune(replaced)
	if len(runes) == 0 {
		return replaced
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
