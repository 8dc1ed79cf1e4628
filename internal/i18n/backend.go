// Package i18n resolves localized labels for enum values. A Backend is the
// injected lookup service; the Localizer layers scoping, caching, and the
// humanized fallback on top of it.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/nacre/internal/log"
)

// Backend looks up a translation by locale, scope path, and key. A miss is
// (_, false), never an error; failing to read a locale source at all is the
// backend's problem to log or surface through its constructor.
type Backend interface {
	Lookup(locale string, scope []string, key string) (string, bool)
}

// StaticBackend serves translations from a nested in-memory map:
// locale -> scope segments -> key -> label. Used in tests and as the
// embedded default.
type StaticBackend struct {
	entries map[string]any
}

// NewStaticBackend wraps a nested translation map.
func NewStaticBackend(entries map[string]any) *StaticBackend {
	return &StaticBackend{entries: entries}
}

// Lookup walks locale, then each scope segment, then the key.
func (b *StaticBackend) Lookup(locale string, scope []string, key string) (string, bool) {
	node, ok := b.entries[locale]
	if !ok {
		return "", false
	}
	for _, segment := range scope {
		node, ok = childNode(node, segment)
		if !ok {
			return "", false
		}
	}
	leaf, ok := childNode(node, key)
	if !ok {
		return "", false
	}
	label, ok := leaf.(string)
	return label, ok
}

func childNode(node any, key string) (any, bool) {
	switch m := node.(type) {
	case map[string]any:
		child, ok := m[key]
		return child, ok
	case map[any]any:
		child, ok := m[key]
		return child, ok
	}
	return nil, false
}

// FileBackend serves translations from per-locale YAML files laid out as
// <dir>/<locale>.yml with the locale as the document root:
//
//	en:
//	  enums:
//	    statuses:
//	      draft: Draft
//
// Files are read once per locale and memoized; a missing or unparsable file
// is logged and treated as an empty locale.
type FileBackend struct {
	dir string

	mu      sync.Mutex
	locales map[string]*StaticBackend
}

// NewFileBackend serves locale files from dir.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir, locales: make(map[string]*StaticBackend)}
}

// Lookup loads the locale file on first use, then defers to the static map.
func (b *FileBackend) Lookup(locale string, scope []string, key string) (string, bool) {
	return b.locale(locale).Lookup(locale, scope, key)
}

func (b *FileBackend) locale(locale string) *StaticBackend {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cached, ok := b.locales[locale]; ok {
		return cached
	}

	loaded, err := b.load(locale)
	if err != nil {
		log.ErrorErr(log.CatI18n, "Locale load failed", err, "locale", locale, "dir", b.dir)
		loaded = NewStaticBackend(nil)
	}
	b.locales[locale] = loaded
	return loaded
}

func (b *FileBackend) load(locale string) (*StaticBackend, error) {
	path := filepath.Join(b.dir, locale+".yml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		path = filepath.Join(b.dir, locale+".yaml")
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read locale file: %w", err)
	}

	var entries map[string]any
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Debug(log.CatI18n, "Loaded locale", "locale", locale, "path", path)
	return NewStaticBackend(entries), nil
}
