package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/zjrosen/nacre/internal/log"
	"github.com/zjrosen/nacre/internal/registry"
)

// Loader is a registry source loader that claims database sources (.db,
// .sqlite, .sqlite3) and delegates everything else to a fallback, normally
// the registry's DefaultLoader. It exists as the pluggable-hook proof: a
// custom loader owns source interpretation end to end.
type Loader struct {
	fallback registry.Loader
}

// NewLoader builds a loader chaining to fallback for non-database sources.
// A nil fallback skips them silently.
func NewLoader(fallback registry.Loader) *Loader {
	return &Loader{fallback: fallback}
}

// Load defines every enum stored in a database source. Non-database sources
// go to the fallback untouched, classification included.
func (l *Loader) Load(ctx context.Context, src registry.Source, define registry.DefineFunc) error {
	if !isDatabasePath(src.Path) {
		if l.fallback == nil {
			return nil
		}
		return l.fallback.Load(ctx, src, define)
	}

	db, err := NewDB(src.Path)
	if err != nil {
		return fmt.Errorf("open database source %s: %w", src.Path, err)
	}
	store := NewStore(db)

	enums, err := store.LoadAll(ctx)
	if err != nil {
		err = multierror.Append(err, store.Close()).ErrorOrNil()
		return fmt.Errorf("database source %s: %w", src.Path, err)
	}

	for _, e := range enums {
		if _, err := define(e.Name(), e.Definitions()...); err != nil {
			err = multierror.Append(err, store.Close()).ErrorOrNil()
			return fmt.Errorf("define %q from %s: %w", e.Name(), src.Path, err)
		}
	}

	log.Debug(log.CatStore, "Loaded database source", "path", src.Path, "enums", len(enums))
	return store.Close()
}

func isDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
