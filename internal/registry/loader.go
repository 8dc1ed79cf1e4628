package registry

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/nacre/internal/enum"
	"github.com/zjrosen/nacre/internal/log"
)

// DefineFunc stores an enum under a name, overwriting any existing entry.
// Loaders call it once per enum they resolve from a source.
type DefineFunc func(name string, raws ...any) (*enum.Enum, error)

// Loader interprets a load source and defines the enums it describes. A
// custom Loader fully replaces source interpretation: it receives every
// configured source with its classification and decides what to do with it.
type Loader interface {
	Load(ctx context.Context, src Source, define DefineFunc) error
}

// DefaultLoader parses structured definition documents: a top-level mapping
// from enum name to a sequence of raw value definitions. Each definition is
// a bare scalar or a mapping with a "value" entry plus named formats.
// Script and unrecognized sources are skipped silently.
type DefaultLoader struct{}

// Load reads and parses a single source, defining every enum it declares.
// Read and parse failures are fatal to the call; they are never swallowed.
func (DefaultLoader) Load(ctx context.Context, src Source, define DefineFunc) error {
	switch src.Kind() {
	case KindStructured:
	case KindScript:
		log.Debug(log.CatLoader, "Skipping script source", "path", src.Path)
		return nil
	default:
		log.Debug(log.CatLoader, "Skipping unrecognized source", "path", src.Path)
		return nil
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		return fmt.Errorf("read source %s: %w", src.Path, err)
	}

	var defs []namedDefinition
	if isTOML(src.Path) {
		defs, err = parseTOMLDefinitions(data)
	} else {
		defs, err = parseYAMLDefinitions(data)
	}
	if err != nil {
		return fmt.Errorf("parse source %s: %w", src.Path, err)
	}

	for _, def := range defs {
		if _, err := define(def.name, def.raws...); err != nil {
			return fmt.Errorf("define %q from %s: %w", def.name, src.Path, err)
		}
	}
	log.Debug(log.CatLoader, "Loaded source", "path", src.Path, "enums", len(defs))
	return nil
}

// namedDefinition is one enum declaration pulled out of a document.
type namedDefinition struct {
	name string
	raws []any
}

// parseYAMLDefinitions decodes via yaml.Node so document order is preserved.
// A plain map decode would randomize the enum registration order.
func parseYAMLDefinitions(data []byte) ([]namedDefinition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping of enum name to values")
	}

	defs := make([]namedDefinition, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		seq := root.Content[i+1]
		if seq.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("enum %q: values must be a sequence", name)
		}
		var raws []any
		if err := seq.Decode(&raws); err != nil {
			return nil, fmt.Errorf("enum %q: %w", name, err)
		}
		defs = append(defs, namedDefinition{name: name, raws: raws})
	}
	return defs, nil
}

// parseTOMLDefinitions decodes a TOML document of the same shape. TOML map
// decoding loses declaration order, so names are sorted for determinism.
func parseTOMLDefinitions(data []byte) ([]namedDefinition, error) {
	var document map[string][]any
	if err := toml.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(document))
	for name := range document {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]namedDefinition, 0, len(names))
	for _, name := range names {
		defs = append(defs, namedDefinition{name: name, raws: document[name]})
	}
	return defs, nil
}

func isTOML(path string) bool {
	n := len(path)
	return n >= 5 && path[n-5:] == ".toml"
}
