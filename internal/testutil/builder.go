// Package testutil provides helpers for tests: a fluent definition-source
// builder, preset enum sets, and temp SQLite stores.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// enumData holds one enum declaration to be written.
type enumData struct {
	name string
	raws []any
}

// SourceBuilder accumulates enum declarations and writes them as a
// structured definition source.
type SourceBuilder struct {
	t     *testing.T
	enums []enumData
}

// NewSource creates a builder.
func NewSource(t *testing.T) *SourceBuilder {
	t.Helper()
	return &SourceBuilder{t: t}
}

// WithEnum adds an enum with optional configuration. With no options the
// enum is declared empty.
func (b *SourceBuilder) WithEnum(name string, opts ...EnumOption) *SourceBuilder {
	e := enumData{name: name}
	for _, opt := range opts {
		opt(&e)
	}
	b.enums = append(b.enums, e)
	return b
}

// WriteYAML writes the accumulated declarations as a YAML source in a temp
// directory and returns the path.
func (b *SourceBuilder) WriteYAML() string {
	b.t.Helper()
	return b.writeFile("enums.yml", b.yamlBytes())
}

// WriteYAMLTo writes the source at an explicit path.
func (b *SourceBuilder) WriteYAMLTo(path string) string {
	b.t.Helper()
	require.NoError(b.t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(b.t, os.WriteFile(path, b.yamlBytes(), 0o644))
	return path
}

// yamlBytes serializes declarations in order. A yaml.Node document keeps
// the declaration order; a plain map would not.
func (b *SourceBuilder) yamlBytes() []byte {
	b.t.Helper()
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range b.enums {
		var seq yaml.Node
		require.NoError(b.t, seq.Encode(e.raws))
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.name},
			&seq,
		)
	}
	out, err := yaml.Marshal(root)
	require.NoError(b.t, err)
	return out
}

func (b *SourceBuilder) writeFile(name string, data []byte) string {
	b.t.Helper()
	path := filepath.Join(b.t.TempDir(), name)
	require.NoError(b.t, os.WriteFile(path, data, 0o644))
	return path
}
