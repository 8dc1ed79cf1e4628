package registry

import (
	"path/filepath"
	"strings"
)

// SourceKind classifies how a load source should be interpreted.
type SourceKind string

const (
	// KindStructured is a structured definition document (YAML or TOML).
	KindStructured SourceKind = "structured"
	// KindScript is a host-language definition file. Direct execution is out
	// of scope for the default loader, which skips these silently; a custom
	// Loader may interpret them.
	KindScript SourceKind = "script"
	// KindUnrecognized is anything else. The default loader skips these; a
	// custom Loader may still claim them (the sqlite store does).
	KindUnrecognized SourceKind = "unrecognized"
)

// Source is a single configured load location.
type Source struct {
	Path string
}

// Kind classifies the source by its suffix.
func (s Source) Kind() SourceKind {
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yml", ".yaml", ".toml":
		return KindStructured
	case ".go":
		return KindScript
	default:
		return KindUnrecognized
	}
}
