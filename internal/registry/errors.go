package registry

import "errors"

// Registry errors
var (
	// ErrNotDefined is returned when a bare-name access resolves to no
	// registered enum.
	ErrNotDefined = errors.New("enum not defined")
	// ErrUnsupportedQuery is returned when a name has the shape of a generic
	// conversion request ("to_<x>") rather than an enum name.
	ErrUnsupportedQuery = errors.New("unsupported query")
	// ErrNoSources is returned by an explicit Populate with nothing to load.
	ErrNoSources = errors.New("no sources configured")
)
