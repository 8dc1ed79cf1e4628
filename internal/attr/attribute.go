// Package attr is the host-object integration boundary: it binds a named
// attribute on some host type to a resolving enum, coerces reads and writes,
// and packs values for flat storage columns.
package attr

import (
	"context"
	"errors"
	"fmt"

	"github.com/zjrosen/nacre/internal/enum"
	"github.com/zjrosen/nacre/internal/registry"
)

// Mode selects between a single-valued attribute and a flags attribute
// holding an ordered set of values.
type Mode int

const (
	ModeSingle Mode = iota
	ModeFlags
)

// ErrUnresolvedEnum is returned when an Attribute has no explicit enum and
// no registry to resolve one from.
var ErrUnresolvedEnum = errors.New("attribute has no resolvable enum")

// Attribute binds an attribute name to its resolving enum. The enum can be
// given explicitly, built from a raw definition list, or deferred: with only
// a registry configured, the pluralized attribute name is looked up on
// first use.
type Attribute struct {
	name     string
	mode     Mode
	enum     *enum.Enum
	raws     []any
	registry *registry.Registry
}

// Option configures an Attribute.
type Option func(*Attribute)

// WithEnum binds an explicit enum.
func WithEnum(e *enum.Enum) Option {
	return func(a *Attribute) { a.enum = e }
}

// WithValues builds the enum inline from raw definitions, named after the
// pluralized attribute.
func WithValues(raws ...any) Option {
	return func(a *Attribute) { a.raws = raws }
}

// WithRegistry defers enum resolution to a registry lookup of the
// pluralized attribute name.
func WithRegistry(r *registry.Registry) Option {
	return func(a *Attribute) { a.registry = r }
}

// AsFlags makes the attribute hold an ordered list of values instead of a
// single one.
func AsFlags() Option {
	return func(a *Attribute) { a.mode = ModeFlags }
}

// New builds an Attribute for name.
func New(name string, opts ...Option) *Attribute {
	a := &Attribute{name: name, mode: ModeSingle}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name reports the attribute name.
func (a *Attribute) Name() string { return a.name }

// Mode reports whether the attribute is single-valued or flags.
func (a *Attribute) Mode() Mode { return a.mode }

// Enum resolves the attribute's enum, performing the deferred registry
// lookup when needed. The resolved enum is memoized.
func (a *Attribute) Enum(ctx context.Context) (*enum.Enum, error) {
	if a.enum != nil {
		return a.enum, nil
	}
	if a.raws != nil {
		e, err := enum.New(Pluralize(a.name), a.raws...)
		if err != nil {
			return nil, fmt.Errorf("build enum for %q: %w", a.name, err)
		}
		a.enum = e
		return e, nil
	}
	if a.registry != nil {
		e, err := a.registry.Lookup(ctx, Pluralize(a.name))
		if err != nil {
			return nil, fmt.Errorf("resolve enum for %q: %w", a.name, err)
		}
		a.enum = e
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnresolvedEnum, a.name)
}

// Coerce maps raw input into the attribute's value space: a *Value in
// single mode, a *ValueList in flags mode. Input that does not resolve to a
// member passes through unchanged so the host's own validation can reject
// it.
func (a *Attribute) Coerce(ctx context.Context, raw any) any {
	e, err := a.Enum(ctx)
	if err != nil {
		return raw
	}

	if a.mode == ModeFlags {
		list, err := enum.NewList(e, raw)
		if err != nil {
			return raw
		}
		return list
	}

	if v, ok := raw.(*enum.Value); ok {
		raw = v.String()
	}
	if v, ok := e.Lookup(raw); ok {
		return v
	}
	return raw
}

// PermittedValues lists the canonical member names, for externally-driven
// validation such as strong-parameter allowlists.
func (a *Attribute) PermittedValues(ctx context.Context) []string {
	e, err := a.Enum(ctx)
	if err != nil {
		return nil
	}
	return e.Names()
}

// Dump packs an attribute value for flat storage: the bare canonical string
// in single mode, the "|v1|v2|" pipe form in flags mode. Unresolved values
// are packed by their string form.
func (a *Attribute) Dump(ctx context.Context, value any) string {
	coerced := a.Coerce(ctx, value)
	switch v := coerced.(type) {
	case *enum.Value:
		return v.String()
	case *enum.ValueList:
		return v.Dump()
	default:
		return fmt.Sprintf("%v", coerced)
	}
}

// Load unpacks a stored column back into the attribute's value space, the
// inverse of Dump.
func (a *Attribute) Load(ctx context.Context, stored string) any {
	if a.mode == ModeFlags {
		e, err := a.Enum(ctx)
		if err != nil {
			return stored
		}
		list, err := enum.ParseList(e, stored)
		if err != nil {
			return stored
		}
		return list
	}
	return a.Coerce(ctx, stored)
}
