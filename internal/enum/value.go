package enum

import (
	"encoding/json"
	"fmt"
)

// Value is a single member of an enum: an immutable canonical string plus any
// number of named alternate representations ("formats"). Values are created
// through their owning enum and always carry a back-reference to it.
type Value struct {
	owner     *Enum
	canonical string
	formats   map[string]string
}

// newValue builds a member from a raw definition (used by the enum add path).
// A raw definition is a bare scalar, a map with a "value" entry plus format
// entries, or an existing *Value (duplicated and re-owned, never aliased).
func newValue(owner *Enum, raw any) (*Value, error) {
	if owner == nil {
		return nil, ErrNoOwner
	}
	switch def := raw.(type) {
	case *Value:
		if def == nil {
			return nil, fmt.Errorf("%w: nil value", ErrBadRawValue)
		}
		return def.dup(owner), nil
	case map[string]any:
		return newStructuredValue(owner, def)
	case map[any]any:
		converted := make(map[string]any, len(def))
		for k, v := range def {
			converted[stringOf(k)] = v
		}
		return newStructuredValue(owner, converted)
	default:
		canonical := stringOf(raw)
		if canonical == "" {
			return nil, fmt.Errorf("%w: %#v", ErrBadRawValue, raw)
		}
		return &Value{owner: owner, canonical: canonical}, nil
	}
}

func newStructuredValue(owner *Enum, def map[string]any) (*Value, error) {
	rawCanonical, ok := def["value"]
	if !ok {
		return nil, fmt.Errorf("%w: %#v", ErrNoValueKey, def)
	}
	canonical := stringOf(rawCanonical)
	if canonical == "" {
		return nil, fmt.Errorf("%w: %#v", ErrBadRawValue, rawCanonical)
	}
	v := &Value{owner: owner, canonical: canonical}
	for name, raw := range def {
		if name == "value" {
			continue
		}
		if v.formats == nil {
			v.formats = make(map[string]string, len(def)-1)
		}
		v.formats[name] = stringOf(raw)
	}
	return v, nil
}

// dup copies the value under a new owner.
func (v *Value) dup(owner *Enum) *Value {
	out := &Value{owner: owner, canonical: v.canonical}
	if len(v.formats) > 0 {
		out.formats = make(map[string]string, len(v.formats))
		for name, format := range v.formats {
			out.formats[name] = format
		}
	}
	return out
}

// Dup duplicates the value under newOwner. The copy shares nothing with the
// original.
func (v *Value) Dup(newOwner *Enum) (*Value, error) {
	if newOwner == nil {
		return nil, ErrNoOwner
	}
	return v.dup(newOwner), nil
}

// String returns the canonical form.
func (v *Value) String() string {
	return v.canonical
}

// Key returns the indifferent lookup key derived from the canonical form.
func (v *Value) Key() string {
	return normalizeKey(v.canonical)
}

// Owner returns the owning enum.
func (v *Value) Owner() *Enum {
	return v.owner
}

// Int returns the leading integer of the canonical form, or 0.
func (v *Value) Int() int {
	return looseInt(v.canonical)
}

// Float returns the leading decimal number of the canonical form, or 0.
func (v *Value) Float() float64 {
	return looseFloat(v.canonical)
}

// Format returns the named representation of the value. Names are open-ended:
// a name with no explicit representation falls back to the canonical form.
func (v *Value) Format(name string) string {
	if format, ok := v.formats[name]; ok && format != "" {
		return format
	}
	return v.canonical
}

// Formats returns a copy of the explicitly defined representations.
func (v *Value) Formats() map[string]string {
	if len(v.formats) == 0 {
		return nil
	}
	out := make(map[string]string, len(v.formats))
	for name, format := range v.formats {
		out[name] = format
	}
	return out
}

// Is answers the mnemonic question "is this value <name>?". Asking about a
// name outside the owning enum's member set is a programming error and
// returns ErrNotMember rather than a silent false.
func (v *Value) Is(name string) (bool, error) {
	key := normalizeKey(name)
	if _, ok := v.owner.Lookup(key); !ok {
		return false, fmt.Errorf("%w: %q in %s", ErrNotMember, name, v.owner.Name())
	}
	return v.Key() == key, nil
}

// Equal reports loose equality: the other side's string form matches the
// canonical form exactly. nil never equals a value.
func (v *Value) Equal(other any) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*Value); ok {
		if o == nil {
			return false
		}
		return o.canonical == v.canonical
	}
	return stringOf(other) == v.canonical
}

// Identical reports strict equality: same owning enum and same canonical
// form.
func (v *Value) Identical(other *Value) bool {
	return other != nil && other.owner == v.owner && other.canonical == v.canonical
}

// definition returns the raw definition shape: the bare canonical string, or
// a map when formats are present. This is the form enum definition documents
// use.
func (v *Value) definition() any {
	if len(v.formats) == 0 {
		return v.canonical
	}
	def := make(map[string]any, len(v.formats)+1)
	def["value"] = v.canonical
	for name, format := range v.formats {
		def[name] = format
	}
	return def
}

// MarshalText encodes the value as its bare canonical form.
func (v *Value) MarshalText() ([]byte, error) {
	return []byte(v.canonical), nil
}

// MarshalJSON encodes the value as its bare canonical form.
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.canonical)
}

// MarshalYAML encodes the value as its bare canonical form.
func (v *Value) MarshalYAML() (any, error) {
	return v.canonical, nil
}
