package enum

import (
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
)

// Enum is a named, ordered, finite set of values. Member keys are indifferent
// to case and input type: "One", "one", 1 and "1" all address the same slot.
// Insertion order is preserved and duplicates overwrite in place.
//
// An Enum is safe to share for reading. Extend is the one mutator and needs
// external synchronization if the enum is shared.
type Enum struct {
	name   string
	keys   []string
	values map[string]*Value
}

// New creates an enum from raw member definitions. Each definition is a bare
// scalar, a map with a "value" entry plus named formats, or an existing
// *Value (duplicated and re-owned).
func New(name string, raws ...any) (*Enum, error) {
	if name == "" {
		return nil, ErrNoName
	}
	e := &Enum{name: name, values: make(map[string]*Value, len(raws))}
	if err := e.Extend(raws...); err != nil {
		return nil, err
	}
	return e, nil
}

// Extend adds members in place. Definitions are validated up front so a bad
// definition leaves the enum untouched. Re-adding an existing key replaces
// the member but keeps its position.
func (e *Enum) Extend(raws ...any) error {
	vals := make([]*Value, 0, len(raws))
	for _, raw := range raws {
		v, err := newValue(e, raw)
		if err != nil {
			return err
		}
		vals = append(vals, v)
	}
	for _, v := range vals {
		e.put(v)
	}
	return nil
}

func (e *Enum) put(v *Value) {
	key := v.Key()
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = v
}

// Name returns the enum's name.
func (e *Enum) Name() string {
	return e.name
}

// Len returns the member count.
func (e *Enum) Len() int {
	return len(e.keys)
}

// Lookup resolves a raw input to a member by its indifferent key. It never
// errors: a miss is (nil, false).
func (e *Enum) Lookup(key any) (*Value, bool) {
	v, ok := e.values[normalizeKey(key)]
	return v, ok
}

// Values returns the members in insertion order.
func (e *Enum) Values() []*Value {
	out := make([]*Value, 0, len(e.keys))
	for _, key := range e.keys {
		out = append(out, e.values[key])
	}
	return out
}

// Names returns the canonical forms in insertion order.
func (e *Enum) Names() []string {
	return slice.Map(e.Values(), func(idx int, v *Value) string {
		return v.canonical
	})
}

// LookupByFormat returns the first member whose named representation matches
// s. The open fallback applies: members without the named format match on
// their canonical form.
func (e *Enum) LookupByFormat(format, s string) (*Value, bool) {
	for _, key := range e.keys {
		if v := e.values[key]; v.Format(format) == s {
			return v, true
		}
	}
	return nil, false
}

// Dup returns a deep copy. Members are re-owned by the copy.
func (e *Enum) Dup() *Enum {
	out := &Enum{name: e.name, values: make(map[string]*Value, len(e.keys))}
	for _, key := range e.keys {
		out.put(e.values[key].dup(out))
	}
	return out
}

// Without derives a new enum excluding the given keys. The receiver is
// untouched.
func (e *Enum) Without(keys ...any) *Enum {
	excluded := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		excluded[normalizeKey(key)] = struct{}{}
	}
	out := &Enum{name: e.name, values: make(map[string]*Value, len(e.keys))}
	for _, key := range e.keys {
		if _, skip := excluded[key]; skip {
			continue
		}
		out.put(e.values[key].dup(out))
	}
	return out
}

// Only derives a new enum restricted to the given keys, keeping the
// receiver's member order. Unknown keys are ignored.
func (e *Enum) Only(keys ...any) *Enum {
	included := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		included[normalizeKey(key)] = struct{}{}
	}
	out := &Enum{name: e.name, values: make(map[string]*Value, len(keys))}
	for _, key := range e.keys {
		if _, keep := included[key]; !keep {
			continue
		}
		out.put(e.values[key].dup(out))
	}
	return out
}

// I18nScope returns the translation scope for the enum's members.
func (e *Enum) I18nScope() []string {
	return []string{"enums", e.name}
}

// Definitions returns the raw member definitions in insertion order, the
// shape definition documents use: bare strings for plain members, maps for
// members carrying formats.
func (e *Enum) Definitions() []any {
	return slice.Map(e.Values(), func(idx int, v *Value) any {
		return v.definition()
	})
}

// MarshalJSON encodes the enum as a single-entry definition document:
// the name mapped to the member definition sequence.
func (e *Enum) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]any{e.name: e.Definitions()})
}

// MarshalYAML encodes the enum as a single-entry definition document.
func (e *Enum) MarshalYAML() (any, error) {
	return map[string][]any{e.name: e.Definitions()}, nil
}
