package enum

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// flagSeparator delimits members in the packed flags form "|a|b|".
const flagSeparator = "|"

// ValueList is an ordered collection of enum members resolved from raw
// inputs. Inputs that resolve to a member are held as that member; inputs
// that do not are kept verbatim so downstream validation can reject them.
// Order is preserved exactly: no deduplication, no sorting.
type ValueList struct {
	enum  *Enum
	items []any
}

// NewList builds a list by resolving raw against e. Raw may be a single
// input (wrapped as a one-element list), any slice, another *ValueList, or
// nil (the empty list).
func NewList(e *Enum, raw any) (*ValueList, error) {
	if e == nil {
		return nil, ErrNoOwner
	}
	l := &ValueList{enum: e}
	for _, item := range flatten(raw) {
		if v, ok := e.Lookup(item); ok {
			l.items = append(l.items, v)
			continue
		}
		l.items = append(l.items, item)
	}
	return l, nil
}

// flatten normalizes raw into its element sequence.
func flatten(raw any) []any {
	switch in := raw.(type) {
	case nil:
		return nil
	case *ValueList:
		if in == nil {
			return nil
		}
		return in.items
	case []any:
		return in
	case []string:
		return slice.Map(in, func(idx int, src string) any { return src })
	case []*Value:
		return slice.Map(in, func(idx int, src *Value) any { return src })
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{raw}
}

// Enum returns the enum the list resolves against.
func (l *ValueList) Enum() *Enum {
	return l.enum
}

// Len returns the element count.
func (l *ValueList) Len() int {
	return len(l.items)
}

// At returns the i-th element: a *Value for resolved members, the verbatim
// input otherwise.
func (l *ValueList) At(i int) any {
	return l.items[i]
}

// Items returns a copy of the elements in order.
func (l *ValueList) Items() []any {
	out := make([]any, len(l.items))
	copy(out, l.items)
	return out
}

// Values returns the resolved members only, in order.
func (l *ValueList) Values() []*Value {
	out := make([]*Value, 0, len(l.items))
	for _, item := range l.items {
		if v, ok := item.(*Value); ok {
			out = append(out, v)
		}
	}
	return out
}

// Strings returns the string forms of all elements in order.
func (l *ValueList) Strings() []string {
	return slice.Map(l.items, func(idx int, src any) string {
		return stringOf(src)
	})
}

// ByName returns the first element whose string form matches the candidate's
// string form exactly.
func (l *ValueList) ByName(candidate any) (any, bool) {
	want := stringOf(candidate)
	for _, item := range l.items {
		if stringOf(item) == want {
			return item, true
		}
	}
	return nil, false
}

// Contains reports whether any element's string form matches the candidate's
// string form exactly.
func (l *ValueList) Contains(candidate any) bool {
	_, ok := l.ByName(candidate)
	return ok
}

// Equal reports value equality against another list, any slice, or a single
// input (matching a one-element list). Comparison is elementwise on string
// forms. nil never equals a list.
func (l *ValueList) Equal(other any) bool {
	switch o := other.(type) {
	case nil:
		return false
	case *ValueList:
		if o == nil {
			return false
		}
		return l.equalStrings(o.Strings())
	}
	rv := reflect.ValueOf(other)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return l.equalStrings(slice.Map(flatten(other), func(idx int, src any) string {
			return stringOf(src)
		}))
	}
	return len(l.items) == 1 && stringOf(l.items[0]) == stringOf(other)
}

func (l *ValueList) equalStrings(other []string) bool {
	if len(l.items) != len(other) {
		return false
	}
	for i, item := range l.items {
		if stringOf(item) != other[i] {
			return false
		}
	}
	return true
}

// String joins the element string forms with ", ".
func (l *ValueList) String() string {
	return strings.Join(l.Strings(), ", ")
}

// Dump packs the list into the stored flags form "|a|b|". The empty list
// packs to "".
func (l *ValueList) Dump() string {
	if len(l.items) == 0 {
		return ""
	}
	return flagSeparator + strings.Join(l.Strings(), flagSeparator) + flagSeparator
}

// ParseList unpacks a stored flags form back into a list resolved against e.
// Empty segments are dropped, so "" and "||" both parse to the empty list.
func ParseList(e *Enum, packed string) (*ValueList, error) {
	parts := strings.Split(packed, flagSeparator)
	items := make([]any, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		items = append(items, part)
	}
	return NewList(e, items)
}

// MarshalJSON encodes the list as an array of element string forms.
func (l *ValueList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Strings())
}

// MarshalYAML encodes the list as a sequence of element string forms.
func (l *ValueList) MarshalYAML() (any, error) {
	return l.Strings(), nil
}
