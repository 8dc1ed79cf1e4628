package enum

import "reflect"

// Match is the comparison hook for branch-style dispatch over mixed inputs:
// either side may be a *Value, a *ValueList, or a plain raw input. When an
// enum-typed side is present its loose equality applies; two plain inputs
// fall back to deep equality.
func Match(a, b any) bool {
	if v, ok := a.(*Value); ok && v != nil {
		return v.Equal(b)
	}
	if v, ok := b.(*Value); ok && v != nil {
		return v.Equal(a)
	}
	if l, ok := a.(*ValueList); ok && l != nil {
		return l.Equal(b)
	}
	if l, ok := b.(*ValueList); ok && l != nil {
		return l.Equal(a)
	}
	return reflect.DeepEqual(a, b)
}
