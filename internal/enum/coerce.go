package enum

import (
	"strings"

	"github.com/spf13/cast"
)

// stringOf reduces an arbitrary raw input to its string form. Inputs with no
// sensible string conversion reduce to "".
func stringOf(raw any) string {
	if v, ok := raw.(*Value); ok {
		if v == nil {
			return ""
		}
		return v.canonical
	}
	return cast.ToString(raw)
}

// normalizeKey produces the indifferent lookup key for a raw input: the
// lower-cased string form. "One", "one", and the symbolish :one all collide,
// as do 1 and "1".
func normalizeKey(raw any) string {
	return strings.ToLower(stringOf(raw))
}

// looseInt parses the leading integer of s, ignoring any trailing garbage.
// No leading integer yields 0.
func looseInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := cast.ToIntE(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// looseFloat parses the leading decimal number of s, ignoring any trailing
// garbage. No leading number yields 0.
func looseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end < len(s) && s[end] == '.' {
		mark := end
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		if end == mark+1 {
			end = mark
		}
	}
	if end == start {
		return 0
	}
	f, err := cast.ToFloat64E(s[:end])
	if err != nil {
		return 0
	}
	return f
}
