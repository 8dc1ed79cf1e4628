package testutil

// EnumOption configures an enum declaration in a SourceBuilder.
type EnumOption func(*enumData)

// WithValues declares plain scalar values.
func WithValues(values ...string) EnumOption {
	return func(e *enumData) {
		for _, v := range values {
			e.raws = append(e.raws, v)
		}
	}
}

// WithValue declares a single value with explicit formats.
func WithValue(value string, formats map[string]any) EnumOption {
	return func(e *enumData) {
		raw := map[string]any{"value": value}
		for k, v := range formats {
			raw[k] = v
		}
		e.raws = append(e.raws, raw)
	}
}

// WithRaw declares a value from an arbitrary raw form. Useful for
// exercising coercion edge cases (ints, booleans, malformed maps).
func WithRaw(raw any) EnumOption {
	return func(e *enumData) {
		e.raws = append(e.raws, raw)
	}
}
