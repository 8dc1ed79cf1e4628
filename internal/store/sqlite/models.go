package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/zjrosen/nacre/internal/enum"
)

// valueModel is the database row shape for one enum member.
type valueModel struct {
	Value   string
	Formats string // JSON-encoded map, "{}" when empty
}

// toValueModel flattens a member into its row shape.
func toValueModel(v *enum.Value) (valueModel, error) {
	formats := v.Formats()
	if formats == nil {
		formats = map[string]string{}
	}
	encoded, err := json.Marshal(formats)
	if err != nil {
		return valueModel{}, fmt.Errorf("encode formats for %q: %w", v.String(), err)
	}
	return valueModel{Value: v.String(), Formats: string(encoded)}, nil
}

// rawDefinition rebuilds the raw definition the enum add-path accepts: a
// bare string without formats, a map with a "value" entry otherwise.
func (m valueModel) rawDefinition() (any, error) {
	var formats map[string]string
	if err := json.Unmarshal([]byte(m.Formats), &formats); err != nil {
		return nil, fmt.Errorf("decode formats for %q: %w", m.Value, err)
	}
	if len(formats) == 0 {
		return m.Value, nil
	}
	def := make(map[string]any, len(formats)+1)
	def["value"] = m.Value
	for name, format := range formats {
		def[name] = format
	}
	return def, nil
}
