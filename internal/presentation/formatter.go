package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles JSON output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatEnums formats a list of enums as indented JSON
func (f *Formatter) FormatEnums(enums []EnumDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(enums)
}

// FormatEnum formats a single enum as indented JSON
func (f *Formatter) FormatEnum(e EnumDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(e)
}

// FormatResult formats an arbitrary result as indented JSON
func (f *Formatter) FormatResult(result any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
