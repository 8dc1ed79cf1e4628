// Package presentation converts enums into output-facing shapes: JSON DTOs
// for machine consumption and styled tables for the terminal.
package presentation

import (
	"github.com/zjrosen/nacre/internal/enum"
	"github.com/zjrosen/nacre/internal/i18n"
)

// EnumDTO represents an enum for presentation.
type EnumDTO struct {
	Name   string     `json:"name"`
	Values []ValueDTO `json:"values"`
}

// ValueDTO represents a single enum value with its formats and, when a
// localizer is supplied, its display label.
type ValueDTO struct {
	Value   string            `json:"value"`
	Formats map[string]string `json:"formats,omitempty"`
	Label   string            `json:"label,omitempty"`
}

// FromValue converts an enum value to a DTO. loc may be nil, in which case
// no label is attached.
func FromValue(v *enum.Value, loc *i18n.Localizer) ValueDTO {
	dto := ValueDTO{
		Value:   v.String(),
		Formats: v.Formats(),
	}
	if loc != nil {
		dto.Label = loc.Label(v)
	}
	return dto
}

// FromEnum converts an enum to a DTO, values in insertion order.
func FromEnum(e *enum.Enum, loc *i18n.Localizer) EnumDTO {
	values := make([]ValueDTO, 0, e.Len())
	for _, v := range e.Values() {
		values = append(values, FromValue(v, loc))
	}
	return EnumDTO{Name: e.Name(), Values: values}
}

// FromEnums converts a slice of enums to DTOs.
func FromEnums(enums []*enum.Enum, loc *i18n.Localizer) []EnumDTO {
	dtos := make([]EnumDTO, len(enums))
	for i, e := range enums {
		dtos[i] = FromEnum(e, loc)
	}
	return dtos
}
