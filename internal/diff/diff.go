// Package diff compares two sets of enum definitions and reports added,
// removed, and changed enums, down to per-value format changes.
package diff

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/zjrosen/nacre/internal/enum"
	"github.com/zjrosen/nacre/internal/registry"
)

// ValueChange records a value whose formats differ between the two sides.
type ValueChange struct {
	Value  string
	Before map[string]string
	After  map[string]string
}

// EnumDiff records the changes within one enum present on both sides.
type EnumDiff struct {
	Name          string
	AddedValues   []string
	RemovedValues []string
	Changed       []ValueChange
}

func (d EnumDiff) empty() bool {
	return len(d.AddedValues) == 0 && len(d.RemovedValues) == 0 && len(d.Changed) == 0
}

// Report is the full comparison result between two definition sets.
type Report struct {
	AddedEnums   []string
	RemovedEnums []string
	Changed      []EnumDiff
}

// Empty reports whether the two sides are identical.
func (r Report) Empty() bool {
	return len(r.AddedEnums) == 0 && len(r.RemovedEnums) == 0 && len(r.Changed) == 0
}

// Compare diffs two enum sets. Enum identity is by name (indifferent, like
// registry lookup); value identity within an enum is by canonical string.
func Compare(before, after []*enum.Enum) Report {
	var report Report

	beforeByName := indexByName(before)
	afterByName := indexByName(after)

	for _, e := range after {
		if _, ok := beforeByName[key(e.Name())]; !ok {
			report.AddedEnums = append(report.AddedEnums, e.Name())
		}
	}
	for _, e := range before {
		if _, ok := afterByName[key(e.Name())]; !ok {
			report.RemovedEnums = append(report.RemovedEnums, e.Name())
		}
	}

	for _, b := range before {
		a, ok := afterByName[key(b.Name())]
		if !ok {
			continue
		}
		if d := compareEnum(b, a); !d.empty() {
			report.Changed = append(report.Changed, d)
		}
	}
	return report
}

func compareEnum(before, after *enum.Enum) EnumDiff {
	d := EnumDiff{Name: before.Name()}

	for _, v := range after.Values() {
		if _, ok := before.Lookup(v.String()); !ok {
			d.AddedValues = append(d.AddedValues, v.String())
		}
	}
	for _, v := range before.Values() {
		av, ok := after.Lookup(v.String())
		if !ok {
			d.RemovedValues = append(d.RemovedValues, v.String())
			continue
		}
		if !formatsEqual(v.Formats(), av.Formats()) {
			d.Changed = append(d.Changed, ValueChange{
				Value:  v.String(),
				Before: v.Formats(),
				After:  av.Formats(),
			})
		}
	}
	return d
}

// CompareSources loads both definition files and diffs them.
func CompareSources(ctx context.Context, beforePath, afterPath string) (Report, error) {
	before, err := loadEnums(ctx, beforePath)
	if err != nil {
		return Report{}, fmt.Errorf("loading %s: %w", beforePath, err)
	}
	after, err := loadEnums(ctx, afterPath)
	if err != nil {
		return Report{}, fmt.Errorf("loading %s: %w", afterPath, err)
	}
	return Compare(before, after), nil
}

func loadEnums(ctx context.Context, path string) ([]*enum.Enum, error) {
	r := registry.New(registry.WithSources(path))
	defer r.Close()
	if err := r.Populate(ctx); err != nil {
		return nil, err
	}
	return r.Enums(), nil
}

func indexByName(enums []*enum.Enum) map[string]*enum.Enum {
	m := make(map[string]*enum.Enum, len(enums))
	for _, e := range enums {
		m[key(e.Name())] = e
	}
	return m
}

func key(name string) string {
	return strings.ToLower(name)
}

// FormatLine serializes a format map into a stable one-line form for
// textual diffing.
func FormatLine(formats map[string]string) string {
	if len(formats) == 0 {
		return "(no formats)"
	}
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = name + "=" + formats[name]
	}
	return strings.Join(pairs, " ")
}

func formatsEqual(a, b map[string]string) bool {
	return FormatLine(a) == FormatLine(b)
}
