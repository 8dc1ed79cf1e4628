// Package lint validates enum definition sources and aggregates every
// finding instead of stopping at the first.
package lint

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/zjrosen/nacre/internal/enum"
	"github.com/zjrosen/nacre/internal/log"
	"github.com/zjrosen/nacre/internal/registry"
)

// Run checks every path and returns the accumulated findings as a single
// error, or nil when all sources are clean. Findings cover unreadable and
// unparsable sources, unrecognized extensions, enums redefined across
// sources, and enums with no values.
func Run(ctx context.Context, paths []string) error {
	var findings *multierror.Error
	seen := make(map[string]string) // normalized enum name -> first defining path

	for _, path := range paths {
		findings = multierror.Append(findings, checkPath(ctx, path, seen))
	}

	if findings != nil {
		log.Debug(log.CatCLI, "Lint finished", "paths", len(paths), "findings", findings.Len())
	}
	return findings.ErrorOrNil()
}

func checkPath(ctx context.Context, path string, seen map[string]string) error {
	var findings *multierror.Error

	src := registry.Source{Path: path}
	switch src.Kind() {
	case registry.KindScript:
		// Script sources are not interpreted, nothing to check.
		return nil
	case registry.KindUnrecognized:
		return fmt.Errorf("%s: unrecognized source extension", path)
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	loader := registry.DefaultLoader{}
	define := func(name string, raws ...any) (*enum.Enum, error) {
		e, err := enum.New(name, raws...)
		if err != nil {
			findings = multierror.Append(findings, fmt.Errorf("%s: %w", path, err))
			return nil, nil
		}
		if e.Len() == 0 {
			findings = multierror.Append(findings, fmt.Errorf("%s: enum %q has no values", path, name))
		}
		if prev, dup := seen[e.Name()]; dup {
			findings = multierror.Append(findings,
				fmt.Errorf("%s: enum %q already defined in %s", path, name, prev))
		} else {
			seen[e.Name()] = path
		}
		return e, nil
	}

	if err := loader.Load(ctx, src, define); err != nil {
		findings = multierror.Append(findings, fmt.Errorf("%s: %w", path, err))
	}
	return findings.ErrorOrNil()
}
