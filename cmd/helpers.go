package cmd

import (
	"context"
	"fmt"

	"github.com/zjrosen/nacre/internal/config"
	"github.com/zjrosen/nacre/internal/flags"
	"github.com/zjrosen/nacre/internal/i18n"
	"github.com/zjrosen/nacre/internal/registry"
	"github.com/zjrosen/nacre/internal/store/sqlite"
	"github.com/zjrosen/nacre/internal/tracing"
)

// featureFlags returns the flag registry seeded from config. Nil-safe by
// construction; unknown flags read as false.
func featureFlags() *flags.Registry {
	return flags.New(cfg.Flags)
}

// buildRegistry assembles the enum registry from the effective config:
// sources, the loader chain, and tracing. The returned cleanup shuts down
// the registry broker and the trace provider.
func buildRegistry() (*registry.Registry, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var loader registry.Loader = registry.DefaultLoader{}
	if featureFlags().Enabled(flags.FlagSQLiteSources) {
		loader = sqlite.NewLoader(loader)
	}

	opts := []registry.Option{
		registry.WithSources(cfg.Sources...),
		registry.WithLoader(loader),
	}

	provider, err := buildTracing()
	if err != nil {
		return nil, nil, err
	}
	if provider.Enabled() {
		opts = append(opts, registry.WithTracer(provider.Tracer()))
	}

	reg := registry.New(opts...)
	cleanup := func() {
		reg.Close()
		_ = provider.Shutdown(context.Background())
	}
	return reg, cleanup, nil
}

func buildTracing() (*tracing.Provider, error) {
	tc := tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     cfg.Tracing.FilePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		ServiceName:  "nacre",
	}
	if tc.FilePath == "" {
		tc.FilePath = config.DefaultTracesFilePath()
	}
	provider, err := tracing.NewProvider(tc)
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	return provider, nil
}

// buildLocalizer assembles the label localizer. locale overrides the
// configured locale when non-empty.
func buildLocalizer(locale string) *i18n.Localizer {
	if locale == "" {
		locale = cfg.I18n.Locale
	}
	var backend i18n.Backend
	if cfg.I18n.Dir != "" {
		backend = i18n.NewFileBackend(cfg.I18n.Dir)
	}
	return i18n.NewLocalizer(locale, backend, i18n.WithLabelTTL(cfg.I18n.CacheTTL()))
}
