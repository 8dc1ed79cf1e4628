// Package tracing provides OpenTelemetry wiring for nacre: a configurable
// provider (noop when disabled) and the span naming conventions used around
// registry population, source loading, and the definition store.
package tracing

// Span attribute keys.
const (
	// Registry attributes
	AttrRegistryID  = "registry.id"
	AttrSourceCount = "registry.source_count"

	// Source attributes
	AttrSourcePath = "source.path"
	AttrSourceKind = "source.kind"

	// Enum attributes
	AttrEnumName   = "enum.name"
	AttrEnumCount  = "enum.count"
	AttrValueCount = "enum.value_count"

	// Store attributes
	AttrStorePath = "store.path"

	// Error attributes
	AttrErrorMessage = "error.message"
)

// Span names.
const (
	SpanRegistryPopulate = "registry.populate"
	SpanLoaderLoad       = "loader.load"
	SpanStoreSave        = "store.save"
	SpanStoreLoadAll     = "store.load_all"
)
