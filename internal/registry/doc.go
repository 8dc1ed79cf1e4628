// Package registry provides the process-wide named-enum store. A Registry
// maps names to enums with indifferent lookup, populates itself lazily from
// an ordered list of load sources on first access, and publishes change
// events through a pubsub broker.
//
// Sources are classified by suffix: .yml/.yaml/.toml are structured
// definition documents handled by the DefaultLoader, .go files are
// host-language scripts the default loader skips, and anything else is
// unrecognized. A custom Loader replaces source interpretation entirely; it
// receives each source with its classification and calls define as needed.
// The sqlite store ships such a loader for .db sources.
//
// Registries are injectable instances, never package singletons. Reset
// exists for test isolation: it clears the store and the population latch.
package registry
