package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/nacre/internal/enum"
	"github.com/zjrosen/nacre/internal/log"
	"github.com/zjrosen/nacre/internal/pubsub"
	"github.com/zjrosen/nacre/internal/tracing"
)

// Registry is a name-keyed store of enums with lazy population from
// configured sources. It is an injectable instance, not a package singleton:
// construct one per process (or per test) and pass it where needed.
//
// A single mutex guards population and store mutation, so one Registry is
// safe to share across goroutines.
type Registry struct {
	id     string
	mu     sync.RWMutex
	names  []string
	enums  map[string]*enum.Enum
	canon  map[string]string // normalized key -> registered name
	source []Source
	loader Loader
	tracer trace.Tracer
	broker *pubsub.Broker[string]

	populated bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithSources sets the ordered load locations for lazy population.
func WithSources(paths ...string) Option {
	return func(r *Registry) {
		for _, p := range paths {
			r.source = append(r.source, Source{Path: p})
		}
	}
}

// WithLoader replaces the default structured-document loader.
func WithLoader(l Loader) Option {
	return func(r *Registry) { r.loader = l }
}

// WithTracer enables span emission around population and per-source loads.
func WithTracer(t trace.Tracer) Option {
	return func(r *Registry) { r.tracer = t }
}

// New creates an empty registry. With no options it holds nothing and loads
// nothing; Define still works.
func New(opts ...Option) *Registry {
	r := &Registry{
		id:     uuid.NewString(),
		enums:  make(map[string]*enum.Enum),
		canon:  make(map[string]string),
		loader: DefaultLoader{},
		tracer: noop.NewTracerProvider().Tracer("noop"),
		broker: pubsub.NewBroker[string](),
	}
	for _, opt := range opts {
		opt(r)
	}
	log.Debug(log.CatRegistry, "Registry created", "id", r.id, "sources", len(r.source))
	return r
}

// ID returns the registry's instance id, used for log and trace correlation.
func (r *Registry) ID() string {
	return r.id
}

// Define constructs an enum from raw value definitions and stores it,
// overwriting any existing entry under the same name. An overwritten entry
// keeps its position.
func (r *Registry) Define(name string, raws ...any) (*enum.Enum, error) {
	e, err := enum.New(name, raws...)
	if err != nil {
		return nil, fmt.Errorf("define %q: %w", name, err)
	}

	r.mu.Lock()
	key := normalizeName(name)
	_, existed := r.canon[key]
	if !existed {
		r.names = append(r.names, name)
		r.canon[key] = name
	}
	r.enums[r.canon[key]] = e
	r.mu.Unlock()

	if existed {
		r.broker.Publish(pubsub.UpdatedEvent, name)
	} else {
		r.broker.Publish(pubsub.CreatedEvent, name)
	}
	log.Debug(log.CatRegistry, "Defined enum", "id", r.id, "name", name, "values", e.Len())
	return e, nil
}

// Undefine removes an entry if present; a miss is a no-op.
func (r *Registry) Undefine(name any) {
	key := normalizeName(name)

	r.mu.Lock()
	registered, ok := r.canon[key]
	if ok {
		delete(r.canon, key)
		delete(r.enums, registered)
		for i, n := range r.names {
			if n == registered {
				r.names = append(r.names[:i], r.names[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()

	if ok {
		r.broker.Publish(pubsub.DeletedEvent, registered)
		log.Debug(log.CatRegistry, "Undefined enum", "id", r.id, "name", registered)
	}
}

// Lookup resolves a name to its enum. The first access while the registry is
// unpopulated triggers population from the configured sources; a population
// failure is fatal to that call and leaves the registry unpopulated, so the
// next access retries.
//
// An absent name yields ErrNotDefined, unless it has the shape of a generic
// conversion request ("to_<x>"), which yields ErrUnsupportedQuery.
func (r *Registry) Lookup(ctx context.Context, name any) (*enum.Enum, error) {
	if err := r.ensurePopulated(ctx); err != nil {
		return nil, err
	}

	key := normalizeName(name)

	r.mu.RLock()
	registered, ok := r.canon[key]
	var e *enum.Enum
	if ok {
		e = r.enums[registered]
	}
	r.mu.RUnlock()

	if !ok {
		if strings.HasPrefix(key, "to_") {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedQuery, cast.ToString(name))
		}
		return nil, fmt.Errorf("%w: %q", ErrNotDefined, cast.ToString(name))
	}
	return e, nil
}

// Populate loads every configured source in order through the loader. It is
// idempotent per name: redefining overwrites. Any load failure aborts and
// propagates; nothing is retried.
func (r *Registry) Populate(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, tracing.SpanRegistryPopulate,
		trace.WithAttributes(
			attribute.String(tracing.AttrRegistryID, r.id),
			attribute.Int(tracing.AttrSourceCount, len(r.source)),
		))
	defer span.End()

	for _, src := range r.source {
		if err := r.loadSource(ctx, src); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	r.mu.Lock()
	r.populated = true
	r.mu.Unlock()

	r.broker.Publish(pubsub.ReloadedEvent, "")
	log.Info(log.CatRegistry, "Registry populated", "id", r.id, "enums", r.Len())
	return nil
}

func (r *Registry) loadSource(ctx context.Context, src Source) error {
	ctx, span := r.tracer.Start(ctx, tracing.SpanLoaderLoad,
		trace.WithAttributes(
			attribute.String(tracing.AttrSourcePath, src.Path),
			attribute.String(tracing.AttrSourceKind, string(src.Kind())),
		))
	defer span.End()

	if err := r.loader.Load(ctx, src, r.Define); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatRegistry, "Source load failed", err, "id", r.id, "path", src.Path)
		return fmt.Errorf("load source %s: %w", src.Path, err)
	}
	return nil
}

// ensurePopulated runs lazy population on the first access. The populated
// latch is only set on success.
func (r *Registry) ensurePopulated(ctx context.Context) error {
	r.mu.RLock()
	done := r.populated || len(r.source) == 0
	r.mu.RUnlock()
	if done {
		return nil
	}
	return r.Populate(ctx)
}

// Reset clears the store and the populated latch. Intended for test
// isolation; the next Lookup repopulates from scratch.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.names = nil
	r.enums = make(map[string]*enum.Enum)
	r.canon = make(map[string]string)
	r.populated = false
	r.mu.Unlock()

	r.broker.Publish(pubsub.ReloadedEvent, "")
	log.Debug(log.CatRegistry, "Registry reset", "id", r.id)
}

// Names returns the registered enum names in definition order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Enums returns the registered enums in definition order.
func (r *Registry) Enums() []*enum.Enum {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*enum.Enum, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.enums[name])
	}
	return out
}

// Len returns the number of registered enums.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Subscribe returns a channel of change events: created/updated/deleted with
// the enum name, or reloaded after population and reset. The subscription
// ends when ctx is cancelled.
func (r *Registry) Subscribe(ctx context.Context) <-chan pubsub.Event[string] {
	return r.broker.Subscribe(ctx)
}

// Close shuts down the event broker.
func (r *Registry) Close() {
	r.broker.Close()
}

// normalizeName reduces a raw name to its indifferent registry key.
func normalizeName(name any) string {
	return strings.ToLower(cast.ToString(name))
}
