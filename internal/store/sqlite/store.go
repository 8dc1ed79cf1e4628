package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/nacre/internal/enum"
	"github.com/zjrosen/nacre/internal/log"
	"github.com/zjrosen/nacre/internal/tracing"
)

// ErrEnumNotFound is returned when loading a name with no stored definition.
var ErrEnumNotFound = errors.New("enum not found in store")

// Store reads and writes enum definitions. Definition order survives a
// round-trip: enums keep their save position, members their insertion order.
type Store struct {
	db     *sql.DB
	tracer trace.Tracer
}

// NewStore wraps an open definition database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, tracer: noop.NewTracerProvider().Tracer("noop")}
}

// NewStoreWithTracer wraps an open definition database with span emission.
func NewStoreWithTracer(db *sql.DB, tracer trace.Tracer) *Store {
	return &Store{db: db, tracer: tracer}
}

// Save upserts an enum's full definition. An existing enum keeps its
// position; its members are replaced wholesale.
func (s *Store) Save(ctx context.Context, e *enum.Enum) error {
	ctx, span := s.tracer.Start(ctx, tracing.SpanStoreSave,
		trace.WithAttributes(
			attribute.String(tracing.AttrEnumName, e.Name()),
			attribute.Int(tracing.AttrValueCount, e.Len()),
		))
	defer span.End()

	err := s.save(ctx, e)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatStore, "Save failed", err, "enum", e.Name())
	}
	return err
}

func (s *Store) save(ctx context.Context, e *enum.Enum) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var position int
	err = tx.QueryRowContext(ctx, `SELECT position FROM enums WHERE name = ?`, e.Name()).Scan(&position)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM enums`).Scan(&position)
		if err != nil {
			return fmt.Errorf("next position: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO enums (name, position) VALUES (?, ?)`, e.Name(), position); err != nil {
			return fmt.Errorf("insert enum %q: %w", e.Name(), err)
		}
	case err != nil:
		return fmt.Errorf("find enum %q: %w", e.Name(), err)
	default:
		if _, err := tx.ExecContext(ctx, `DELETE FROM enum_values WHERE enum_name = ?`, e.Name()); err != nil {
			return fmt.Errorf("clear values of %q: %w", e.Name(), err)
		}
	}

	for i, v := range e.Values() {
		model, err := toValueModel(v)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO enum_values (enum_name, position, value, formats) VALUES (?, ?, ?, ?)`,
			e.Name(), i, model.Value, model.Formats,
		)
		if err != nil {
			return fmt.Errorf("insert value %q of %q: %w", model.Value, e.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	log.Debug(log.CatStore, "Saved enum", "name", e.Name(), "values", e.Len())
	return nil
}

// Load rebuilds a single stored enum.
func (s *Store) Load(ctx context.Context, name string) (*enum.Enum, error) {
	var stored string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM enums WHERE name = ?`, name).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrEnumNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("find enum %q: %w", name, err)
	}
	return s.loadValues(ctx, stored)
}

// LoadAll rebuilds every stored enum in save order.
func (s *Store) LoadAll(ctx context.Context) ([]*enum.Enum, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanStoreLoadAll)
	defer span.End()

	rows, err := s.db.QueryContext(ctx, `SELECT name FROM enums ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list enums: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan enum name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list enums: %w", err)
	}

	enums := make([]*enum.Enum, 0, len(names))
	for _, name := range names {
		e, err := s.loadValues(ctx, name)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		enums = append(enums, e)
	}
	span.SetAttributes(attribute.Int(tracing.AttrEnumCount, len(enums)))
	return enums, nil
}

func (s *Store) loadValues(ctx context.Context, name string) (*enum.Enum, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT value, formats FROM enum_values WHERE enum_name = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("load values of %q: %w", name, err)
	}
	defer rows.Close()

	var raws []any
	for rows.Next() {
		var model valueModel
		if err := rows.Scan(&model.Value, &model.Formats); err != nil {
			return nil, fmt.Errorf("scan value of %q: %w", name, err)
		}
		raw, err := model.rawDefinition()
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load values of %q: %w", name, err)
	}

	e, err := enum.New(name, raws...)
	if err != nil {
		return nil, fmt.Errorf("rebuild enum %q: %w", name, err)
	}
	return e, nil
}

// Delete removes a stored enum and its members. A miss is a no-op.
func (s *Store) Delete(ctx context.Context, name string) error {
	// ON DELETE CASCADE clears enum_values.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM enums WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete enum %q: %w", name, err)
	}
	return nil
}

// Names lists the stored enum names in save order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM enums ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list enums: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan enum name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
