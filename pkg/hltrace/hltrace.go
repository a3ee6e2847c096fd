// Package hltrace wraps the engine's mutating operations in OpenTelemetry
// spans, grounded on perf-analysis's pkg/telemetry package and on the
// original implementation's own pervasive use of the Rust `tracing` crate
// throughout its node/universe modules — this is that same concern's
// Go-ecosystem analogue.
package hltrace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kestrelsim/hashlife"
)

const instrumentationName = "github.com/kestrelsim/hashlife"

// Tracer returns the engine's named tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// TracedUniverse decorates a Universe with context-scoped spans around its
// mutating operations. The engine itself stays synchronous and
// context-free (§5: no timeouts, no cancellation) — this wrapper only adds
// observability at the call site, it never lets a span's context cancel
// the underlying call.
type TracedUniverse struct {
	*hashlife.Universe
}

// Wrap returns a TracedUniverse around u.
func Wrap(u *hashlife.Universe) *TracedUniverse {
	return &TracedUniverse{Universe: u}
}

func (t *TracedUniverse) attrs() []attribute.KeyValue {
	stats := t.Stats()
	return []attribute.KeyValue{
		attribute.Int64("hashlife.generation", int64(stats.Generation)),
		attribute.Int("hashlife.root_level", int(stats.RootLevel)),
		attribute.Int64("hashlife.population", int64(stats.Population)),
	}
}

// Evolve spans Universe.Evolve.
func (t *TracedUniverse) Evolve(ctx context.Context) {
	_, span := Tracer().Start(ctx, "hashlife.Evolve")
	defer span.End()

	t.Universe.Evolve()
	span.SetAttributes(t.attrs()...)
}

// SetCell spans Universe.SetCell.
func (t *TracedUniverse) SetCell(ctx context.Context, pos hashlife.Position, cell hashlife.Cell) {
	_, span := Tracer().Start(ctx, "hashlife.SetCell")
	defer span.End()

	t.Universe.SetCell(pos, cell)
	span.SetAttributes(t.attrs()...)
}

// Expand spans Universe.Expand.
func (t *TracedUniverse) Expand(ctx context.Context) {
	_, span := Tracer().Start(ctx, "hashlife.Expand")
	defer span.End()

	t.Universe.Expand()
	span.SetAttributes(t.attrs()...)
}
