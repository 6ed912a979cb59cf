// Package bunotel correlates Bunyan log lines with OpenTelemetry
// traces by stamping the active span context's identifiers onto a
// span's field store. The direction is one-way: this package reads
// OTEL state, it never creates or mutates OTEL spans.
package bunotel

import (
	"context"

	"github.com/bunyango/bunyan-go/bunstore"

	"go.opentelemetry.io/otel/trace"
)

// SpanFields records sc's identifiers onto store. Invalid span
// contexts record nothing.
func SpanFields(store *bunstore.Store, sc trace.SpanContext) {
	if !sc.IsValid() {
		return
	}
	store.String("trace.id", sc.TraceID().String())
	store.String("span.id", sc.SpanID().String())
	if sc.IsSampled() {
		store.Bool("trace.sampled", true)
	}
}

// ContextFields is SpanFields for the span context carried by ctx,
// if any.
func ContextFields(store *bunstore.Store, ctx context.Context) {
	SpanFields(store, trace.SpanContextFromContext(ctx))
}
