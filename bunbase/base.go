// Package bunbase defines the contract between the front half of the
// pipeline (the part that captures spans, events, and their fields)
// and the bottom half (the part that renders them somewhere). Any
// instrumentation pipeline that can produce Events and SpanRefs can
// drive a Layer; the layers themselves stay pipeline-agnostic.
package bunbase

import (
	"github.com/bunyango/bunyan-go/bunnum"
)

// Layer is the bottom half of a logger -- the part that actually
// outputs data somewhere. There can be many Layer implementations.
type Layer interface {
	ID() string

	// ReferencesKept should return true if values handed to Event()
	// or read from field stores are retained after the call returns.
	// When any registered layer keeps references, the frontend copies
	// mutable values before recording them.
	ReferencesKept() bool

	// SpanStart and SpanDone bracket the lifetime of a span. The
	// SpanRef is a borrowed view: layers that do not keep references
	// must not retain it past the call.
	SpanStart(SpanRef)
	SpanDone(SpanRef)

	// Event delivers a single event. The span is nil when no span is
	// active. Layers can expect concurrent calls from multiple
	// goroutines.
	Event(Event, SpanRef)
}

// Event is a point-in-time occurrence together with its metadata and
// locally recorded fields.
type Event interface {
	Level() bunnum.Level
	Target() string
	// File and Line identify where the event was triggered. File
	// returns "" and Line returns 0 when the location is unknown.
	File() string
	Line() int
	Fields() FieldSource
}

// SpanRef is a read-only view of an active span. It is owned by the
// field-storage side of the pipeline; layers only read from it.
type SpanRef interface {
	Name() string
	Target() string
	Fields() FieldSource
}

// FieldSource is a read-only view of an ordered set of key/value
// fields. Values are limited to what encoding/json can represent.
type FieldSource interface {
	Get(key string) (interface{}, bool)
	// Range calls f for each field in insertion order until f
	// returns false.
	Range(f func(key string, value interface{}) bool)
}
