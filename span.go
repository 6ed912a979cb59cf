package bunyan

import (
	"time"

	"github.com/bunyango/bunyan-go/bunbase"
	"github.com/bunyango/bunyan-go/bunstore"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"
)

// Span is a named scope of execution with its own accumulating field
// set. Fields recorded on a span appear on every event logged inside
// it.
type Span struct {
	id             uuid.UUID
	name           string
	target         string
	store          *bunstore.Store
	parent         *Span
	referencesKept bool
}

var _ bunbase.SpanRef = &Span{}

func (s *Span) ID() string                  { return s.id.String() }
func (s *Span) Name() string                { return s.name }
func (s *Span) Target() string              { return s.target }
func (s *Span) Parent() *Span               { return s.parent }
func (s *Span) Fields() bunbase.FieldSource { return s.store }

// String adds a string key/value field to the Span
func (s *Span) String(k string, v string) *Span {
	s.store.String(k, v)
	return s
}

// Int adds an int key/value field to the Span
func (s *Span) Int(k string, v int) *Span {
	s.store.Int(k, v)
	return s
}

// Int64 adds an int64 key/value field to the Span
func (s *Span) Int64(k string, v int64) *Span {
	s.store.Int64(k, v)
	return s
}

// Uint64 adds a uint64 key/value field to the Span
func (s *Span) Uint64(k string, v uint64) *Span {
	s.store.Uint64(k, v)
	return s
}

// Float64 adds a float64 key/value field to the Span
func (s *Span) Float64(k string, v float64) *Span {
	s.store.Float64(k, v)
	return s
}

// Bool adds a bool key/value field to the Span
func (s *Span) Bool(k string, v bool) *Span {
	s.store.Bool(k, v)
	return s
}

// Time adds a time.Time key/value field to the Span
func (s *Span) Time(k string, v time.Time) *Span {
	s.store.Time(k, v)
	return s
}

// Error adds an error key/value field to the Span
func (s *Span) Error(k string, v error) *Span {
	s.store.Error(k, v)
	return s
}

// AnyImmutable adds a key/value field to the Span. The provided
// value must be immutable.
func (s *Span) AnyImmutable(k string, v interface{}) *Span {
	s.store.Any(k, v)
	return s
}

// Any adds a key/value field to the Span. The value may be copied
// using github.com/mohae/deepcopy if any of the layers hold values
// instead of immediately serializing them.
func (s *Span) Any(k string, v interface{}) *Span {
	if s.referencesKept {
		v = deepcopy.Copy(v)
	}
	s.store.Any(k, v)
	return s
}
