package bunyan

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bunyango/bunyan-go/bunbase"
	"github.com/bunyango/bunyan-go/bunnum"
	"github.com/bunyango/bunyan-go/bunstore"

	"github.com/mohae/deepcopy"
)

// Line is one event being assembled. Add fields, then finish it with
// Msg or Msgf. A Line below the severity gate silently discards
// everything.
type Line struct {
	log   *Log
	level bunnum.Level
	store *bunstore.Store
	file  string
	line  int
	skip  bool
}

func (line *Line) captureCaller(skip int) {
	if _, file, ln, ok := runtime.Caller(skip + 1); ok {
		line.file = file
		line.line = ln
	}
}

// String adds a string key/value field to the Line
func (line *Line) String(k string, v string) *Line {
	if line.skip {
		return line
	}
	line.store.String(k, v)
	return line
}

// Int adds an int key/value field to the Line
func (line *Line) Int(k string, v int) *Line {
	if line.skip {
		return line
	}
	line.store.Int(k, v)
	return line
}

// Int64 adds an int64 key/value field to the Line
func (line *Line) Int64(k string, v int64) *Line {
	if line.skip {
		return line
	}
	line.store.Int64(k, v)
	return line
}

// Uint64 adds a uint64 key/value field to the Line
func (line *Line) Uint64(k string, v uint64) *Line {
	if line.skip {
		return line
	}
	line.store.Uint64(k, v)
	return line
}

// Float64 adds a float64 key/value field to the Line
func (line *Line) Float64(k string, v float64) *Line {
	if line.skip {
		return line
	}
	line.store.Float64(k, v)
	return line
}

// Bool adds a bool key/value field to the Line
func (line *Line) Bool(k string, v bool) *Line {
	if line.skip {
		return line
	}
	line.store.Bool(k, v)
	return line
}

// Time adds a time.Time key/value field to the Line
func (line *Line) Time(k string, v time.Time) *Line {
	if line.skip {
		return line
	}
	line.store.Time(k, v)
	return line
}

// Error adds an error key/value field to the Line
func (line *Line) Error(k string, v error) *Line {
	if line.skip {
		return line
	}
	line.store.Error(k, v)
	return line
}

// AnyImmutable adds a key/value field to the Line. The provided
// value must be immutable.
func (line *Line) AnyImmutable(k string, v interface{}) *Line {
	if line.skip {
		return line
	}
	line.store.Any(k, v)
	return line
}

// Any adds a key/value field to the Line. The value may be copied
// using github.com/mohae/deepcopy if any of the layers hold values
// instead of immediately serializing them.
func (line *Line) Any(k string, v interface{}) *Line {
	if line.skip {
		return line
	}
	if line.log.referencesKept {
		v = deepcopy.Copy(v)
	}
	line.store.Any(k, v)
	return line
}

// Msg completes the Line and delivers it to every layer. m becomes
// the event's "message" field.
func (line *Line) Msg(m string) {
	if line.skip {
		return
	}
	line.store.String("message", m)
	line.send()
}

// Msgf is Msg with fmt.Sprintf formatting.
func (line *Line) Msgf(format string, args ...interface{}) {
	if line.skip {
		return
	}
	line.Msg(fmt.Sprintf(format, args...))
}

// Send completes the Line without a message: the record's msg falls
// back to the target.
func (line *Line) Send() {
	if line.skip {
		return
	}
	line.send()
}

func (line *Line) send() {
	ev := eventData{line: line}
	var span bunbase.SpanRef
	if line.log.span != nil {
		span = line.log.span
	}
	for _, layer := range line.log.seed.layers {
		layer.Event(ev, span)
	}
}

type eventData struct {
	line *Line
}

var _ bunbase.Event = eventData{}

func (ev eventData) Level() bunnum.Level         { return ev.line.level }
func (ev eventData) Target() string              { return ev.line.log.seed.target }
func (ev eventData) File() string                { return ev.line.file }
func (ev eventData) Line() int                   { return ev.line.line }
func (ev eventData) Fields() bunbase.FieldSource { return ev.line.store }
