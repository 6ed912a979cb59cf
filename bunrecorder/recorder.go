/*
Package bunrecorder provides an introspective bunbase.Layer. All spans
and events delivered to it are saved to memory and can be examined.
Memory is only freed when the recorder is garbage collected.
*/
package bunrecorder

import (
	"sync"

	"github.com/bunyango/bunyan-go/bunbase"
	"github.com/bunyango/bunyan-go/bunnum"
	"github.com/bunyango/bunyan-go/bunstore"

	"github.com/google/uuid"
	"github.com/muir/list"
)

var _ bunbase.Layer = &Logger{}

type Logger struct {
	lock   sync.Mutex
	id     string
	Spans  []*Span
	Events []*Event
}

// Span is the recorded view of one span. Fields holds the snapshot
// taken when the span closed; before that the live span is readable
// through Ref.
type Span struct {
	Name   string
	Target string
	Ref    bunbase.SpanRef
	Fields []bunstore.Field
	Done   bool
}

// Event is the recorded view of one event, with the message resolved
// the same way the JSON layer resolves it.
type Event struct {
	Level    bunnum.Level
	Target   string
	File     string
	Line     int
	Message  string
	Fields   []bunstore.Field
	SpanName string
}

func New() *Logger {
	return &Logger{
		id: "bunrecorder-" + uuid.New().String(),
	}
}

func (log *Logger) ID() string           { return log.id }
func (log *Logger) ReferencesKept() bool { return true }

func (log *Logger) SpanStart(span bunbase.SpanRef) {
	log.lock.Lock()
	defer log.lock.Unlock()
	log.Spans = append(log.Spans, &Span{
		Name:   span.Name(),
		Target: span.Target(),
		Ref:    span,
	})
}

func (log *Logger) SpanDone(span bunbase.SpanRef) {
	log.lock.Lock()
	defer log.lock.Unlock()
	for _, s := range log.Spans {
		if s.Ref == span && !s.Done {
			s.Done = true
			s.Fields = snapshot(span.Fields())
			return
		}
	}
}

func (log *Logger) Event(ev bunbase.Event, span bunbase.SpanRef) {
	e := &Event{
		Level:   ev.Level(),
		Target:  ev.Target(),
		File:    ev.File(),
		Line:    ev.Line(),
		Message: resolveMessage(ev),
		Fields:  snapshot(ev.Fields()),
	}
	if span != nil {
		e.SpanName = span.Name()
	}
	log.lock.Lock()
	defer log.lock.Unlock()
	log.Events = append(log.Events, e)
}

func resolveMessage(ev bunbase.Event) string {
	if v, ok := ev.Fields().Get("message"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ev.Target()
}

func snapshot(src bunbase.FieldSource) []bunstore.Field {
	if store, ok := src.(*bunstore.Store); ok {
		return store.Snapshot()
	}
	var fields []bunstore.Field
	src.Range(func(k string, v interface{}) bool {
		fields = append(fields, bunstore.Field{Key: k, Value: v})
		return true
	})
	return fields
}

// AllEvents copies the recorded event list so that callers can
// examine it while logging continues.
func (log *Logger) AllEvents() []*Event {
	log.lock.Lock()
	defer log.lock.Unlock()
	return list.Copy(log.Events)
}

// AllSpans copies the recorded span list.
func (log *Logger) AllSpans() []*Span {
	log.lock.Lock()
	defer log.lock.Unlock()
	return list.Copy(log.Spans)
}

func (log *Logger) EventCount() int {
	log.lock.Lock()
	defer log.lock.Unlock()
	return len(log.Events)
}

// FindEvents returns the recorded events matching pred.
func (log *Logger) FindEvents(pred func(*Event) bool) []*Event {
	var found []*Event
	for _, ev := range log.AllEvents() {
		if pred(ev) {
			found = append(found, ev)
		}
	}
	return found
}

// FieldValue looks up a recorded field by key.
func (ev *Event) FieldValue(key string) (interface{}, bool) {
	for _, field := range ev.Fields {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}
