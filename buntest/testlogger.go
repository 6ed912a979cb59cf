// Package buntest binds the pipeline to a testing.T: records render
// through bunjson into the test log, and a bunrecorder keeps them
// available for assertions.
package buntest

import (
	"fmt"

	"github.com/bunyango/bunyan-go"
	"github.com/bunyango/bunyan-go/bunbase"
	"github.com/bunyango/bunyan-go/bunbytes"
	"github.com/bunyango/bunyan-go/bunjson"
	"github.com/bunyango/bunyan-go/bunrecorder"

	"github.com/google/uuid"
)

type testingT interface {
	Log(...interface{})
	Name() string
}

// Logger is a bunbase.Layer
type Logger struct {
	t        testingT
	recorder *bunrecorder.Logger
	json     *bunjson.Logger
	id       string
}

var _ bunbase.Layer = &Logger{}

type tPassthrough struct{ t testingT }

func (t tPassthrough) Write(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	if b[len(b)-1] == '\n' {
		t.t.Log(string(b[0 : len(b)-1]))
	} else {
		t.t.Log(string(b))
	}
	return len(b), nil
}

func New(t testingT) *Logger {
	return &Logger{
		t:        t,
		recorder: bunrecorder.New(),
		json: bunjson.New(
			bunbytes.WriteToIOWriter(tPassthrough{t}),
			bunjson.WithDiagnostic(func(format string, args ...interface{}) {
				t.Log(fmt.Sprintf(format, args...))
			}),
		),
		id: t.Name() + "-buntest-" + uuid.New().String(),
	}
}

func (log *Logger) Recorder() *bunrecorder.Logger { return log.recorder }

// Log returns a frontend bound to this layer, targeting the test's
// name unless a modifier overrides it.
func (log *Logger) Log(mods ...bunyan.SeedModifier) *bunyan.Log {
	mods = append([]bunyan.SeedModifier{
		bunyan.WithTarget(log.t.Name()),
		bunyan.WithLayers(log),
	}, mods...)
	return bunyan.NewSeed(mods...).Log()
}

// ID is a required method for bunbase.Layer
func (log *Logger) ID() string { return log.id }

// ReferencesKept is a required method for bunbase.Layer
func (log *Logger) ReferencesKept() bool { return true }

// SpanStart is a required method for bunbase.Layer
func (log *Logger) SpanStart(span bunbase.SpanRef) {
	log.recorder.SpanStart(span)
	log.json.SpanStart(span)
}

// SpanDone is a required method for bunbase.Layer
func (log *Logger) SpanDone(span bunbase.SpanRef) {
	log.recorder.SpanDone(span)
	log.json.SpanDone(span)
}

// Event is a required method for bunbase.Layer
func (log *Logger) Event(ev bunbase.Event, span bunbase.SpanRef) {
	log.recorder.Event(ev, span)
	log.json.Event(ev, span)
}
