package bunyan

import (
	"github.com/bunyango/bunyan-go/bunbase"
	"github.com/bunyango/bunyan-go/bunnum"
	"github.com/bunyango/bunyan-go/bunstore"

	"github.com/google/uuid"
)

// Log captures events and delivers them to the seed's layers. A Log
// is cheap; opening a span makes a new one. Logs sharing a seed share
// their severity gate.
type Log struct {
	seed           Seed
	span           *Span
	shared         *shared
	referencesKept bool
}

type shared struct {
	minLevel bunnum.Level
}

func layersKeepReferences(layers []bunbase.Layer) bool {
	for _, layer := range layers {
		if layer.ReferencesKept() {
			return true
		}
	}
	return false
}

func (seed Seed) Log() *Log {
	shared := &shared{}
	shared.minLevel.AtomicStore(seed.minLevel)
	return &Log{
		seed:           seed.Copy(),
		shared:         shared,
		referencesKept: layersKeepReferences(seed.layers),
	}
}

// SetMinLevel adjusts the severity gate for this Log and every Log
// derived from the same seed.
func (log *Log) SetMinLevel(level bunnum.Level) {
	log.shared.minLevel.AtomicStore(level)
}

func (log *Log) Target() string             { return log.seed.target }
func (log *Log) Source() bunbase.SourceInfo { return log.seed.source }

// CurrentSpan returns the innermost active span, or nil at top level.
func (log *Log) CurrentSpan() *Span { return log.span }

// Span opens a span and returns a Log whose events carry it. The
// modifiers apply only to the new Log.
func (log *Log) Span(name string, mods ...SeedModifier) *Log {
	seed := log.seed.Copy().applyMods(mods)
	// mods can change the layer set, so the deepcopy gate is
	// re-derived rather than inherited
	referencesKept := layersKeepReferences(seed.layers)
	span := &Span{
		id:             uuid.New(),
		name:           name,
		target:         seed.target,
		store:          bunstore.New(),
		parent:         log.span,
		referencesKept: referencesKept,
	}
	n := &Log{
		seed:           seed,
		span:           span,
		shared:         log.shared,
		referencesKept: referencesKept,
	}
	for _, layer := range seed.layers {
		layer.SpanStart(span)
	}
	return n
}

// Done closes the current span. Events logged through this Log after
// Done still reference the span; don't do that.
func (log *Log) Done() {
	if log.span == nil {
		return
	}
	for _, layer := range log.seed.layers {
		layer.SpanDone(log.span)
	}
}

func (log *Log) Trace() *Line { return log.logLine(bunnum.TraceLevel) }
func (log *Log) Debug() *Line { return log.logLine(bunnum.DebugLevel) }
func (log *Log) Info() *Line  { return log.logLine(bunnum.InfoLevel) }
func (log *Log) Warn() *Line  { return log.logLine(bunnum.WarnLevel) }
func (log *Log) Error() *Line { return log.logLine(bunnum.ErrorLevel) }

func (log *Log) logLine(level bunnum.Level) *Line {
	if level < log.shared.minLevel.AtomicLoad() {
		return &Line{skip: true}
	}
	line := &Line{
		log:   log,
		level: level,
		store: bunstore.New(),
	}
	if log.seed.withCaller {
		line.captureCaller(2)
	}
	return line
}
