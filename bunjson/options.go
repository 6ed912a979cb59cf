package bunjson

import (
	"time"
)

// WithTimeFormatter replaces the default RFC3339-in-UTC rendering of
// the "time" field.
func WithTimeFormatter(f TimeFormatter) Option {
	return func(logger *Logger) {
		logger.timeFormatter = f
	}
}

// WithClock replaces the wall clock used for the "time" field. Tests
// use this to get deterministic output.
func WithClock(clock func() time.Time) Option {
	return func(logger *Logger) {
		logger.clock = clock
	}
}

// WithDiagnostic routes notices about dropped fields to the host
// program's own logging. The function must not log back through this
// layer: that would recurse. The default discards notices.
func WithDiagnostic(diag func(format string, args ...interface{})) Option {
	return func(logger *Logger) {
		logger.diag = diag
	}
}

// WithErrorReporter routes serialization and sink errors somewhere
// useful. Records that hit an error are dropped either way; the
// default discards the errors too.
func WithErrorReporter(reporter func(error)) Option {
	return func(logger *Logger) {
		logger.errorFunc = reporter
	}
}

// WithName adds a "name" field to every record, following the Bunyan
// convention of naming the service that produced the log.
func WithName(name string) Option {
	return func(logger *Logger) {
		logger.name = name
	}
}

// WithSpanEvents also emits a record when a span starts and when it
// closes, with messages like "[request - START]".
func WithSpanEvents(b bool) Option {
	return func(logger *Logger) {
		logger.spanEvents = b
	}
}

// WithFastKeys skips escape-checking of field keys. Only safe when
// every key is known to contain no characters that JSON strings
// escape.
func WithFastKeys(b bool) Option {
	return func(logger *Logger) {
		logger.fastKeys = b
	}
}
