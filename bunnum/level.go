// Package bunnum provides constants used across the bunyan-go ecosystem.
package bunnum

import (
	"github.com/pkg/errors"
)

type Level int32

const (
	// The numeric values match node-bunyan's level numbers:
	// https://github.com/trentm/node-bunyan#levels
	// There is no fatal level.
	TraceLevel Level = 10
	DebugLevel Level = 20
	InfoLevel  Level = 30
	WarnLevel  Level = 40
	ErrorLevel Level = 50
)

const (
	MinLevel = TraceLevel
	MaxLevel = ErrorLevel
)

// String returns the fixed uppercase label for the level, the form
// that appears in the "level" field of emitted records. The level
// enumeration is closed: a value outside it is a programming error
// and String panics rather than inventing a label.
func (level Level) String() string {
	switch level {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		panic(errors.Errorf("no label defined for level %d", int32(level)))
	}
}

// LevelValues lists the levels in increasing order of severity.
func LevelValues() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// LevelString converts a level label back to a Level. It accepts
// exactly the strings that String produces.
func LevelString(s string) (Level, error) {
	switch s {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return 0, errors.Errorf("'%s' does not belong to Level values", s)
	}
}
