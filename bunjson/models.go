package bunjson

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bunyango/bunyan-go/bunbase"
	"github.com/bunyango/bunyan-go/bunbytes"
	"github.com/bunyango/bunyan-go/bunnum"
	"github.com/bunyango/bunyan-go/bunutil"

	"github.com/google/uuid"
)

var _ bunbase.Layer = &Logger{}
var _ bunbytes.Line = &line{}

type Option func(*Logger)

// TimeFormatter is the function signature for custom time formatters
// if anything other than RFC3339 in UTC is desired. The value must
// be appended to the byte slice (which must be returned) and must
// form a complete JSON value, quotes included.
//
// For example:
//
//	func timeFormatter(b []byte, t time.Time) []byte {
//		b = append(b, '"')
//		b = t.UTC().AppendFormat(b, time.RFC3339Nano)
//		b = append(b, '"')
//		return b
//	}
//
// The slice may not be safely accessed outside of the duration of the
// call. The only acceptable operation on the slice is to append.
type TimeFormatter func(b []byte, t time.Time) []byte

type Logger struct {
	writer        bunbytes.BytesWriter
	id            uuid.UUID
	name          string
	fastKeys      bool
	spanEvents    bool
	clock         func() time.Time
	timeFormatter TimeFormatter
	diag          func(format string, args ...interface{})
	errorFunc     func(error)
	linePool      sync.Pool // filled with *line
}

type line struct {
	bunutil.JBuilder
	logger    *Logger
	encoder   *json.Encoder
	level     bunnum.Level
	timestamp time.Time
	encodeErr error
}
