// Package bunbytes connects layers that serialize to bytes with the
// sinks those bytes are written to.
package bunbytes

import (
	"time"

	"github.com/bunyango/bunyan-go/bunnum"
)

// Line is one complete serialized log record, including its trailing
// newline.
type Line interface {
	AsBytes() []byte
	GetLevel() bunnum.Level
	GetTime() time.Time
	ReclaimMemory()
}

// BytesWriter delivers serialized records to their destination. Line
// must put the record's bytes into the output contiguously: records
// arriving from concurrent callers may interleave line-by-line but
// never byte-by-byte.
type BytesWriter interface {
	Line(Line) error
	Buffered() bool
	Flush() error
	Close() // no point in returning an error
}
