package bunjson

import (
	"encoding/json"
	"time"

	"github.com/bunyango/bunyan-go/bunbase"
	"github.com/bunyango/bunyan-go/bunbytes"
	"github.com/bunyango/bunyan-go/bunnum"
	"github.com/bunyango/bunyan-go/bunutil"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	maxBufferToKeep = 1024 * 10
	minBuffer       = 1024
)

// messageKey is the event field the record's msg is resolved from.
const messageKey = "message"

// The core record fields. Caller-supplied fields with these names are
// dropped rather than allowed to shadow the core values.
func isReserved(key string) bool {
	switch key {
	case "msg", "level", "time":
		return true
	}
	return false
}

func New(w bunbytes.BytesWriter, opts ...Option) *Logger {
	logger := &Logger{
		writer:        w,
		id:            uuid.New(),
		clock:         time.Now,
		timeFormatter: defaultTimeFormatter,
		diag:          func(string, ...interface{}) {},
		errorFunc:     func(error) {},
	}
	for _, f := range opts {
		f(logger)
	}
	return logger
}

func defaultTimeFormatter(b []byte, t time.Time) []byte {
	b = append(b, '"')
	b = t.UTC().AppendFormat(b, time.RFC3339)
	b = append(b, '"')
	return b
}

func (logger *Logger) ID() string           { return logger.id.String() }
func (logger *Logger) Buffered() bool       { return logger.writer.Buffered() }
func (logger *Logger) ReferencesKept() bool { return false }
func (logger *Logger) Flush() error         { return logger.writer.Flush() }
func (logger *Logger) Close()               { logger.writer.Close() }

// Event renders one event as one JSON line and hands it to the
// writer in a single call. Any failure along the way drops the
// record: logging must never disrupt the instrumented application.
func (logger *Logger) Event(ev bunbase.Event, span bunbase.SpanRef) {
	l := logger.line(ev.Level())
	l.AppendByte('{') // }
	l.addCoreFields(resolveMessage(ev))
	if span != nil {
		l.AddSafeKey("event")
		l.AddString(span.Name())
	}
	l.AddSafeKey("target")
	l.AddString(ev.Target())
	l.AddSafeKey("line")
	if n := ev.Line(); n > 0 {
		l.AddInt64(int64(n))
	} else {
		l.AddNull()
	}
	l.AddSafeKey("file")
	if f := ev.File(); f != "" {
		l.AddString(f)
	} else {
		l.AddNull()
	}
	if logger.name != "" {
		l.AddSafeKey("name")
		l.AddString(logger.name)
	}
	l.addFields(ev.Fields(), true)
	if span != nil {
		l.addFields(span.Fields(), false)
	}
	l.emit()
}

func (logger *Logger) SpanStart(span bunbase.SpanRef) {
	if logger.spanEvents {
		logger.spanEvent(span, "START")
	}
}

func (logger *Logger) SpanDone(span bunbase.SpanRef) {
	if logger.spanEvents {
		logger.spanEvent(span, "END")
	}
}

// spanEvent emits a lifecycle record shaped like an event record so
// that one line format covers the whole stream.
func (logger *Logger) spanEvent(span bunbase.SpanRef, what string) {
	l := logger.line(bunnum.InfoLevel)
	l.AppendByte('{') // }
	l.addCoreFields("[" + span.Name() + " - " + what + "]")
	l.AddSafeKey("event")
	l.AddString(span.Name())
	l.AddSafeKey("target")
	l.AddString(span.Target())
	l.AppendString(`,"line":null,"file":null`)
	if logger.name != "" {
		l.AddSafeKey("name")
		l.AddString(logger.name)
	}
	l.addFields(span.Fields(), false)
	l.emit()
}

// resolveMessage extracts the event's "message" field when it holds a
// string and falls back to the event's target otherwise.
func resolveMessage(ev bunbase.Event) string {
	if v, ok := ev.Fields().Get(messageKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ev.Target()
}

func (logger *Logger) line(level bunnum.Level) *line {
	var l *line
	if lRaw := logger.linePool.Get(); lRaw != nil {
		l = lRaw.(*line)
		l.Reset()
		l.encodeErr = nil
	} else {
		l = &line{
			logger: logger,
			JBuilder: bunutil.JBuilder{
				B:        make([]byte, 0, minBuffer),
				FastKeys: logger.fastKeys,
			},
		}
		l.encoder = json.NewEncoder(&l.JBuilder)
		l.encoder.SetEscapeHTML(false)
	}
	l.level = level
	l.timestamp = logger.clock()
	return l
}

func (l *line) addCoreFields(msg string) {
	l.AddSafeKey("msg")
	l.AddString(msg)
	l.AddSafeKey("level")
	l.AddSafeString(l.level.String())
	l.AddSafeKey("time")
	l.B = l.logger.timeFormatter(l.B, l.timestamp)
}

func (l *line) addFields(src bunbase.FieldSource, eventLocal bool) {
	if l.encodeErr != nil {
		return
	}
	src.Range(func(k string, v interface{}) bool {
		if eventLocal && k == messageKey {
			return true
		}
		if isReserved(k) {
			l.logger.diag("%s is a reserved field in the bunyan log format, dropping it", k)
			return true
		}
		l.AddKey(k)
		l.addValue(v)
		return l.encodeErr == nil
	})
}

func (l *line) addValue(v interface{}) {
	switch v := v.(type) {
	case nil:
		l.AddNull()
	case string:
		l.AddString(v)
	case bool:
		l.AddBool(v)
	case int:
		l.AddInt64(int64(v))
	case int8:
		l.AddInt64(int64(v))
	case int16:
		l.AddInt64(int64(v))
	case int32:
		l.AddInt64(int64(v))
	case int64:
		l.AddInt64(v)
	case uint:
		l.AddUint64(uint64(v))
	case uint8:
		l.AddUint64(uint64(v))
	case uint16:
		l.AddUint64(uint64(v))
	case uint32:
		l.AddUint64(uint64(v))
	case uint64:
		l.AddUint64(v)
	case float32:
		l.addFloat(float64(v))
	case float64:
		l.addFloat(v)
	case time.Time:
		l.B = l.logger.timeFormatter(l.B, v)
	case time.Duration:
		l.AddSafeString(v.String())
	case error:
		l.AddString(v.Error())
	case json.RawMessage:
		l.AppendBytes(v)
	default:
		l.addAny(v)
	}
}

// NaN and the infinities would produce a line that is not JSON, so
// they are a serialization error and the record is dropped.
func (l *line) addFloat(f float64) {
	if !l.AddFloat64(f) {
		l.encodeErr = errors.Errorf("float value %v cannot be represented in JSON", f)
	}
}

func (l *line) addAny(v interface{}) {
	before := len(l.B)
	err := l.encoder.Encode(v)
	if err != nil {
		l.B = l.B[:before]
		l.encodeErr = err
		return
	}
	// remove \n added by json.Encoder.Encode.  So helpful!
	if l.B[len(l.B)-1] == '\n' {
		l.B = l.B[:len(l.B)-1]
	}
}

func (l *line) emit() {
	if l.encodeErr != nil {
		l.logger.errorFunc(errors.Wrap(l.encodeErr, "serialize log record"))
		l.ReclaimMemory()
		return
	}
	// {
	l.AppendBytes([]byte{'}', '\n'})
	if err := l.logger.writer.Line(l); err != nil {
		l.logger.errorFunc(errors.Wrap(err, "write log record"))
	}
}

func (l *line) AsBytes() []byte        { return l.B }
func (l *line) GetLevel() bunnum.Level { return l.level }
func (l *line) GetTime() time.Time     { return l.timestamp }

func (l *line) ReclaimMemory() {
	if len(l.B) > maxBufferToKeep {
		return
	}
	l.logger.linePool.Put(l)
}
