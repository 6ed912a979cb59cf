package bunutil

import (
	"io"
	"math"
	"strconv"
)

// JBuilder accumulates a JSON document as raw bytes. It does no
// structural validation: callers are responsible for balancing the
// braces they open.
type JBuilder struct {
	B        []byte
	FastKeys bool
}

var _ io.Writer = &JBuilder{}

// Comma adds a comma if a comma is needed based
// on what's already in the JBuilder: if the previous
// character is '{', '[', or ':' then it does not add a
// comma.  Otherwise it does.
func (b *JBuilder) Comma() {
	if len(b.B) == 0 {
		return
	}
	switch b.B[len(b.B)-1] {
	case '[', '{', ':':
		return
	}
	b.B = append(b.B, ',')
}

func (b *JBuilder) AppendByte(v byte) {
	b.B = append(b.B, v)
}

// AppendBytes adds the bytes without wrapping or checking
func (b *JBuilder) AppendBytes(v []byte) {
	b.B = append(b.B, v...)
}

// AppendString adds the bytes without wrapping or checking
func (b *JBuilder) AppendString(v string) {
	b.B = append(b.B, v...)
}

// Write allows JBuilder to be an io.Writer
func (b *JBuilder) Write(v []byte) (int, error) {
	b.B = append(b.B, v...)
	return len(v), nil
}

func (b *JBuilder) Reset() {
	b.B = b.B[:0]
}

// AddSafeString adds a JSON-encoded string that is known to not need escaping
func (b *JBuilder) AddSafeString(v string) {
	b.B = append(b.B, '"')
	b.AppendString(v)
	b.B = append(b.B, '"')
}

// AddString adds a JSON-encoded string
func (b *JBuilder) AddString(v string) {
	b.B = append(b.B, '"')
	b.AddStringBody(v)
	b.B = append(b.B, '"')
}

func (b *JBuilder) AddUint64(i uint64) {
	b.B = strconv.AppendUint(b.B, i, 10)
}

// AddFloat64 appends the number and reports whether it did. NaN and
// the infinities have no JSON representation: nothing is appended and
// the caller decides what a non-value means for its document.
func (b *JBuilder) AddFloat64(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	b.B = strconv.AppendFloat(b.B, f, 'f', -1, 64)
	return true
}

func (b *JBuilder) AddInt64(i int64) {
	b.B = strconv.AppendInt(b.B, i, 10)
}

func (b *JBuilder) AddBool(v bool) {
	b.B = strconv.AppendBool(b.B, v)
}

func (b *JBuilder) AddNull() {
	b.B = append(b.B, 'n', 'u', 'l', 'l')
}

// AddKey calls Comma() and then adds "k":
// It skips checking if the key needs escape if FastKeys
// is true.
func (b *JBuilder) AddKey(v string) {
	if b.FastKeys {
		b.AddSafeKey(v)
	} else {
		b.Comma()
		b.AddString(v)
		b.B = append(b.B, ':')
	}
}

// AddSafeKey is AddKey for keys that are known to not need escaping.
func (b *JBuilder) AddSafeKey(v string) {
	b.Comma()
	b.B = append(b.B, '"')
	b.B = append(b.B, v...)
	b.B = append(b.B, '"', ':')
}
