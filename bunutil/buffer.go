package bunutil

import (
	"strings"
	"sync"
)

// Buffer is an io.Writer that accumulates everything written to it.
// It is safe for concurrent use so that tests can share one Buffer
// between goroutines that log at the same time.
type Buffer struct {
	mu sync.Mutex
	b  []byte
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.b = append(b.b, p...)
	return len(p), nil
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.b)
}

func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.b = b.b[:0]
}

// Lines returns the complete lines written so far, without their
// trailing newlines.
func (b *Buffer) Lines() []string {
	s := b.String()
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
