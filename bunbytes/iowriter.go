package bunbytes

import (
	"io"
	"sync"
)

var _ BytesWriter = IOWriter{}

// IOWriter adapts an io.Writer whose Write is already atomic (an
// *os.File, a net.Conn) into a BytesWriter. Each record reaches the
// underlying writer in a single Write call.
type IOWriter struct {
	io.Writer
}

func WriteToIOWriter(w io.Writer) BytesWriter {
	return IOWriter{
		Writer: w,
	}
}

func (iow IOWriter) Buffered() bool { return false }
func (iow IOWriter) Flush() error   { return nil }
func (iow IOWriter) Line(line Line) error {
	_, err := iow.Write(line.AsBytes())
	line.ReclaimMemory()
	return err
}
func (iow IOWriter) Close() {
	if wc, ok := iow.Writer.(io.WriteCloser); ok {
		_ = wc.Close()
	}
}

var _ BytesWriter = &LockedWriter{}

// LockedWriter adapts an io.Writer whose Write is not atomic (a
// bytes.Buffer, a bufio.Writer) into a BytesWriter by holding a mutex
// across each record's write.
type LockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func WriteToLockedWriter(w io.Writer) BytesWriter {
	return &LockedWriter{w: w}
}

func (lw *LockedWriter) Buffered() bool { return false }
func (lw *LockedWriter) Flush() error   { return nil }
func (lw *LockedWriter) Line(line Line) error {
	lw.mu.Lock()
	_, err := lw.w.Write(line.AsBytes())
	lw.mu.Unlock()
	line.ReclaimMemory()
	return err
}
func (lw *LockedWriter) Close() {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if wc, ok := lw.w.(io.WriteCloser); ok {
		_ = wc.Close()
	}
}
