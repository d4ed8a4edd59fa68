// Package ioutil provides I/O helpers for renderers.
package ioutil

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer, counts written bytes and remembers the first error.
// Once an error occurred all subsequent writes are no-ops.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// WriteStrings writes strings one by one and tracks bytes written.
func (cw *CountingWriter) WriteStrings(ss ...string) *CountingWriter {
	for _, s := range ss {
		if cw.err != nil {
			return cw
		}
		n, err := io.WriteString(cw.w, s)
		cw.num += n
		if err != nil {
			cw.err = errtrace.Wrap(err)
		}
	}
	return cw
}

// WriteByte writes a single byte and tracks bytes written.
func (cw *CountingWriter) WriteByte(c byte) error {
	if cw.err != nil {
		return errtrace.Wrap(cw.err)
	}
	n, err := cw.w.Write([]byte{c})
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return errtrace.Wrap(cw.err)
}

// Call executes a RenderTo-style function and tracks bytes written.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err != nil {
		return cw
	}
	n, err := fn(cw.w)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return cw
}

// Result returns the total number of bytes written and any error encountered.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
