package ioutil_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ghettovoice/mailto/internal/ioutil"
)

var errWriteFailed = errors.New("write failed")

type errorWriter struct {
	failAfter int
	written   int
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	if ew.written >= ew.failAfter {
		return 0, errWriteFailed
	}
	n = len(p)
	if ew.written+n > ew.failAfter {
		n = ew.failAfter - ew.written
	}
	ew.written += n
	if n < len(p) {
		return n, errWriteFailed
	}
	return n, nil
}

func TestCountingWriter_WriteStrings(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)

	num, err := cw.WriteStrings("mailto:", "?").WriteStrings("to=a%40b.com", "&").Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if want := len("mailto:?to=a%40b.com&"); num != want {
		t.Errorf("cw.Result() num = %d, want %d", num, want)
	}
	if got, want := buf.String(), "mailto:?to=a%40b.com&"; got != want {
		t.Errorf("buf.String() = %q, want %q", got, want)
	}
}

func TestCountingWriter_WriteByte(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)
	if err := cw.WriteByte('&'); err != nil {
		t.Fatalf("cw.WriteByte('&') error = %v, want nil", err)
	}
	if num, _ := cw.Result(); num != 1 {
		t.Errorf("cw.Result() num = %d, want 1", num)
	}
}

func TestCountingWriter_Call(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)

	num, err := cw.WriteStrings("a").Call(func(w io.Writer) (int, error) {
		return io.WriteString(w, "bcd")
	}).Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if num != 4 {
		t.Errorf("cw.Result() num = %d, want 4", num)
	}
	if got := buf.String(); got != "abcd" {
		t.Errorf("buf.String() = %q, want %q", got, "abcd")
	}
}

func TestCountingWriter_ErrorStopsWrites(t *testing.T) {
	t.Parallel()

	ew := &errorWriter{failAfter: 3}
	cw := ioutil.GetCountingWriter(ew)
	defer ioutil.FreeCountingWriter(cw)

	var called bool
	num, err := cw.WriteStrings("ab", "cd", "ef").Call(func(io.Writer) (int, error) {
		called = true
		return 0, nil
	}).Result()
	if !errors.Is(err, errWriteFailed) {
		t.Errorf("cw.Result() error = %v, want %v", err, errWriteFailed)
	}
	if num != 3 {
		t.Errorf("cw.Result() num = %d, want 3", num)
	}
	if called {
		t.Error("cw.Call() invoked fn after write error")
	}
	if err := cw.WriteByte('x'); !errors.Is(err, errWriteFailed) {
		t.Errorf("cw.WriteByte() error = %v, want %v", err, errWriteFailed)
	}
}

func TestGetFreeCountingWriter(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	cw.WriteStrings("abc")
	ioutil.FreeCountingWriter(cw)

	cw = ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)
	if num, err := cw.Result(); num != 0 || err != nil {
		t.Errorf("cw.Result() = (%d, %v), want (0, nil)", num, err)
	}
}
