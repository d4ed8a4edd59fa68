package mailto

import (
	"io"
	"iter"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/mailto/internal/grammar"
	"github.com/ghettovoice/mailto/internal/ioutil"
	"github.com/ghettovoice/mailto/internal/util"
)

// Headers is an insertion-ordered map of mailto header fields.
// Names are case-insensitive and stored lower-cased.
// A field may be present without a value, this is the case of a query token without "=".
//
// The zero value is an empty map ready to use.
type Headers struct {
	names []string
	vals  map[string]headerValue
}

type headerValue struct {
	val string
	set bool
}

// Get returns the value of the named header and whether the value is present.
// It returns false both for missing headers and for headers without a value.
func (h *Headers) Get(name string) (string, bool) {
	v, _ := h.lookup(name)
	return v.val, v.set
}

// Lookup returns the value of the named header, whether the value is present and
// whether the header itself exists.
func (h *Headers) Lookup(name string) (val string, hasVal, exists bool) {
	v, ok := h.lookup(name)
	return v.val, v.set, ok
}

func (h *Headers) lookup(name string) (headerValue, bool) {
	if h == nil || h.vals == nil {
		return headerValue{}, false
	}
	v, ok := h.vals[util.LCase(name)]
	return v, ok
}

// Has reports whether the named header exists, with or without a value.
func (h *Headers) Has(name string) bool {
	_, ok := h.lookup(name)
	return ok
}

// Set sets the named header to value.
// Existing header keeps its position, a new one is appended.
func (h *Headers) Set(name, value string) *Headers {
	h.put(name, headerValue{val: value, set: true})
	return h
}

// SetNoValue records the named header without a value.
func (h *Headers) SetNoValue(name string) *Headers {
	h.put(name, headerValue{})
	return h
}

func (h *Headers) put(name string, v headerValue) {
	name = util.LCase(name)
	if h.vals == nil {
		h.vals = make(map[string]headerValue)
	}
	if _, ok := h.vals[name]; !ok {
		h.names = append(h.names, name)
	}
	h.vals[name] = v
}

// Del deletes the named header.
func (h *Headers) Del(name string) *Headers {
	if h == nil || h.vals == nil {
		return h
	}
	name = util.LCase(name)
	if _, ok := h.vals[name]; !ok {
		return h
	}
	delete(h.vals, name)
	h.names = slices.DeleteFunc(h.names, func(n string) bool { return n == name })
	return h
}

// Len returns the number of headers.
func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.names)
}

// Names returns header names in insertion order.
func (h *Headers) Names() []string {
	if h == nil {
		return nil
	}
	return slices.Clone(h.names)
}

// All iterates over headers in insertion order.
// Headers without a value are yielded with an empty string.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if h == nil {
			return
		}
		for _, n := range h.names {
			if !yield(n, h.vals[n].val) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the headers.
func (h *Headers) Clone() *Headers {
	if h == nil {
		return nil
	}
	h2 := &Headers{names: slices.Clone(h.names)}
	if h.vals != nil {
		h2.vals = make(map[string]headerValue, len(h.vals))
		for k, v := range h.vals {
			h2.vals[k] = v
		}
	}
	return h2
}

// Equal reports whether both maps hold the same headers with the same values.
// Insertion order is ignored.
func (h *Headers) Equal(other *Headers) bool {
	if h.Len() != other.Len() {
		return false
	}
	for _, n := range h.Names() {
		v1, _ := h.lookup(n)
		v2, ok := other.lookup(n)
		if !ok || v1 != v2 {
			return false
		}
	}
	return true
}

// renderTo writes headers as escaped "name=value&" query fields in insertion order.
func (h *Headers) renderTo(w io.Writer) (num int, err error) {
	if h == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, name := range h.names {
		cw.WriteStrings(grammar.Escape(name, nil))
		// A field without a value is written as "name&", never "name=" or "name=null".
		if v := h.vals[name]; v.set {
			cw.WriteByte('=') //nolint:errcheck
			cw.WriteStrings(grammar.Escape(v.val, nil))
		}
		cw.WriteByte('&') //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}
