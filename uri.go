package mailto

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/mailto/internal/constraints"
	"github.com/ghettovoice/mailto/internal/grammar"
	"github.com/ghettovoice/mailto/internal/ioutil"
	"github.com/ghettovoice/mailto/internal/util"
)

// Scheme is the prefix of every mailto URI.
const Scheme = "mailto:"

// Well-known header names.
const (
	HeaderTo      = "to"
	HeaderCc      = "cc"
	HeaderBcc     = "bcc"
	HeaderSubject = "subject"
	HeaderBody    = "body"
)

// URI is a parsed mailto URI.
// All recipients and fields are kept as headers, the address part is merged into the "to" header.
type URI struct {
	hdrs Headers
}

// IsMailto reports whether s starts with the case-sensitive "mailto:" prefix.
func IsMailto[T constraints.Byteseq](s T) bool {
	return len(s) >= len(Scheme) && string(s[:len(Scheme)]) == Scheme
}

// Parse parses a mailto URI from the given input s (string or []byte).
//
// The fragment is dropped, the address part and query fields are percent-decoded,
// header names are lower-cased and the last occurrence of a header wins.
// The address part is joined with the "to" header value using ", ".
// Malformed escapes and delimiters are kept as is, the only error is [ParseError]
// for inputs without the "mailto:" prefix.
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	src := string(s)
	if !IsMailto(src) {
		return nil, errtrace.Wrap(newParseError(src))
	}

	if i := strings.IndexByte(src, '#'); i >= 0 {
		src = src[:i]
	}
	addr, query, hasQuery := strings.Cut(src[len(Scheme):], "?")

	u := new(URI)
	if hasQuery {
		for field := range strings.SplitSeq(query, "&") {
			if field == "" {
				continue
			}
			name, val, hasVal := strings.Cut(field, "=")
			name = util.LCase(grammar.Unescape(name))
			if hasVal {
				u.hdrs.Set(name, grammar.Unescape(val))
			} else {
				u.hdrs.SetNoValue(name)
			}
		}
	}

	addr = grammar.Unescape(addr)
	if to, ok := u.hdrs.Get(HeaderTo); ok {
		addr += ", " + to
	}
	u.hdrs.Set(HeaderTo, addr)
	return u, nil
}

// To returns comma-separated recipients.
func (u *URI) To() (string, bool) { return u.Header(HeaderTo) }

// Cc returns comma-separated carbon copy recipients.
func (u *URI) Cc() (string, bool) { return u.Header(HeaderCc) }

// Bcc returns comma-separated blind carbon copy recipients.
func (u *URI) Bcc() (string, bool) { return u.Header(HeaderBcc) }

// Subject returns the subject line.
func (u *URI) Subject() (string, bool) { return u.Header(HeaderSubject) }

// Body returns the message body.
func (u *URI) Body() (string, bool) { return u.Header(HeaderBody) }

// Header returns the value of any header by its case-insensitive name.
// The flag is false if the header is missing or has no value.
func (u *URI) Header(name string) (string, bool) {
	if u == nil {
		return "", false
	}
	return u.hdrs.Get(name)
}

// Headers returns a copy of all parsed headers.
func (u *URI) Headers() *Headers {
	if u == nil {
		return &Headers{}
	}
	return u.hdrs.Clone()
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	return &URI{hdrs: *u.hdrs.Clone()}
}

// IsZero reports whether the URI has no headers.
func (u *URI) IsZero() bool { return u == nil || u.hdrs.Len() == 0 }

// RenderTo writes the canonical form of the URI to w.
//
// The canonical form is "mailto:?" followed by every header in insertion order
// as escaped "name=value&". The trailing "&" is kept. A header without a value
// is written as "name&".
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	return errtrace.Wrap2(cw.WriteStrings(Scheme, "?").Call(u.hdrs.renderTo).Result())
}

// String returns the canonical form of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Equal reports whether val is a URI with the same headers.
// Header order is ignored.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.hdrs.Equal(&other.hdrs)
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
