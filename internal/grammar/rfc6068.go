package grammar

import (
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/mailto/internal/errorutil"
)

func init() {
	abnf.EnableNodeCache(1024)
}

func char(c byte) abnf.Operator {
	return abnf.Literal(strconv.Quote(string(c)), []byte{c})
}

// RFC 3986 and RFC 6068 rules. The "to" part is reduced to *qchar since
// addr-spec syntax is not checked.
var (
	alpha = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	digit  = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
	hexdig = abnf.Alt(
		"HEXDIG",
		digit,
		abnf.Range("%x41-46", []byte{0x41}, []byte{0x46}),
		abnf.Range("%x61-66", []byte{0x61}, []byte{0x66}),
	)
	unreserved = abnf.Alt("unreserved", alpha, digit, char('-'), char('.'), char('_'), char('~'))
	pctEncoded = abnf.Concat("pct-encoded", char('%'), hexdig, hexdig)
	someDelims = abnf.Alt(
		"some-delims",
		char('!'), char('$'), char('\''), char('('), char(')'), char('*'),
		char('+'), char(','), char(';'), char(':'), char('@'),
	)
	qchar   = abnf.Alt("qchar", unreserved, pctEncoded, someDelims)
	to      = abnf.Repeat1Inf("to", qchar)
	hfname  = abnf.Repeat0Inf("hfname", qchar)
	hfvalue = abnf.Repeat0Inf("hfvalue", qchar)
	hfield  = abnf.Concat("hfield", hfname, char('='), hfvalue)
	hfields = abnf.Concat(
		"hfields",
		char('?'),
		hfield,
		abnf.Repeat0Inf(`*( "&" hfield )`, abnf.Concat(`"&" hfield`, char('&'), hfield)),
	)
	mailtoURI = abnf.Concat(
		"mailtoURI",
		abnf.Literal(`"mailto:"`, []byte("mailto:")),
		abnf.Optional("[ to ]", to),
		abnf.Optional("[ hfields ]", hfields),
	)
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// ParseMailtoURI matches s against the RFC 6068 mailtoURI rule and returns the root node.
// The whole input must be consumed, fragments are not allowed.
func ParseMailtoURI[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := mailtoURI([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("unexpected %q at position %d", s[nl], nl))
	}
	return n, nil
}
