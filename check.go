package mailto

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/mailto/internal/constraints"
	"github.com/ghettovoice/mailto/internal/grammar"
)

// Check reports whether s follows the RFC 6068 mailtoURI syntax:
// every character outside of qchar is percent-encoded, header fields have the "name=value" form
// and there is no fragment.
// Addresses are not validated, "to" and header values are only checked on the character level.
//
// [Parse] accepts inputs rejected by Check, it never depends on it.
func Check[T constraints.Byteseq](s T) error {
	if len(s) == 0 {
		return errtrace.Wrap(ErrEmptyInput)
	}
	if !IsMailto(s) {
		return errtrace.Wrap(newParseError(string(s)))
	}
	if _, err := grammar.ParseMailtoURI(s); err != nil {
		return errtrace.Wrap(err)
	}
	return nil
}

// IsWellFormed is a shortcut for Check(s) == nil.
func IsWellFormed[T constraints.Byteseq](s T) bool { return Check(s) == nil }
