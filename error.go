package mailto

import (
	"errors"
	"strconv"

	"github.com/ghettovoice/mailto/internal/errorutil"
	"github.com/ghettovoice/mailto/internal/grammar"
	"github.com/ghettovoice/mailto/internal/util"
)

// Error is a sentinel error type of the package.
type Error = errorutil.Error

// ErrNotMailtoScheme is reported when an input does not start with the "mailto:" prefix.
const ErrNotMailtoScheme Error = "not a mailto scheme"

// ErrMalformedInput is reported by [Check] when an input does not follow the RFC 6068 syntax.
const ErrMalformedInput = grammar.ErrMalformedInput

// ErrEmptyInput is reported by [Check] for an empty input.
const ErrEmptyInput = grammar.ErrEmptyInput

// ParseError is returned by [Parse] when the input is not a mailto URI.
// It matches [ErrNotMailtoScheme] with [errors.Is].
type ParseError struct {
	Input    string // original input
	Response string // human-readable reason
}

func newParseError(input string) *ParseError {
	return &ParseError{Input: input, Response: ErrNotMailtoScheme.Error()}
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "parse " + strconv.Quote(util.Ellipsis(e.Input, 64)) + ": " + e.Response
}

func (e *ParseError) Unwrap() error { return ErrNotMailtoScheme }

// Grammar marks the error as a syntax error of the input.
func (*ParseError) Grammar() bool { return true }

// IsParseError reports whether err is or wraps a [ParseError].
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

// IsGrammarError reports whether err is caused by a syntax problem of the input,
// either a [ParseError] or a [Check] failure.
func IsGrammarError(err error) bool { return errorutil.IsGrammarErr(err) }
