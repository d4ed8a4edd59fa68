// Package grammar implements character classes, percent-encoding and the RFC 6068 grammar
// used by the mailto package.
package grammar

//go:generate go tool errtrace -w .

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)
