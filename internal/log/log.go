// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/mailto"
	"github.com/ghettovoice/mailto/internal/errorutil"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u *mailto.URI) slog.Value {
		return slog.StringValue(u.String())
	}),
	slogformatter.FormatByType(func(h *mailto.Headers) slog.Value {
		attrs := make([]slog.Attr, 0, h.Len())
		for k, v := range h.All() {
			attrs = append(attrs, slog.String(k, v))
		}
		return slog.GroupValue(attrs...)
	}),
)

// Format names of the supported log handlers.
const (
	FormatConsole = "console"
	FormatDev     = "dev"
)

// New creates a logger writing to w.
// Format "console" produces compact colored lines, "dev" produces pretty multi-line records.
func New(w io.Writer, format string, level slog.Leveler) (*slog.Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatConsole:
		return slog.New(newHandler(
			console.NewHandler(w, &console.HandlerOptions{
				Level:      level,
				TimeFormat: time.RFC3339Nano,
			}),
		)), nil
	case FormatDev:
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		)), nil
	default:
		return nil, errorutil.NewInvalidArgumentError("unknown log format %q", format) //errtrace:skip
	}
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, errorutil.NewInvalidArgumentError(err) //errtrace:skip
	}
	return lvl, nil
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type stringValue struct{ v fmt.Stringer }

func (v stringValue) LogValue() slog.Value { return slog.StringValue(v.v.String()) }

// StringValue returns a value logger that formats v with its String method lazily.
func StringValue(v fmt.Stringer) slog.LogValuer { return stringValue{v} }
