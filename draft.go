package mailto

import (
	"bytes"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/emersion/go-message/mail"

	"github.com/ghettovoice/mailto/internal/errorutil"
)

// Headers that are owned by the draft writer and never copied from the URI.
var draftSkipHeaders = map[string]bool{
	HeaderBody:                  true,
	"content-type":              true,
	"content-transfer-encoding": true,
	"content-disposition":       true,
	"mime-version":              true,
}

// MessageHeader converts the URI into an RFC 5322 message header suitable for a compose form.
//
// Recipient headers are set as address lists when they can be parsed, otherwise as encoded text.
// Empty recipient lists left after the address merge (like ", joe@example.com") are cleaned up.
// The subject is MIME-encoded when needed, other headers are copied with canonical names.
// Headers without a value or with an empty value are skipped.
func (u *URI) MessageHeader() mail.Header {
	var h mail.Header
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	if u == nil {
		return h
	}

	for name, val := range u.hdrs.All() {
		if draftSkipHeaders[name] || val == "" {
			continue
		}
		switch name {
		case HeaderTo, HeaderCc, HeaderBcc:
			list := cleanAddressList(val)
			if list == "" {
				continue
			}
			if addrs, err := mail.ParseAddressList(list); err == nil && len(addrs) > 0 {
				h.SetAddressList(name, addrs)
			} else {
				h.SetText(name, list)
			}
		case HeaderSubject:
			h.SetSubject(val)
		default:
			h.SetText(name, val)
		}
	}
	return h
}

func cleanAddressList(s string) string {
	parts := strings.Split(s, ",")
	addrs := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			addrs = append(addrs, p)
		}
	}
	return strings.Join(addrs, ", ")
}

// WriteDraft writes a single part plain text message built from the URI to w.
// The message header is produced by [URI.MessageHeader], the body is the "body" header value.
func (u *URI) WriteDraft(w io.Writer) error {
	if w == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil writer"))
	}

	// Nothing reaches w unless the whole message is built.
	var buf bytes.Buffer
	mw, err := mail.CreateSingleInlineWriter(&buf, u.MessageHeader())
	if err != nil {
		return errtrace.Wrap(err)
	}
	if body, ok := u.Body(); ok {
		if _, err := io.WriteString(mw, body); err != nil {
			mw.Close() //nolint:errcheck
			return errtrace.Wrap(err)
		}
	}
	if err := mw.Close(); err != nil {
		return errtrace.Wrap(err)
	}
	_, err = buf.WriteTo(w)
	return errtrace.Wrap(err)
}
