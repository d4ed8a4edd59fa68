package mailto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ghettovoice/mailto"
	"github.com/ghettovoice/mailto/internal/errorutil"
)

func TestURI_MessageHeader(t *testing.T) {
	t.Parallel()

	u, err := mailto.Parse("mailto:?to=joe@example.com&cc=bob@example.com,%20&subject=Hello%20there&" +
		"in-reply-to=%3C42@example.com%3E&body=hi&content-type=text/html&x-empty=&x-flag")
	if err != nil {
		t.Fatalf("mailto.Parse() error = %v, want nil", err)
	}

	h := u.MessageHeader()

	to, err := h.AddressList("To")
	if err != nil || len(to) != 1 || to[0].Address != "joe@example.com" {
		t.Errorf("h.AddressList(\"To\") = (%v, %v), want [joe@example.com]", to, err)
	}
	cc, err := h.AddressList("Cc")
	if err != nil || len(cc) != 1 || cc[0].Address != "bob@example.com" {
		t.Errorf("h.AddressList(\"Cc\") = (%v, %v), want [bob@example.com]", cc, err)
	}
	if subj, err := h.Subject(); err != nil || subj != "Hello there" {
		t.Errorf("h.Subject() = (%q, %v), want (\"Hello there\", nil)", subj, err)
	}
	if got := h.Get("In-Reply-To"); got != "<42@example.com>" {
		t.Errorf("h.Get(\"In-Reply-To\") = %q, want %q", got, "<42@example.com>")
	}
	if ct, _, err := h.ContentType(); err != nil || ct != "text/plain" {
		t.Errorf("h.ContentType() = (%q, %v), want (\"text/plain\", nil)", ct, err)
	}
	for _, k := range []string{"Body", "Bcc", "X-Empty", "X-Flag"} {
		if h.Has(k) {
			t.Errorf("h.Has(%q) = true, want false", k)
		}
	}
}

func TestURI_MessageHeader_RawRecipients(t *testing.T) {
	t.Parallel()

	u, err := mailto.Parse("mailto:not%20an%20address")
	if err != nil {
		t.Fatalf("mailto.Parse() error = %v, want nil", err)
	}
	h := u.MessageHeader()
	if got := h.Get("To"); got != "not an address" {
		t.Errorf("h.Get(\"To\") = %q, want %q", got, "not an address")
	}
}

func TestURI_WriteDraft_HeaderInjection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		field string
	}{
		{"to", "mailto:x?to=victim%0D%0ABcc:%20evil@attacker.example", "To: "},
		{"cc", "mailto:x?cc=victim%0D%0ABcc:%20evil@attacker.example", "Cc: "},
		{"bcc", "mailto:x?bcc=victim%0ACc:%20evil@attacker.example", "Bcc: "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := mailto.Parse(c.input)
			if err != nil {
				t.Fatalf("mailto.Parse(%q) error = %v, want nil", c.input, err)
			}

			var sb strings.Builder
			if err := u.WriteDraft(&sb); err != nil {
				t.Fatalf("u.WriteDraft(sb) error = %v, want nil", err)
			}
			got := sb.String()
			if !strings.Contains(got, c.field) {
				t.Errorf("u.WriteDraft() = %q, want it to contain %q", got, c.field)
			}
			hdr, _, _ := strings.Cut(got, "\r\n\r\n")
			for line := range strings.SplitSeq(hdr, "\r\n") {
				if strings.Contains(line, "evil@attacker.example") && !strings.HasPrefix(line, c.field) {
					t.Errorf("u.WriteDraft() header line %q, want the injected text kept inside %q", line, c.field)
				}
			}
		})
	}
}

type failingWriter struct{}

func (*failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

func TestURI_WriteDraft_WriteError(t *testing.T) {
	t.Parallel()

	u, _ := mailto.Parse(mailtoURI4)
	w := &failingWriter{}
	if err := u.WriteDraft(w); !errors.Is(err, errWriteFailed) {
		t.Errorf("u.WriteDraft(w) error = %v, want %v", err, errWriteFailed)
	}
}

func TestURI_MessageHeader_EmptyTo(t *testing.T) {
	t.Parallel()

	u, err := mailto.Parse("mailto:?to=,%20&subject=s")
	if err != nil {
		t.Fatalf("mailto.Parse() error = %v, want nil", err)
	}
	if h := u.MessageHeader(); h.Has("To") {
		t.Errorf("h.Has(\"To\") = true, want false")
	}
}

func TestURI_WriteDraft(t *testing.T) {
	t.Parallel()

	u, err := mailto.Parse(mailtoURI4)
	if err != nil {
		t.Fatalf("mailto.Parse() error = %v, want nil", err)
	}

	var sb strings.Builder
	if err := u.WriteDraft(&sb); err != nil {
		t.Fatalf("u.WriteDraft(sb) error = %v, want nil", err)
	}
	got := sb.String()
	for _, want := range []string{
		"To: ",
		"infobot@example.com",
		"Content-Type: text/plain",
		"\r\n\r\nsend current-issue\r\nsend index",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("u.WriteDraft() = %q, want it to contain %q", got, want)
		}
	}
}

func TestURI_WriteDraft_NilWriter(t *testing.T) {
	t.Parallel()

	u, _ := mailto.Parse(mailtoURI1)
	if err := u.WriteDraft(nil); !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Errorf("u.WriteDraft(nil) error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
}
