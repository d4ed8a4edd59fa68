// Package mailto parses and renders mailto URIs as described in RFC 6068.
//
// # Parsing
//
// [Parse] turns a raw URI into a [URI] holding all recipients and header fields.
// Parsing is permissive, the same way web browsers and mail clients behave:
//
//   - the fragment is dropped;
//   - the address part and every query field are percent-decoded once,
//     malformed escapes are kept as is;
//   - a query field is split on the first "=" only, so "body=a=b" gives "a=b";
//   - header names are lower-cased, the last occurrence of a header wins;
//   - the address part is merged into the "to" header: "mailto:a@example.com?to=b@example.com"
//     gives "a@example.com, b@example.com".
//
// The merge is unconditional, so "to" is always present after parsing,
// and "mailto:?to=b@example.com" gives ", b@example.com".
//
//	u, err := mailto.Parse("mailto:infobot@example.com?subject=current-issue")
//	if err != nil {
//	    // not a mailto URI, fall back to a generic handler
//	}
//	to, _ := u.To()           // "infobot@example.com"
//	subj, _ := u.Subject()    // "current-issue"
//
// The only parse error is [ParseError], returned when the input does not start with "mailto:".
// Use [IsMailto] to route links before parsing and [Check] to test strict RFC 6068 syntax.
//
// # Rendering
//
// [URI.String] and [URI.RenderTo] produce the canonical form: "mailto:?" followed by
// every header as "name=value&" in insertion order, escaped as URI components:
//
//	mailto:?to=chris%40example.com&
//
// # Drafts
//
// [URI.MessageHeader] and [URI.WriteDraft] convert a parsed URI into an RFC 5322 message
// to prefill a compose form.
//
// # Thread Safety
//
// Parsing has no shared state and may be called from many goroutines.
// A [URI] is not safe for concurrent modification through [URI.UnmarshalText].
package mailto
