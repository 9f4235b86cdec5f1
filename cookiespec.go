// Package cookiespec parses and formats HTTP Set-Cookie and Cookie headers
// the way real browsers do, not the way RFC 6265 says they should.
//
// Generic cookie parsers reject or mis-parse headers browsers accept
// silently: cookies with empty names, unbalanced quoting around values,
// legacy RFC 2109/2965 flavored attributes. This package reproduces the
// observed behavior, with a per-browser [Quirks] configuration selecting
// how lenient each attribute handler is.
//
// The package owns only the parsing and formatting pipeline. Storage,
// eviction and transport belong to the caller; retrieval filtering is done
// through [Spec.Match].
package cookiespec

import (
	"bytes"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/webmimic/cookiespec/internal/parsing"
	"github.com/webmimic/cookiespec/specs"
)

// Cookie header names owned by this package.
const (
	HeaderCookie    = "Cookie"
	HeaderSetCookie = "Set-Cookie"
)

var cookieDelimiter = []byte("; ")

// Spec is the parsing and formatting pipeline for one simulated browser.
//
// A Spec is constructed once per browser configuration and is safe for
// concurrent use across independent calls, provided callers do not mutate
// a single Cookie from multiple goroutines.
type Spec struct {
	quirks   Quirks
	handlers map[string]AttributeHandler

	nextOrder atomic.Int64
}

// New creates a Spec with the given quirk configuration.
func New(quirks Quirks) *Spec {
	return &Spec{
		quirks:   quirks,
		handlers: newHandlerTable(quirks),
	}
}

// Quirks returns the quirk configuration the Spec was built with.
func (spec *Spec) Quirks() Quirks {
	return spec.quirks
}

// Parse parses a Set-Cookie header received from the given origin.
//
// Unrecognized attributes are ignored. A malformed attribute aborts only the
// cookie element it belongs to; sibling cookies in a multi-cookie header
// still parse. The surviving cookies are returned together with the joined
// errors of the failed elements, so callers may store survivors and still
// observe the failure.
func (spec *Spec) Parse(header specs.Header, origin *specs.CookieOrigin) ([]*specs.Cookie, error) {
	header = normalizeHeader(header)
	text := header.Value()

	var cookies []*specs.Cookie
	var errs []error
	for _, element := range parsing.ParseElements(text) {
		cookie := &specs.Cookie{
			Name:   element.Name,
			Value:  element.Value,
			Domain: strings.ToLower(origin.Host),
			Path:   defaultPath(origin),
		}

		var failed bool
		for _, param := range element.Params {
			handler, has := spec.handlers[strings.ToLower(param.Name)]
			if !has {
				continue
			}
			if err := handler.Parse(cookie, param.Value); err != nil {
				errs = append(errs, err)
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		// The tokenizer unwraps quoted values as token/quoted-string
		// handling demands, but browsers treat cookie values as opaque
		// and quote-preserving. Re-add the quotes when the raw text shows
		// the value directly after an opening quote. A literal substring
		// scan, as browsers themselves resolve this ambiguity textually.
		if strings.Contains(text, cookie.Name+`="`+cookie.Value) {
			cookie.Value = `"` + cookie.Value + `"`
		}

		cookie.CreationOrder = spec.nextOrder.Add(1)
		cookies = append(cookies, cookie)
	}
	return cookies, errors.Join(errs...)
}

// Validate checks every attribute constraint of the cookie against the
// origin, with the leniency the quirk configuration allows.
func (spec *Spec) Validate(cookie *specs.Cookie, origin *specs.CookieOrigin) error {
	for _, name := range handlerOrder {
		if err := spec.handlers[name].Validate(cookie, origin); err != nil {
			return err
		}
	}
	return nil
}

// Match reports whether a stored cookie should be sent to the origin.
func (spec *Spec) Match(cookie *specs.Cookie, origin *specs.CookieOrigin) bool {
	for _, name := range handlerOrder {
		if !spec.handlers[name].Match(cookie, origin) {
			return false
		}
	}
	return true
}

// FormatCookies serializes cookies into an outgoing Cookie header, ordered
// by path specificity descending. The input slice is not reordered; the
// cookies are assumed valid and there is no failure path.
func (spec *Spec) FormatCookies(cookies []*specs.Cookie) []specs.Header {
	if len(cookies) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for i, cookie := range sortedByPathSpecificity(cookies) {
		if i > 0 {
			buf.Write(cookieDelimiter)
		}
		buf.Write(cookie.Pair())
	}
	return []specs.Header{specs.NewHeader(HeaderCookie, buf.String())}
}

// defaultPath is the origin path truncated to its last '/'-terminated
// segment, or "/" if none.
func defaultPath(origin *specs.CookieOrigin) string {
	path := origin.Path
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return "/"
	}
	if idx == 0 {
		idx = 1
	}
	path = path[:idx]
	if path == "" {
		path = "/"
	}
	return path
}
