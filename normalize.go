package cookiespec

import (
	"strings"

	"github.com/webmimic/cookiespec/specs"
)

// normalizeHeader rewrites a cookie header that has no recognizable
// name=value pair before the first attribute delimiter, so tokenization
// never fails on a nameless cookie. Browsers accept all of "foo" (bare
// value), "=bar" (empty name) and ";path=/" (attribute only) silently.
//
// The original header is never mutated; a new one is returned when a
// rewrite is needed.
func normalizeHeader(header specs.Header) specs.Header {
	text := header.Value()

	endPos := strings.IndexByte(text, ';')
	if endPos < 0 {
		endPos = strings.IndexByte(text, '=')
	} else {
		// '=' after the first ';' belongs to an attribute, not a name.
		pos := strings.IndexByte(text, '=')
		if pos > endPos {
			endPos = -1
		} else {
			endPos = pos
		}
	}

	if endPos < 0 {
		return specs.NewHeader(header.Name(), specs.EmptyCookieName+"="+text)
	}
	if endPos == 0 || strings.TrimSpace(text[:endPos]) == "" {
		return specs.NewHeader(header.Name(), specs.EmptyCookieName+text)
	}
	return header
}
