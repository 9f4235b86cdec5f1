package cookiespec

import (
	"github.com/webmimic/cookiespec/specs"
)

// Recognized attribute names, lowercase.
const (
	attrDomain   = "domain"
	attrPath     = "path"
	attrExpires  = "expires"
	attrMaxAge   = "max-age"
	attrSecure   = "secure"
	attrDiscard  = "discard"
	attrHTTPOnly = "httponly"
)

// AttributeHandler parses, validates and matches a single cookie attribute.
//
// Handlers are stateless beyond their quirk configuration and are
// constructed once per [Spec].
type AttributeHandler interface {
	// Parse interprets the attribute text and sets the corresponding
	// cookie field. It fails with a malformed-cookie error on an
	// unparseable value, unless the quirk configuration requests leniency.
	Parse(cookie *specs.Cookie, value string) error

	// Validate checks the attribute's constraint relative to the origin.
	Validate(cookie *specs.Cookie, origin *specs.CookieOrigin) error

	// Match reports whether the cookie should be sent to the origin,
	// as far as this attribute is concerned. Used by the external store
	// during retrieval.
	Match(cookie *specs.Cookie, origin *specs.CookieOrigin) bool
}

// handlerOrder fixes the dispatch order for validation and matching.
var handlerOrder = []string{
	attrDomain, attrPath, attrExpires, attrMaxAge,
	attrSecure, attrDiscard, attrHTTPOnly,
}

func newHandlerTable(quirks Quirks) map[string]AttributeHandler {
	return map[string]AttributeHandler{
		attrDomain:   &domainHandler{quirks: quirks},
		attrPath:     &pathHandler{quirks: quirks},
		attrExpires:  &expiresHandler{quirks: quirks},
		attrMaxAge:   &maxAgeHandler{quirks: quirks},
		attrSecure:   secureHandler{},
		attrDiscard:  discardHandler{},
		attrHTTPOnly: httpOnlyHandler{},
	}
}
