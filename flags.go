package cookiespec

import (
	"github.com/webmimic/cookiespec/specs"
)

// discardHandler marks the cookie session-only regardless of expiry.
// The attribute needs no value.
type discardHandler struct{}

func (discardHandler) Parse(cookie *specs.Cookie, value string) error {
	cookie.Discard = true
	return nil
}

func (discardHandler) Validate(cookie *specs.Cookie, origin *specs.CookieOrigin) error {
	return nil
}

func (discardHandler) Match(cookie *specs.Cookie, origin *specs.CookieOrigin) bool {
	return true
}

// httpOnlyHandler records the HttpOnly marker. It never affects matching;
// the script-visibility layer consumes the flag.
type httpOnlyHandler struct{}

func (httpOnlyHandler) Parse(cookie *specs.Cookie, value string) error {
	cookie.HttpOnly = true
	return nil
}

func (httpOnlyHandler) Validate(cookie *specs.Cookie, origin *specs.CookieOrigin) error {
	return nil
}

func (httpOnlyHandler) Match(cookie *specs.Cookie, origin *specs.CookieOrigin) bool {
	return true
}

// secureHandler records the Secure marker; secure cookies are only sent
// over a secure channel.
type secureHandler struct{}

func (secureHandler) Parse(cookie *specs.Cookie, value string) error {
	cookie.Secure = true
	return nil
}

func (secureHandler) Validate(cookie *specs.Cookie, origin *specs.CookieOrigin) error {
	return nil
}

func (secureHandler) Match(cookie *specs.Cookie, origin *specs.CookieOrigin) bool {
	return !cookie.Secure || origin.Secure
}
