package cookiespec

import (
	"strconv"
	"strings"
	"time"

	"github.com/webmimic/cookiespec/internal/parsing"
	"github.com/webmimic/cookiespec/specs"
)

// expiresHandler handles the Expires attribute.
//
// The epoch instant is a deliberate "delete immediately" signal and is kept
// verbatim, never rejected for being in the past.
type expiresHandler struct {
	quirks Quirks
}

func (h *expiresHandler) Parse(cookie *specs.Cookie, value string) error {
	date, ok := parsing.ParseDate(value, h.quirks.ExtendedDateLayouts)
	if !ok {
		if h.quirks.LenientExpires {
			cookie.Expires = time.Time{}
			return nil
		}
		return specs.NewMalformedCookie("unparseable expires attribute %q", value)
	}
	cookie.Expires = date
	return nil
}

func (h *expiresHandler) Validate(cookie *specs.Cookie, origin *specs.CookieOrigin) error {
	return nil
}

func (h *expiresHandler) Match(cookie *specs.Cookie, origin *specs.CookieOrigin) bool {
	return true
}

// maxAgeHandler handles the Max-Age attribute as a delta-seconds expiry.
type maxAgeHandler struct {
	quirks Quirks
}

func (h *maxAgeHandler) Parse(cookie *specs.Cookie, value string) error {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		if h.quirks.LenientExpires {
			return nil
		}
		return specs.NewMalformedCookie("invalid max-age attribute %q", value)
	}
	if seconds < 0 {
		return specs.NewMalformedCookie("negative max-age attribute %q", value)
	}
	cookie.Expires = time.Now().Add(time.Duration(seconds) * time.Second)
	return nil
}

func (h *maxAgeHandler) Validate(cookie *specs.Cookie, origin *specs.CookieOrigin) error {
	return nil
}

func (h *maxAgeHandler) Match(cookie *specs.Cookie, origin *specs.CookieOrigin) bool {
	return true
}
