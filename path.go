package cookiespec

import (
	"strings"

	"github.com/webmimic/cookiespec/specs"
)

// pathHandler handles the Path attribute. Strict mode requires
// segment-aligned prefix matching; lenient mode uses the plain prefix
// matching browsers are observed to apply.
type pathHandler struct {
	quirks Quirks
}

func (h *pathHandler) Parse(cookie *specs.Cookie, value string) error {
	path := strings.TrimSpace(value)
	if path == "" {
		path = "/"
	}
	cookie.Path = path
	return nil
}

func (h *pathHandler) Validate(cookie *specs.Cookie, origin *specs.CookieOrigin) error {
	if h.quirks.LenientPathMatching {
		return nil
	}
	if !h.Match(cookie, origin) {
		return specs.NewMalformedCookie(
			"illegal path attribute %q, request path is %q", cookie.Path, origin.Path)
	}
	return nil
}

func (h *pathHandler) Match(cookie *specs.Cookie, origin *specs.CookieOrigin) bool {
	target := origin.Path
	if target == "" {
		target = "/"
	}
	base := cookie.Path
	if base == "" {
		base = "/"
	}
	if base != "/" {
		base = strings.TrimSuffix(base, "/")
	}

	if !strings.HasPrefix(target, base) {
		return false
	}
	if h.quirks.LenientPathMatching {
		return true
	}
	return base == "/" || len(target) == len(base) || target[len(base)] == '/'
}
