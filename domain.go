package cookiespec

import (
	"strings"

	"github.com/webmimic/cookiespec/specs"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// domainHandler handles the Domain attribute.
//
// The local-filesystem sentinel always validates and matches: browsers let
// cookies set by file:// origins be visible to all local-file requests.
type domainHandler struct {
	quirks Quirks
}

func (h *domainHandler) Parse(cookie *specs.Cookie, value string) error {
	domain := strings.ToLower(strings.TrimSpace(value))
	if domain == "" {
		return specs.NewMalformedCookie("missing value for domain attribute")
	}

	// Internationalized domains match in their ASCII (punycode) form.
	bare := strings.TrimPrefix(domain, ".")
	if ascii, err := idna.Lookup.ToASCII(bare); err == nil && ascii != bare {
		if strings.HasPrefix(domain, ".") {
			domain = "." + ascii
		} else {
			domain = ascii
		}
	}

	cookie.Domain = domain
	return nil
}

func (h *domainHandler) Validate(cookie *specs.Cookie, origin *specs.CookieOrigin) error {
	domain := cookie.Domain
	if domain == specs.LocalFilesystemDomain {
		return nil
	}

	host := strings.ToLower(origin.Host)
	bare := strings.TrimPrefix(domain, ".")

	if h.quirks.RejectPublicSuffix && bare != host {
		if suffix, _ := publicsuffix.PublicSuffix(bare); suffix == bare {
			return specs.NewMalformedCookie(
				"domain attribute %q is a public suffix", cookie.Domain)
		}
	}

	if host == bare {
		return nil
	}
	dotted := domain
	if !strings.HasPrefix(dotted, ".") {
		dotted = "." + dotted
	}
	if strings.HasSuffix(host, dotted) {
		return nil
	}

	if h.quirks.LenientDomainValidation {
		return nil
	}
	return specs.NewMalformedCookie(
		"domain attribute %q does not match the origin host %q", cookie.Domain, origin.Host)
}

func (h *domainHandler) Match(cookie *specs.Cookie, origin *specs.CookieOrigin) bool {
	domain := cookie.Domain
	if domain == specs.LocalFilesystemDomain {
		return true
	}
	if domain == "" {
		return false
	}

	host := strings.ToLower(origin.Host)
	bare := strings.TrimPrefix(domain, ".")

	if host == bare {
		return true
	}
	if strings.HasPrefix(domain, ".") && strings.HasSuffix(host, domain) {
		return true
	}
	if h.quirks.AllowDomainWithoutDot && strings.HasSuffix(host, "."+bare) {
		return true
	}
	return false
}
