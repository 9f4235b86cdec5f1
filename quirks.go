package cookiespec

// Quirks holds the browser-version derived flags that relax parsing and
// validation to match observed browser behavior. The zero value is fully
// strict. The flag set is derived from the simulated browser's feature table
// by the caller; this package only reads it.
type Quirks struct {
	// LenientExpires treats an absent or unparseable expiry as a session
	// cookie instead of a malformed one.
	LenientExpires bool

	// ExtendedDateLayouts enables the legacy expiry date layouts only some
	// browsers accept.
	ExtendedDateLayouts bool

	// LenientDomainValidation silently accepts a domain attribute that is
	// not a suffix match of the origin host.
	LenientDomainValidation bool

	// AllowDomainWithoutDot lets "example.com" suffix-match
	// "www.example.com" without a leading dot.
	AllowDomainWithoutDot bool

	// LenientPathMatching uses plain prefix matching for paths and never
	// fails path validation.
	LenientPathMatching bool

	// RejectPublicSuffix refuses a domain attribute that is exactly a
	// public suffix, unless it equals the origin host.
	RejectPublicSuffix bool
}

// DefaultQuirks returns the flag set matching mainstream browser leniency.
func DefaultQuirks() Quirks {
	return Quirks{
		LenientExpires:        true,
		ExtendedDateLayouts:   true,
		AllowDomainWithoutDot: true,
		LenientPathMatching:   true,
		RejectPublicSuffix:    true,
	}
}

// StrictQuirks returns the fully strict flag set, closest to RFC 2109.
func StrictQuirks() Quirks {
	return Quirks{}
}
