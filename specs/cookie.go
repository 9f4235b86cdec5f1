package specs

import (
	"bytes"
	"time"
)

const (
	// EmptyCookieName is the placeholder name given to cookies whose
	// header carried no name before the first attribute delimiter.
	// Browsers accept such headers silently; downstream tokenization
	// does not.
	EmptyCookieName = "HTMLUNIT_EMPTY_COOKIE"

	// LocalFilesystemDomain is the sentinel domain assigned to cookies
	// set by local-file origins. It matches any request under the same
	// sentinel regardless of path.
	LocalFilesystemDomain = "LOCAL_FILESYSTEM"
)

// EpochStart is the expiry servers send to delete a cookie immediately.
// It must survive parsing verbatim and never collapse into a session cookie.
var EpochStart = time.Unix(0, 0).UTC()

// Cookie is a single parsed cookie.
//
// A zero Expires means a session cookie. A Cookie is identified by
// (Name, Domain, Path) for store replacement; the parser does not
// enforce uniqueness.
type Cookie struct {
	Name  string
	Value string

	Domain string
	Path   string

	// Expires is the absolute expiry instant, zero for session cookies.
	Expires time.Time

	Secure   bool
	HttpOnly bool

	// Discard forces removal at session end regardless of Expires.
	Discard bool

	// CreationOrder is a monotonic counter assigned at parse time,
	// used only for stable ordering, never for identity.
	CreationOrder int64
}

// IsSession reports whether the cookie has no expiry.
func (cookie *Cookie) IsSession() bool {
	return cookie.Expires.IsZero()
}

// IsExpired reports whether the cookie expiry has passed at the given instant.
//
// Session cookies never expire here; the Discard flag is the store's concern.
func (cookie *Cookie) IsExpired(now time.Time) bool {
	return !cookie.Expires.IsZero() && !now.Before(cookie.Expires)
}

// Pair returns the "name=value" form used in outgoing Cookie headers.
// The value is written verbatim, quotes included if present.
func (cookie *Cookie) Pair() []byte {
	var buf bytes.Buffer
	buf.WriteString(cookie.Name)
	buf.WriteByte('=')
	buf.WriteString(cookie.Value)
	return buf.Bytes()
}
