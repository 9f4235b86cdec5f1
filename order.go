package cookiespec

import (
	"slices"
	"strings"

	"github.com/webmimic/cookiespec/specs"
)

// sortedByPathSpecificity returns a copy of cookies ordered for the outgoing
// Cookie header: longer, more specific paths first, per RFC 2109 4.3.4 and
// RFC 2965 3.3.4, so a server receiving same-named cookies from different
// path scopes can take the first occurrence. The sort is stable; equal-length
// paths keep their relative order. The input slice is never reordered.
func sortedByPathSpecificity(cookies []*specs.Cookie) []*specs.Cookie {
	ordered := slices.Clone(cookies)
	slices.SortStableFunc(ordered, func(a, b *specs.Cookie) int {
		return normalizedPathLen(b) - normalizedPathLen(a)
	})
	return ordered
}

func normalizedPathLen(cookie *specs.Cookie) int {
	path := cookie.Path
	if path == "" {
		path = "/"
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return len(path)
}
