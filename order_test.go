package cookiespec

import (
	"testing"

	"github.com/webmimic/cookiespec/specs"
)

func Test_sortedByPathSpecificity(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{
			name:  "Longer path first",
			paths: []string{"/a", "/a/b"},
			want:  []string{"/a/b", "/a"},
		},
		{
			name:  "Already ordered",
			paths: []string{"/a/b", "/a"},
			want:  []string{"/a/b", "/a"},
		},
		{
			name:  "Equal length keeps input order",
			paths: []string{"/x", "/y", "/z"},
			want:  []string{"/x", "/y", "/z"},
		},
		{
			name:  "Trailing slash equals bare path",
			paths: []string{"/a", "/a/"},
			want:  []string{"/a", "/a/"},
		},
		{
			name:  "Empty path treated as root",
			paths: []string{"", "/a/b", "/"},
			want:  []string{"/a/b", "", "/"},
		},
	}

	for _, data := range tests {
		t.Run(data.name, func(t *testing.T) {
			cookies := make([]*specs.Cookie, len(data.paths))
			for i, path := range data.paths {
				cookies[i] = &specs.Cookie{Name: "c", Value: "v", Path: path}
			}

			ordered := sortedByPathSpecificity(cookies)
			for i, cookie := range ordered {
				if cookie.Path != data.want[i] {
					t.Fatalf("position %d = %q, want %q", i, cookie.Path, data.want[i])
				}
			}
			for i, cookie := range cookies {
				if cookie.Path != data.paths[i] {
					t.Fatalf("input slice reordered at %d: %q", i, cookie.Path)
				}
			}
		})
	}
}
