package cookiespec

import (
	"testing"

	"github.com/webmimic/cookiespec/specs"
)

func Test_pathHandler_Parse(t *testing.T) {
	handler := &pathHandler{}

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "Plain", value: "/docs", want: "/docs"},
		{name: "Blank defaults to root", value: "", want: "/"},
		{name: "Whitespace defaults to root", value: "  ", want: "/"},
		{name: "Whitespace trimmed", value: " /docs ", want: "/docs"},
	}

	for _, data := range tests {
		t.Run(data.name, func(t *testing.T) {
			cookie := &specs.Cookie{Name: "a", Value: "1"}
			if err := handler.Parse(cookie, data.value); err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if cookie.Path != data.want {
				t.Errorf("path = %q, want %q", cookie.Path, data.want)
			}
		})
	}
}

func Test_pathHandler_Match(t *testing.T) {
	tests := []struct {
		name       string
		quirks     Quirks
		cookiePath string
		originPath string
		want       bool
	}{
		{name: "Root matches everything", cookiePath: "/", originPath: "/a/b", want: true},
		{name: "Exact", cookiePath: "/a", originPath: "/a", want: true},
		{name: "Segment prefix", cookiePath: "/a", originPath: "/a/b", want: true},
		{name: "Trailing slash normalized", cookiePath: "/a/", originPath: "/a/b", want: true},
		{name: "Strict refuses partial segment", cookiePath: "/a", originPath: "/ab", want: false},
		{
			name:       "Lenient accepts plain prefix",
			quirks:     Quirks{LenientPathMatching: true},
			cookiePath: "/a",
			originPath: "/ab",
			want:       true,
		},
		{name: "Unrelated path", cookiePath: "/a", originPath: "/b", want: false},
		{name: "Empty origin path treated as root", cookiePath: "/", originPath: "", want: true},
		{name: "Empty cookie path treated as root", cookiePath: "", originPath: "/a", want: true},
	}

	for _, data := range tests {
		t.Run(data.name, func(t *testing.T) {
			handler := &pathHandler{quirks: data.quirks}
			cookie := &specs.Cookie{Name: "a", Value: "1", Path: data.cookiePath}
			origin := &specs.CookieOrigin{Host: "example.com", Path: data.originPath}
			if got := handler.Match(cookie, origin); got != data.want {
				t.Errorf("Match() = %v, want %v", got, data.want)
			}
		})
	}
}

func Test_pathHandler_Validate(t *testing.T) {
	origin := &specs.CookieOrigin{Host: "example.com", Path: "/a"}

	t.Run("Strict rejects unrelated path", func(t *testing.T) {
		handler := &pathHandler{}
		cookie := &specs.Cookie{Name: "a", Value: "1", Path: "/x"}
		err := handler.Validate(cookie, origin)
		if err == nil {
			t.Fatal("expected error")
		}
		if !specs.IsMalformedCookie(err) {
			t.Errorf("expected malformed cookie kind, got %v", err)
		}
	})

	t.Run("Strict accepts matching path", func(t *testing.T) {
		handler := &pathHandler{}
		cookie := &specs.Cookie{Name: "a", Value: "1", Path: "/"}
		if err := handler.Validate(cookie, origin); err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
	})

	t.Run("Lenient never fails", func(t *testing.T) {
		handler := &pathHandler{quirks: Quirks{LenientPathMatching: true}}
		cookie := &specs.Cookie{Name: "a", Value: "1", Path: "/x"}
		if err := handler.Validate(cookie, origin); err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
	})
}
