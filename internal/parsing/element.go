package parsing

import (
	"strings"
)

// Param is a single attribute of a cookie element, e.g. "Path=/".
type Param struct {
	Name  string
	Value string
}

// Element is one cookie of a Set-Cookie header: the leading name=value
// pair plus its trailing attributes.
type Element struct {
	Name   string
	Value  string
	Params []Param
}

// ParseElements splits a Set-Cookie header value into cookie elements.
//
// Headers carrying an "expires" attribute are Netscape-style and always hold
// a single cookie, because Netscape dates contain commas. Otherwise top-level
// commas separate sibling cookies, RFC 2109 style. Semicolons separate
// attributes. Neither delimiter splits inside double quotes.
//
// Surrounding double quotes are stripped from parsed values, matching the
// token/quoted-string handling of the generic header grammar. Callers that
// need quote-preserving cookie values must restore them afterwards.
func ParseElements(text string) []Element {
	var chunks []string
	if containsFold(text, "expires=") {
		chunks = []string{text}
	} else {
		chunks = splitUnquoted(text, ',')
	}

	var elements []Element
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		pieces := splitUnquoted(chunk, ';')

		name, value := cutPair(pieces[0])
		element := Element{Name: name, Value: value}

		for _, piece := range pieces[1:] {
			if strings.TrimSpace(piece) == "" {
				continue
			}
			pname, pvalue := cutPair(piece)
			element.Params = append(element.Params, Param{Name: pname, Value: pvalue})
		}

		elements = append(elements, element)
	}
	return elements
}

// splitUnquoted splits text on sep, treating sep as literal inside
// double quotes.
func splitUnquoted(text string, sep byte) []string {
	var parts []string
	var quoted bool
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			quoted = !quoted
		case sep:
			if !quoted {
				parts = append(parts, text[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, text[start:])
}

// cutPair splits "name=value" around the first unquoted '=',
// trims whitespace and unwraps a fully quoted value.
func cutPair(piece string) (string, string) {
	idx := strings.IndexByte(piece, '=')
	if idx < 0 {
		return strings.TrimSpace(piece), ""
	}
	name := strings.TrimSpace(piece[:idx])
	value := strings.TrimSpace(piece[idx+1:])
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return name, value
}

func containsFold(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), substr)
}
