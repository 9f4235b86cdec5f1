package parsing

import (
	"strings"
	"time"
)

// Expiry date layouts observed in the wild. RFC 1123 is the only sanctioned
// format; everything after the first three covers legacy Netscape-era servers
// that browsers still accept.
var defaultDateLayouts = []string{
	time.RFC1123,                     // Mon, 02 Jan 2006 15:04:05 MST
	"Monday, 02-Jan-06 15:04:05 MST", // RFC 1036
	time.ANSIC,                       // Mon Jan _2 15:04:05 2006
	"Mon, 02-Jan-2006 15:04:05 MST",
	"Mon, 02-Jan-06 15:04:05 MST",
	"Mon, 02 Jan 06 15:04:05 MST",
	"Mon 02-Jan-2006 15:04:05 MST",
	"Mon 02 Jan 2006 15:04:05 MST",
	"Mon 02-Jan-06 15:04:05 MST",
	"Mon 02 Jan 06 15:04:05 MST",
	"Mon,02-Jan-06 15:04:05 MST",
	"Mon,02-Jan-2006 15:04:05 MST",
	"Mon, 02-01-2006 15:04:05 MST",
}

// Additional layouts some engines accept: missing weekday, numeric offsets,
// missing zone.
var extendedDateLayouts = []string{
	"02 Jan 2006 15:04:05 MST",
	"02-Jan-2006 15:04:05 MST",
	"02 Jan 06 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 02-Jan-2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05",
	"02 Jan 2006 15:04:05",
}

// ParseDate parses a cookie expiry date, trying each known legacy layout in
// order. extended additionally enables the layouts only some browsers accept.
// The result is normalized to UTC.
func ParseDate(text string, extended bool) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range defaultDateLayouts {
		if date, err := time.Parse(layout, text); err == nil {
			return date.UTC(), true
		}
	}
	if extended {
		for _, layout := range extendedDateLayouts {
			if date, err := time.Parse(layout, text); err == nil {
				return date.UTC(), true
			}
		}
	}
	return time.Time{}, false
}
