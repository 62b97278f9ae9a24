package journal

import (
	"strings"
	"time"
)

// isoLayouts are the accepted payload timestamp layouts, tried in order.
// Offset-less values are interpreted as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeUTC converts a timestamp to UTC so that values carrying different
// zone offsets never reach a bare subtraction. All duration arithmetic in
// the engine goes through this first.
func NormalizeUTC(t time.Time) time.Time {
	return t.UTC()
}

// ParseISO parses an ISO-8601 timestamp from an event payload. A trailing Z
// is treated as a +00:00 offset. Returns false for anything unparseable;
// malformed payload values are absence, not errors.
func ParseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NormalizeUTC(t), true
		}
	}
	return time.Time{}, false
}
