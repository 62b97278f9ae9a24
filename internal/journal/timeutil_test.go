package journal

import (
	"testing"
	"time"
)

func TestParseISO(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"rfc3339 zulu", "2026-09-01T07:30:00Z", time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC), true},
		{"rfc3339 offset", "2026-09-01T09:30:00+02:00", time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC), true},
		{"no offset reads as utc", "2026-09-01T07:30:00", time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC), true},
		{"minute precision", "2026-09-01T07:30", time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC), true},
		{"date only", "2026-09-01", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), true},
		{"whitespace trimmed", "  2026-09-01T07:30:00Z  ", time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "not-a-time", time.Time{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseISO(tc.in)
			if ok != tc.ok {
				t.Fatalf("ParseISO(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("ParseISO(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeUTC(t *testing.T) {
	zone := time.FixedZone("CEST", 2*60*60)
	local := time.Date(2026, 9, 1, 9, 30, 0, 0, zone)
	got := NormalizeUTC(local)
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", got.Location())
	}
	if got.Hour() != 7 {
		t.Errorf("expected 07:30 UTC, got %v", got)
	}
}
