package utils

import (
	"testing"
	"time"
)

func TestParseFlexibleTime(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2025-06-01T10:30:00Z", true, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)},
		{"2025-06-01T10:30:00", true, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)},
		{"2025-06-01 10:30:00", true, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)},
		{"2025-06-01", true, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"not a date", false, time.Time{}},
		{"01/06/2025", false, time.Time{}},
	}

	for _, tc := range cases {
		got, ok := ParseFlexibleTime(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseFlexibleTime(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && !got.Equal(tc.want) {
			t.Fatalf("ParseFlexibleTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
