package utils

import "time"

// DB columns store epoch seconds; keep every write going through here.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// ParseFlexibleTime handles the date formats the automation pipeline is known
// to emit: RFC3339, date-only, and epoch-style "2006-01-02 15:04:05".
// Returns false when nothing matched so callers can fall back to now.
func ParseFlexibleTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
