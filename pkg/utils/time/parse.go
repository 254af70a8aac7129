// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Normalizes published dates found in meta tags, JSON APIs and feeds

package time

import (
	"strings"
	"time"
)

// Common time formats found in meta tags and RSS/Atom feeds
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// Returns the zero time when nothing matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// NormalizeTimestamp rewrites a recognised timestamp as RFC 3339 in UTC.
// Unrecognised input is returned trimmed but otherwise unchanged.
func NormalizeTimestamp(timeStr string) string {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed.UTC().Format(time.RFC3339)
	}
	return strings.TrimSpace(timeStr)
}

// FromUnix converts epoch seconds as used by JSON APIs
func FromUnix(seconds int64) time.Time {
	if seconds <= 0 {
		return time.Time{}
	}
	return time.Unix(seconds, 0).UTC()
}
