package time

import (
	"testing"
	"time"
)

func TestParseFlexibleTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-03-01T10:00:00Z", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"Fri, 1 Mar 2024 10:00:00 GMT", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"March 1, 2024", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got := ParseFlexibleTime(tt.input)
		if !got.Equal(tt.want) {
			t.Errorf("ParseFlexibleTime(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if !ParseFlexibleTime("not a date").IsZero() {
		t.Error("ParseFlexibleTime should return zero time for garbage")
	}
	if !ParseFlexibleTime("").IsZero() {
		t.Error("ParseFlexibleTime should return zero time for empty input")
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	if got := NormalizeTimestamp("2024-03-01T12:00:00+02:00"); got != "2024-03-01T10:00:00Z" {
		t.Errorf("NormalizeTimestamp = %q, want UTC RFC3339", got)
	}
	if got := NormalizeTimestamp("  yesterday "); got != "yesterday" {
		t.Errorf("NormalizeTimestamp = %q, want unchanged input", got)
	}
}

func TestFromUnix(t *testing.T) {
	if got := FromUnix(1700000000); !got.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("FromUnix = %v", got)
	}
	if !FromUnix(0).IsZero() {
		t.Error("FromUnix(0) should be zero")
	}
}
