// ABOUTME: Duration formatting utilities for logs and diagnostics
// ABOUTME: Renders cache TTLs and ages as short human-readable strings

package duration

import (
	"fmt"
	"strings"
	"time"
)

// SecondsToHumanReadable converts seconds to a human-readable format
func SecondsToHumanReadable(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d seconds", seconds)
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	parts := []string{}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour", hours))
		if hours > 1 {
			parts[len(parts)-1] += "s"
		}
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute", minutes))
		if minutes > 1 {
			parts[len(parts)-1] += "s"
		}
	}

	return strings.Join(parts, " ")
}

// Humanize renders d rounded down to whole seconds
func Humanize(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	return SecondsToHumanReadable(int(d / time.Second))
}
