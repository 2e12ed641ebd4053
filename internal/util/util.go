package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatDuration formats a travel time as "1h 1m 1s", omitting leading zero units.
// Sub-second remainders are truncated; zero and negative durations are "0s".
func FormatDuration(duration time.Duration) string {
	total := int64(duration / time.Second)
	if total <= 0 {
		return "0s"
	}

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	parts := make([]string, 0, 3)
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if h > 0 || m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	parts = append(parts, fmt.Sprintf("%ds", s))

	return strings.Join(parts, " ")
}

// FormatSeconds formats a duration given in seconds, as returned by routing APIs.
func FormatSeconds(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "0s"
	}

	return FormatDuration(time.Duration(seconds * float64(time.Second)))
}

// FormatDistance formats meters as "850 m" below one kilometer and "12.3 km" above.
func FormatDistance(meters float64) string {
	if math.IsNaN(meters) || meters <= 0 {
		return "0 m"
	}
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}

	return fmt.Sprintf("%.1f km", meters/1000)
}
