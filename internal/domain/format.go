package domain

import (
	"fmt"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
	secondsPerMonth  = 30 * secondsPerDay
	secondsPerYear   = 365 * secondsPerDay
)

var durationUnits = []struct {
	seconds int64
	label   string
}{
	{secondsPerYear, "yrs"},
	{secondsPerMonth, "mths"},
	{secondsPerWeek, "wks"},
	{secondsPerDay, "dys"},
	{secondsPerHour, "hr"},
	{secondsPerMinute, "min"},
}

// FormatDuration renders seconds as a compact human string, e.g. "1 dys 2 hr 5 min".
// Months are 30 days and years 365 days. Zero units and leftover seconds are
// omitted; anything under a minute renders as "0 min".
func FormatDuration(seconds int64) string {
	if seconds < secondsPerMinute {
		return "0 min"
	}

	parts := make([]string, 0, len(durationUnits))
	remaining := seconds
	for _, u := range durationUnits {
		n := remaining / u.seconds
		remaining %= u.seconds
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, u.label))
		}
	}

	return strings.Join(parts, " ")
}

// FormatDistance renders meters as "850 m" below one kilometer and "12.3 km" above.
func FormatDistance(meters int64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}
