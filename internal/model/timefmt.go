package model

import "fmt"

// Hour in milliseconds; durations at or above it switch the label to hh:mm:ss
const HourMs int64 = 3600 * 1000

// TimeLabelSeparator separates position and duration in the time label
const TimeLabelSeparator = " / "

// FormatClock formats milliseconds as mm:ss, or hh:mm:ss when withHours is set.
// Negative values are treated as zero.
func FormatClock(ms int64, withHours bool) string {
	if ms < 0 {
		ms = 0
	}
	totalSec := ms / 1000
	hours := totalSec / 3600
	minutes := (totalSec % 3600) / 60
	seconds := totalSec % 60

	if withHours {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatTimeLabel returns "position / duration". Both sides use mm:ss when the
// duration is below one hour and hh:mm:ss otherwise.
func FormatTimeLabel(positionMs, durationMs int64) string {
	withHours := durationMs >= HourMs
	return FormatClock(positionMs, withHours) + TimeLabelSeparator + FormatClock(durationMs, withHours)
}
