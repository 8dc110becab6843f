package timeutil

import (
	"time"
)

// DateLayout is the canonical date-only format used across the datastore.
const DateLayout = "2006-01-02"

// ClockLayout is the canonical time-of-day format used across the datastore.
const ClockLayout = "15:04:05"

var defaultLocation = time.UTC

// ResolveLocation returns the location for a timezone name with UTC fallback.
// The second return reports whether the fallback was used.
func ResolveLocation(timezone string) (*time.Location, bool) {
	if timezone == "" {
		return defaultLocation, true
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return defaultLocation, true
	}
	return loc, false
}

// Midnight truncates t to the start of its day, preserving the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateString formats t as a storage date.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ClockString formats t's time of day for storage.
func ClockString(t time.Time) string {
	return t.Format(ClockLayout)
}

// NextWeekday returns the next occurrence of the target weekday strictly
// after today, at midnight. A target equal to today's weekday means next week.
func NextWeekday(now time.Time, target time.Weekday) time.Time {
	days := (int(target) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return Midnight(now).AddDate(0, 0, days)
}
