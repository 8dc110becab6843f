package extractor

import (
	"strconv"
	"strings"
	"time"
)

// resolveClockTime turns an "at <time>" mention into a concrete timestamp.
// Hours are 1-12 or 0-23 with optional minutes and am/pm marker.
//
// Resolution rules:
//   - pm marker and hour < 12 adds 12; am marker and hour == 12 becomes 0.
//   - Bare "at 12" resolves to noon tomorrow when the current hour is
//     already past noon, otherwise noon today.
//   - A bare hour below 12 that has already passed today is assumed to
//     mean PM.
//
// A resolved time at or before now (outside the explicit tomorrow-noon case)
// is not a future plan; ok is false and the caller moves on to the next rule.
func resolveClockTime(hourStr, minuteStr, marker string, now time.Time) (at time.Time, frame TimeFrame, ok bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return time.Time{}, "", false
	}

	minute := 0
	if minuteStr != "" {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil || minute > 59 {
			return time.Time{}, "", false
		}
	}

	switch strings.ToLower(marker) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	default:
		if hour == 12 {
			if now.Hour() >= 12 {
				tomorrow := now.AddDate(0, 0, 1)
				at = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 12, minute, 0, 0, now.Location())
				return at, TimeFrameTomorrow, true
			}
		} else if hour < 12 {
			candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
			if !candidate.After(now) {
				hour += 12
			}
		}
	}

	at = time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now) {
		return time.Time{}, "", false
	}

	return at, TimeFrameToday, true
}
