// Package extractor detects future plans mentioned in free-text chat
// messages. Detection is an ordered, first-match-wins cascade of regex
// rules; a message with no temporal intent simply yields no candidate.
package extractor

import (
	"regexp"
	"strings"
	"time"

	"github.com/tomoki/misuki/internal/timeutil"
)

// TimeFrame is the coarse bucket a detected plan falls into
type TimeFrame string

const (
	TimeFrameToday    TimeFrame = "today"
	TimeFrameTomorrow TimeFrame = "tomorrow"
	TimeFrameFuture   TimeFrame = "future"
)

// Candidate is a detected future plan, not yet persisted
type Candidate struct {
	Description string
	TimeFrame   TimeFrame
	PlannedDate time.Time
	PlannedTime string // "15:04:05", empty when the message gave no clock time
}

// rule pairs a pattern with the function that turns its submatches into a
// candidate. Rules are evaluated in order; the first one that both matches
// and extracts wins. Keeping them in a table keeps the priority auditable.
type rule struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string, now time.Time) *Candidate
}

const atTimeSuffix = `\s+at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`

var rules = []rule{
	{
		name: "at-time action verb",
		re:   regexp.MustCompile(`(?i)\b((?:pick(?:ing)?\s+up|meet(?:ing)?|going\s+to)\s+.+?)` + atTimeSuffix),
		extract: func(m []string, now time.Time) *Candidate {
			return atTimeCandidate(m[1], m[2], m[3], m[4], now)
		},
	},
	{
		name: "at-time future marker",
		re:   regexp.MustCompile(`(?i)\b(?:gonna|will)\s+(.+?)` + atTimeSuffix),
		extract: func(m []string, now time.Time) *Candidate {
			return atTimeCandidate(m[1], m[2], m[3], m[4], now)
		},
	},
	{
		name: "at-time catch-all",
		re:   regexp.MustCompile(`(?i)(\S+(?:\s+\S+)*?)` + atTimeSuffix),
		extract: func(m []string, now time.Time) *Candidate {
			desc := stripLeadingPronoun(cleanDescription(m[1]))
			if desc == "" || leadsWithStopVerb(desc) {
				return nil
			}
			return atTimeCandidate(desc, m[2], m[3], m[4], now)
		},
	},
	{
		name: "tomorrow then action",
		re:   regexp.MustCompile(`(?i)\btomorrow\s+(?:i'?ll|i\s+will|i'?m|i\s+am|gonna)\s+(?:gonna\s+)?([^.!?\n]+)`),
		extract: func(m []string, now time.Time) *Candidate {
			return dayCandidate(m[1], TimeFrameTomorrow, timeutil.Midnight(now).AddDate(0, 0, 1))
		},
	},
	{
		name: "action then tomorrow",
		re:   regexp.MustCompile(`(?i)(?:\b(?:i'?ll|i\s+will|i'?m|i\s+am)\s+)?(?:gonna\s+)?\b([a-z'][^.!?\n]*?)\s+tomorrow\b`),
		extract: func(m []string, now time.Time) *Candidate {
			return dayCandidate(m[1], TimeFrameTomorrow, timeutil.Midnight(now).AddDate(0, 0, 1))
		},
	},
	{
		name: "soon marker then action",
		re:   regexp.MustCompile(`(?i)\b(?:later|tonight|this\s+evening|this\s+afternoon)\s+(?:i'?m|i\s+am|i'?ll|i\s+will)\s+(?:gonna\s+)?([^.!?\n]+)`),
		extract: func(m []string, now time.Time) *Candidate {
			return dayCandidate(m[1], TimeFrameToday, timeutil.Midnight(now))
		},
	},
	{
		name: "action then soon marker",
		re:   regexp.MustCompile(`(?i)\b(?:i'?m|i\s+am|i'?ll|i\s+will)\s+(?:gonna\s+)?([^.!?\n]+?)\s+(?:later|tonight|this\s+evening|this\s+afternoon)\b`),
		extract: func(m []string, now time.Time) *Candidate {
			return dayCandidate(m[1], TimeFrameToday, timeutil.Midnight(now))
		},
	},
	{
		name: "weekday plan",
		re:   regexp.MustCompile(`(?i)\b(?:on|this)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\s+(?:i'?m|i\s+am|i'?ll|i\s+will)\s+(?:gonna\s+)?([^.!?\n]+)`),
		extract: func(m []string, now time.Time) *Candidate {
			target, ok := weekdays[strings.ToLower(m[1])]
			if !ok {
				return nil
			}
			return dayCandidate(m[2], TimeFrameFuture, timeutil.NextWeekday(now, target))
		},
	},
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// stopVerbs filters the catch-all "<anything> at <time>" rule: phrases led
// by these verbs describe location or state, not a plan ("I was staring at
// the wall at 3").
var stopVerbs = map[string]bool{
	"looking": true,
	"staring": true,
	"arrived": true,
	"was":     true,
	"were":    true,
	"am":      true,
	"is":      true,
	"are":     true,
}

// Detect scans a chat message for a future plan. The rules are tried in
// priority order; a rule whose resolved time has already passed is skipped
// and the cascade continues. nil means no plan was mentioned, not an error.
func Detect(message string, now time.Time) *Candidate {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil
	}

	for _, r := range rules {
		m := r.re.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		if c := r.extract(m, now); c != nil {
			return c
		}
	}

	return nil
}

func atTimeCandidate(desc, hourStr, minuteStr, marker string, now time.Time) *Candidate {
	at, frame, ok := resolveClockTime(hourStr, minuteStr, marker, now)
	if !ok {
		return nil
	}

	description := stripLeadingPronoun(cleanDescription(desc))
	if description == "" {
		return nil
	}

	return &Candidate{
		Description: description,
		TimeFrame:   frame,
		PlannedDate: timeutil.Midnight(at),
		PlannedTime: timeutil.ClockString(at),
	}
}

func dayCandidate(desc string, frame TimeFrame, date time.Time) *Candidate {
	description := stripLeadingPronoun(cleanDescription(desc))
	if description == "" {
		return nil
	}

	return &Candidate{
		Description: description,
		TimeFrame:   frame,
		PlannedDate: date,
	}
}

// cleanDescription lowercases, collapses whitespace, and trims trailing
// punctuation
func cleanDescription(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimRight(s, ".,!?;: ")
}

// pronounPrefixes are stripped from the front of a description so that
// "i'm gonna watch a movie" stores as "watch a movie". Longer prefixes
// come first.
var pronounPrefixes = []string{
	"i'm gonna ", "i am gonna ", "i'll ", "i will ", "i'm ", "i am ", "gonna ", "i ",
}

func stripLeadingPronoun(s string) string {
	for changed := true; changed; {
		changed = false
		for _, prefix := range pronounPrefixes {
			if strings.HasPrefix(s, prefix) {
				s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
				changed = true
			}
		}
	}
	return s
}

// leadsWithStopVerb checks the phrase's first two tokens against the
// stoplist, so both "was staring at..." and "we arrived at..." are rejected
func leadsWithStopVerb(s string) bool {
	fields := strings.Fields(s)
	for i, word := range fields {
		if i >= 2 {
			break
		}
		if stopVerbs[word] {
			return true
		}
	}
	return false
}
