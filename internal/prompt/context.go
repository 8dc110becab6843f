// Package prompt renders status descriptors, event lists, and profile facts
// into plain-text context blocks for the outer prompt-construction layer.
// Pure string assembly; the tense instructions here are the contract.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tomoki/misuki/internal/database"
	"github.com/tomoki/misuki/internal/status"
	"github.com/tomoki/misuki/internal/timeutil"
)

// BuildStatusContext renders the current status as an instruction block
func BuildStatusContext(desc *status.Descriptor) string {
	var b strings.Builder

	b.WriteString("## Current Status\n")
	if desc.Emoji != "" {
		fmt.Fprintf(&b, "Misuki is currently: %s %s", desc.Emoji, desc.Text)
	} else {
		fmt.Fprintf(&b, "Misuki is currently: %s", desc.Text)
	}
	if desc.Detail != "" {
		fmt.Fprintf(&b, " (%s)", desc.Detail)
	}
	b.WriteString("\n")

	if desc.IsOverride {
		b.WriteString("This is a temporary plan that replaces her normal schedule. Mention it naturally if asked what she's doing.\n")
	}
	if desc.WasWoken {
		b.WriteString("She was just woken up by this message. She should sound sleepy and a little disoriented at first.\n")
	}

	return b.String()
}

// BuildEventsContext renders the user's plans with explicit tense
// instructions: plans still ahead get future tense, overdue ones get an
// uncertain follow-up.
func BuildEventsContext(today, upcoming, overdue []database.FutureEvent, now time.Time) string {
	if len(today) == 0 && len(upcoming) == 0 && len(overdue) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## User's Plans\n")

	if len(today) > 0 {
		b.WriteString("Plans for today that have NOT happened yet. Speak about them in future tense (\"Have fun!\", not \"How was it?\"):\n")
		for _, ev := range today {
			fmt.Fprintf(&b, "- %s%s\n", ev.Description, eventTimeSuffix(ev))
		}
	}

	if len(upcoming) > 0 {
		b.WriteString("Upcoming plans:\n")
		for _, ev := range upcoming {
			fmt.Fprintf(&b, "- %s (%s)\n", ev.Description, relativeTime(ev, now))
		}
	}

	if len(overdue) > 0 {
		b.WriteString("Plans that should have happened but were never confirmed. Ask about them with uncertainty (\"Did you end up...?\"), don't assume they happened:\n")
		for _, ev := range overdue {
			fmt.Fprintf(&b, "- %s (planned %s)\n", ev.Description, relativeTime(ev, now))
		}
	}

	return b.String()
}

// BuildProfileContext renders profile facts grouped by category
func BuildProfileContext(facts []database.ProfileFact) string {
	if len(facts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Profile\n")

	lastCategory := ""
	for _, f := range facts {
		if f.Category != lastCategory {
			fmt.Fprintf(&b, "[%s]\n", f.Category)
			lastCategory = f.Category
		}
		fmt.Fprintf(&b, "- %s: %s\n", f.Key, f.Value)
	}

	return b.String()
}

// relativeTime phrases an event's planned moment relative to now ("2 days
// from now", "3 days ago"). Anchored on the caller's now, not the wall clock,
// so rendering is reproducible.
func relativeTime(ev database.FutureEvent, now time.Time) string {
	return humanize.RelTime(eventInstant(ev, now.Location()), now, "ago", "from now")
}

// eventTimeSuffix formats a today-event's clock time for display
func eventTimeSuffix(ev database.FutureEvent) string {
	if ev.PlannedTime == nil {
		return ""
	}
	return fmt.Sprintf(" at %s", (*ev.PlannedTime)[:5])
}

// eventInstant reconstructs an event's planned moment; date-only events
// count as noon so relative phrasing doesn't drift a day
func eventInstant(ev database.FutureEvent, loc *time.Location) time.Time {
	date, err := time.ParseInLocation(timeutil.DateLayout, ev.PlannedDate, loc)
	if err != nil {
		return time.Now()
	}
	if ev.PlannedTime != nil {
		if clock, err := time.Parse(timeutil.ClockLayout, *ev.PlannedTime); err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, loc)
		}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, loc)
}

// Builder assembles the combined context block for one user
type Builder struct {
	db       *database.DB
	resolver *status.Resolver
	localTZ  *time.Location
}

func NewBuilder(db *database.DB, resolver *status.Resolver, localTZ *time.Location) *Builder {
	return &Builder{db: db, resolver: resolver, localTZ: localTZ}
}

// Build renders status, plans, and profile into one context string
func (b *Builder) Build(userID int64, now time.Time) (string, error) {
	desc, err := b.resolver.Resolve(userID, now)
	if err != nil {
		return "", fmt.Errorf("failed to resolve status: %w", err)
	}

	localNow := now.In(b.localTZ)
	today := timeutil.DateString(localNow)

	todayEvents, err := b.db.GetTodayEvents(userID, today, timeutil.ClockString(localNow))
	if err != nil {
		return "", err
	}
	pending, err := b.db.GetPendingEvents(userID, today)
	if err != nil {
		return "", err
	}
	overdue, err := b.db.GetOverdueEvents(userID, today)
	if err != nil {
		return "", err
	}
	facts, err := b.db.GetProfileFacts(userID, "")
	if err != nil {
		return "", err
	}

	// Today's still-ahead events show in their own section, not twice
	upcoming := pending[:0:0]
	for _, ev := range pending {
		if ev.PlannedDate != today {
			upcoming = append(upcoming, ev)
		}
	}

	sections := []string{
		BuildStatusContext(desc),
		BuildEventsContext(todayEvents, upcoming, overdue, localNow),
		BuildProfileContext(facts),
	}

	var nonEmpty []string
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	return strings.Join(nonEmpty, "\n"), nil
}
