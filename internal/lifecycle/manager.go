// Package lifecycle manages detected future events from first save through
// completion: dedup on save, type classification, pending/overdue/today
// views, completion detection from later messages, and the stale sweep.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomoki/misuki/internal/database"
	"github.com/tomoki/misuki/internal/extractor"
	"github.com/tomoki/misuki/internal/timeutil"
)

// DefaultStaleDays is the age threshold for the stale sweep backstop.
const DefaultStaleDays = 7

// Manager wraps the event store with lifecycle rules
type Manager struct {
	db *database.DB
}

func NewManager(db *database.DB) *Manager {
	return &Manager{db: db}
}

// typeKeywords maps descriptions to event types by keyword scan, checked in
// order: the first group with a hit wins.
var typeKeywords = []struct {
	eventType database.EventType
	keywords  []string
}{
	{database.EventTypeWatchingMovie, []string{"watch", "see", "viewing", "movie", "film"}},
	{database.EventTypeGoingSomewhere, []string{"go to", "going to", "visit", "trip", "travel"}},
	{database.EventTypeMeetingSomeone, []string{"meet", "hang out", "pick up", "picking up"}},
}

// ClassifyEventType buckets a description into an event type
func ClassifyEventType(description string) database.EventType {
	desc := strings.ToLower(description)
	for _, group := range typeKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(desc, kw) {
				return group.eventType
			}
		}
	}
	return database.EventTypeDoingActivity
}

// Save persists a detected candidate as a pending event. It returns false
// without writing when the description is empty or when a pending, non-past
// event for the user already covers it (case-insensitive substring match in
// either direction). The dedup is a best-effort read-then-write heuristic,
// not a uniqueness guarantee: two near-simultaneous identical detections may
// both insert.
func (m *Manager) Save(userID int64, candidate *extractor.Candidate, sourceMessageID *int64, now time.Time) (bool, error) {
	if candidate == nil || strings.TrimSpace(candidate.Description) == "" {
		return false, nil
	}

	desc := strings.ToLower(strings.TrimSpace(candidate.Description))

	existing, err := m.db.GetPendingEvents(userID, timeutil.DateString(now))
	if err != nil {
		return false, fmt.Errorf("failed to check pending events: %w", err)
	}
	for _, ev := range existing {
		known := strings.ToLower(ev.Description)
		if strings.Contains(desc, known) || strings.Contains(known, desc) {
			return false, nil
		}
	}

	event := &database.FutureEvent{
		UserID:          userID,
		Description:     desc,
		EventType:       ClassifyEventType(desc),
		TimeFrame:       string(candidate.TimeFrame),
		PlannedDate:     timeutil.DateString(candidate.PlannedDate),
		SourceMessageID: sourceMessageID,
	}
	if candidate.PlannedTime != "" {
		plannedTime := candidate.PlannedTime
		event.PlannedTime = &plannedTime
	}

	if _, err := m.db.CreatePendingEvent(event); err != nil {
		return false, err
	}

	return true, nil
}

// ListPending returns pending events planned for today or later
func (m *Manager) ListPending(userID int64, now time.Time) ([]database.FutureEvent, error) {
	return m.db.GetPendingEvents(userID, timeutil.DateString(now))
}

// ListOverdue returns pending events whose planned date has passed
func (m *Manager) ListOverdue(userID int64, now time.Time) ([]database.FutureEvent, error) {
	return m.db.GetOverdueEvents(userID, timeutil.DateString(now))
}

// ListToday returns today's pending events whose time has not yet passed
func (m *Manager) ListToday(userID int64, now time.Time) ([]database.FutureEvent, error) {
	return m.db.GetTodayEvents(userID, timeutil.DateString(now), timeutil.ClockString(now))
}

// MarkCompleted flips a pending event to completed
func (m *Manager) MarkCompleted(eventID int64, now time.Time) error {
	changed, err := m.db.CompleteEvent(eventID, now)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("event %d is not pending", eventID)
	}
	return nil
}

// SweepStale auto-completes pending events older than daysOld. A backstop
// against never-resolved events accumulating; touches nothing newer.
func (m *Manager) SweepStale(userID int64, daysOld int, now time.Time) (int64, error) {
	if daysOld <= 0 {
		daysOld = DefaultStaleDays
	}
	cutoff := timeutil.DateString(now.AddDate(0, 0, -daysOld))
	return m.db.CompleteStaleEvents(userID, cutoff, now)
}
