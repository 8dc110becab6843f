package database

import (
	"database/sql"
	"fmt"
	"time"
)

// EventStatus represents the lifecycle state of a future event
type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusCompleted EventStatus = "completed"
)

// EventType classifies a detected future event
type EventType string

const (
	EventTypeDoingActivity  EventType = "doing_activity"
	EventTypeWatchingMovie  EventType = "watching_movie"
	EventTypeGoingSomewhere EventType = "going_somewhere"
	EventTypeMeetingSomeone EventType = "meeting_someone"
)

// DateLayout is the storage format for planned_date.
// Dates are compared lexically, so the layout must sort chronologically.
const DateLayout = "2006-01-02"

// ClockLayout is the storage format for planned_time.
const ClockLayout = "15:04:05"

// FutureEvent represents a plan detected in a chat message
type FutureEvent struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id"`
	Description     string      `json:"event_description"`
	EventType       EventType   `json:"event_type"`
	TimeFrame       string      `json:"time_frame"`
	PlannedDate     string      `json:"planned_date"`
	PlannedTime     *string     `json:"planned_time,omitempty"`
	Status          EventStatus `json:"status"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	SourceMessageID *int64      `json:"source_message_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// CreatePendingEvent inserts a new future event with pending status
func (d *DB) CreatePendingEvent(event *FutureEvent) (*FutureEvent, error) {
	result, err := d.Exec(`
		INSERT INTO future_events (
			user_id, event_description, event_type, time_frame,
			planned_date, planned_time, status, source_message_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		event.UserID, event.Description, event.EventType, event.TimeFrame,
		event.PlannedDate, event.PlannedTime, EventStatusPending, event.SourceMessageID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create future event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get future event id: %w", err)
	}

	event.ID = id
	event.Status = EventStatusPending
	event.CreatedAt = time.Now()

	return event, nil
}

type eventScanner interface {
	Scan(dest ...any) error
}

func scanFutureEvent(scanner eventScanner) (*FutureEvent, error) {
	var event FutureEvent
	var plannedTimeNull sql.NullString
	var completedAtNull sql.NullTime
	var sourceMsgIDNull sql.NullInt64

	err := scanner.Scan(
		&event.ID, &event.UserID, &event.Description, &event.EventType, &event.TimeFrame,
		&event.PlannedDate, &plannedTimeNull, &event.Status, &completedAtNull,
		&sourceMsgIDNull, &event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if plannedTimeNull.Valid {
		event.PlannedTime = &plannedTimeNull.String
	}
	if completedAtNull.Valid {
		completedAt := completedAtNull.Time
		event.CompletedAt = &completedAt
	}
	if sourceMsgIDNull.Valid {
		event.SourceMessageID = &sourceMsgIDNull.Int64
	}

	return &event, nil
}

const futureEventColumns = `
	id, user_id, event_description, event_type, time_frame,
	planned_date, planned_time, status, completed_at,
	source_message_id, created_at
`

func (d *DB) queryEvents(query string, args ...any) ([]FutureEvent, error) {
	rows, err := d.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query future events: %w", err)
	}
	defer rows.Close()

	var events []FutureEvent
	for rows.Next() {
		event, err := scanFutureEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan future event: %w", err)
		}
		events = append(events, *event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating future events: %w", err)
	}

	return events, nil
}

// GetEventByID retrieves a future event by its ID
func (d *DB) GetEventByID(id int64) (*FutureEvent, error) {
	event, err := scanFutureEvent(d.QueryRow(`
		SELECT `+futureEventColumns+`
		FROM future_events
		WHERE id = ?
	`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get future event: %w", err)
	}
	return event, nil
}

// GetPendingEvents retrieves pending events planned for today or later,
// ordered by planned date then planned time ascending
func (d *DB) GetPendingEvents(userID int64, today string) ([]FutureEvent, error) {
	return d.queryEvents(`
		SELECT `+futureEventColumns+`
		FROM future_events
		WHERE user_id = ? AND status = ? AND planned_date >= ?
		ORDER BY planned_date ASC, (planned_time IS NULL) ASC, planned_time ASC
	`, userID, EventStatusPending, today)
}

// GetOverdueEvents retrieves pending events planned strictly before today,
// newest-planned-first
func (d *DB) GetOverdueEvents(userID int64, today string) ([]FutureEvent, error) {
	return d.queryEvents(`
		SELECT `+futureEventColumns+`
		FROM future_events
		WHERE user_id = ? AND status = ? AND planned_date < ?
		ORDER BY planned_date DESC
	`, userID, EventStatusPending, today)
}

// GetTodayEvents retrieves pending events planned for today whose planned
// time, if any, has not yet passed
func (d *DB) GetTodayEvents(userID int64, today, nowClock string) ([]FutureEvent, error) {
	return d.queryEvents(`
		SELECT `+futureEventColumns+`
		FROM future_events
		WHERE user_id = ? AND status = ? AND planned_date = ?
		  AND (planned_time IS NULL OR planned_time > ?)
		ORDER BY (planned_time IS NULL) ASC, planned_time ASC
	`, userID, EventStatusPending, today, nowClock)
}

// GetAllPendingEvents retrieves every pending event for a user regardless of
// planned date, oldest-created-first. Completion detection runs against this
// set so overdue plans can still be closed by a later message.
func (d *DB) GetAllPendingEvents(userID int64) ([]FutureEvent, error) {
	return d.queryEvents(`
		SELECT `+futureEventColumns+`
		FROM future_events
		WHERE user_id = ? AND status = ?
		ORDER BY created_at ASC
	`, userID, EventStatusPending)
}

// ListEvents retrieves events with optional status filtering
func (d *DB) ListEvents(userID int64, status *EventStatus) ([]FutureEvent, error) {
	query := `
		SELECT ` + futureEventColumns + `
		FROM future_events
		WHERE user_id = ?
	`
	args := []any{userID}

	if status != nil {
		query += " AND status = ?"
		args = append(args, *status)
	}

	query += " ORDER BY planned_date ASC, (planned_time IS NULL) ASC, planned_time ASC"

	return d.queryEvents(query, args...)
}

// CompleteEvent flips a pending event to completed.
// Returns true only when this call changed the row.
func (d *DB) CompleteEvent(id int64, completedAt time.Time) (bool, error) {
	result, err := d.Exec(`
		UPDATE future_events
		SET status = ?, completed_at = ?
		WHERE id = ? AND status = ?
	`, EventStatusCompleted, completedAt, id, EventStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to complete future event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// CompleteStaleEvents auto-completes pending events planned before the cutoff
// date and returns how many rows changed
func (d *DB) CompleteStaleEvents(userID int64, cutoff string, completedAt time.Time) (int64, error) {
	result, err := d.Exec(`
		UPDATE future_events
		SET status = ?, completed_at = ?
		WHERE user_id = ? AND status = ? AND planned_date < ?
	`, EventStatusCompleted, completedAt, userID, EventStatusPending, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to complete stale events: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rowsAffected, nil
}
