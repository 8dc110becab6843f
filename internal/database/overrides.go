package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduleOverride is a temporary manual replacement of the schedule-derived
// status, created by the external planning subsystem. At most one override
// is active per user at a time.
type ScheduleOverride struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	PlanID         string    `json:"plan_id"`
	ActivityType   string    `json:"activity_type"`
	ActivityEmoji  string    `json:"activity_emoji"`
	ActivityText   string    `json:"activity_text"`
	ActivityDetail string    `json:"activity_detail"`
	ActivityColor  string    `json:"activity_color"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// GetActiveOverride returns the user's active override, or nil when none exists
func (d *DB) GetActiveOverride(userID int64) (*ScheduleOverride, error) {
	var o ScheduleOverride
	err := d.QueryRow(`
		SELECT id, user_id, plan_id, activity_type, activity_emoji, activity_text,
			activity_detail, activity_color, active, created_at
		FROM schedule_overrides
		WHERE user_id = ? AND active = 1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(
		&o.ID, &o.UserID, &o.PlanID, &o.ActivityType, &o.ActivityEmoji, &o.ActivityText,
		&o.ActivityDetail, &o.ActivityColor, &o.Active, &o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active override: %w", err)
	}

	return &o, nil
}

// SetOverride activates a new override for the user, deactivating any
// previous one in the same transaction. A missing plan id gets generated.
func (d *DB) SetOverride(o *ScheduleOverride) (*ScheduleOverride, error) {
	if o.PlanID == "" {
		o.PlanID = uuid.NewString()
	}

	tx, err := d.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin override update: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE schedule_overrides SET active = 0 WHERE user_id = ? AND active = 1`, o.UserID); err != nil {
		return nil, fmt.Errorf("failed to deactivate previous override: %w", err)
	}

	result, err := tx.Exec(`
		INSERT INTO schedule_overrides (
			user_id, plan_id, activity_type, activity_emoji, activity_text,
			activity_detail, activity_color, active
		) VALUES (?, ?, ?, ?, ?, ?, ?, 1)
	`, o.UserID, o.PlanID, o.ActivityType, o.ActivityEmoji, o.ActivityText, o.ActivityDetail, o.ActivityColor)
	if err != nil {
		return nil, fmt.Errorf("failed to create override: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get override id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit override update: %w", err)
	}

	o.ID = id
	o.Active = true
	o.CreatedAt = time.Now()

	return o, nil
}

// ClearOverride deactivates the user's active override, if any
func (d *DB) ClearOverride(userID int64) error {
	_, err := d.Exec(`UPDATE schedule_overrides SET active = 0 WHERE user_id = ? AND active = 1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear override: %w", err)
	}
	return nil
}
