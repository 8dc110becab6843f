package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// StatusRecord is the last resolved status for a user. Only the most recent
// record is kept; it exists to spot sleep-to-awake transitions.
type StatusRecord struct {
	UserID     int64     `json:"user_id"`
	StatusType string    `json:"status_type"`
	Emoji      string    `json:"emoji"`
	Text       string    `json:"text"`
	Detail     string    `json:"detail"`
	Color      string    `json:"color"`
	IsOverride bool      `json:"is_override"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpsertStatusRecord replaces the user's last-seen status
func (d *DB) UpsertStatusRecord(rec *StatusRecord) error {
	_, err := d.Exec(`
		INSERT INTO status_log (user_id, status_type, emoji, text, detail, color, is_override)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id)
		DO UPDATE SET
			status_type = excluded.status_type,
			emoji = excluded.emoji,
			text = excluded.text,
			detail = excluded.detail,
			color = excluded.color,
			is_override = excluded.is_override,
			updated_at = CURRENT_TIMESTAMP
	`, rec.UserID, rec.StatusType, rec.Emoji, rec.Text, rec.Detail, rec.Color, rec.IsOverride)
	if err != nil {
		return fmt.Errorf("failed to upsert status record: %w", err)
	}
	return nil
}

// GetStatusRecord retrieves the user's last-seen status, or nil when the user
// has never been resolved
func (d *DB) GetStatusRecord(userID int64) (*StatusRecord, error) {
	var rec StatusRecord
	err := d.QueryRow(`
		SELECT user_id, status_type, emoji, text, detail, color, is_override, updated_at
		FROM status_log
		WHERE user_id = ?
	`, userID).Scan(
		&rec.UserID, &rec.StatusType, &rec.Emoji, &rec.Text, &rec.Detail,
		&rec.Color, &rec.IsOverride, &rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get status record: %w", err)
	}

	return &rec, nil
}
