package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ConversationMessage is one stored chat message
type ConversationMessage struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Sender      string    `json:"sender"`
	MessageText string    `json:"message_text"`
	Timestamp   time.Time `json:"timestamp"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateConversationMessage stores a chat message and returns its ID
func (d *DB) CreateConversationMessage(userID int64, sender, text string, timestamp time.Time) (int64, error) {
	result, err := d.Exec(`
		INSERT INTO conversations (user_id, sender, message_text, timestamp)
		VALUES (?, ?, ?, ?)
	`, userID, sender, text, timestamp)
	if err != nil {
		return 0, fmt.Errorf("failed to create conversation message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get conversation message id: %w", err)
	}

	return id, nil
}

// GetLatestUserMessageTime returns the timestamp of the user's most recent
// message, or nil when no messages are stored
func (d *DB) GetLatestUserMessageTime(userID int64) (*time.Time, error) {
	var ts time.Time
	err := d.QueryRow(`
		SELECT timestamp
		FROM conversations
		WHERE user_id = ? AND sender = 'user'
		ORDER BY timestamp DESC
		LIMIT 1
	`, userID).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest message time: %w", err)
	}

	return &ts, nil
}

// GetRecentMessages retrieves the user's most recent messages, newest first
func (d *DB) GetRecentMessages(userID int64, limit int) ([]ConversationMessage, error) {
	if limit <= 0 {
		limit = 25
	}

	rows, err := d.Query(`
		SELECT id, user_id, sender, message_text, timestamp, created_at
		FROM conversations
		WHERE user_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent messages: %w", err)
	}
	defer rows.Close()

	var messages []ConversationMessage
	for rows.Next() {
		var m ConversationMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Sender, &m.MessageText, &m.Timestamp, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversation messages: %w", err)
	}

	return messages, nil
}
