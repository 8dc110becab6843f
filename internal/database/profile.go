package database

import (
	"fmt"
	"time"
)

// ProfileFact is one fact about the persona or the user, grouped by category
// (e.g. "persona", "user", "preferences")
type ProfileFact struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Category  string    `json:"category"`
	Key       string    `json:"fact_key"`
	Value     string    `json:"fact_value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertProfileFact inserts or replaces a fact keyed by (user, category, key)
func (d *DB) UpsertProfileFact(userID int64, category, key, value string) error {
	_, err := d.Exec(`
		INSERT INTO profile_facts (user_id, category, fact_key, fact_value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, category, fact_key)
		DO UPDATE SET fact_value = excluded.fact_value, updated_at = CURRENT_TIMESTAMP
	`, userID, category, key, value)
	if err != nil {
		return fmt.Errorf("failed to upsert profile fact: %w", err)
	}
	return nil
}

// GetProfileFacts retrieves facts for a user, optionally filtered by category
func (d *DB) GetProfileFacts(userID int64, category string) ([]ProfileFact, error) {
	query := `
		SELECT id, user_id, category, fact_key, fact_value, updated_at
		FROM profile_facts
		WHERE user_id = ?
	`
	args := []any{userID}

	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}

	query += " ORDER BY category ASC, fact_key ASC"

	rows, err := d.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile facts: %w", err)
	}
	defer rows.Close()

	var facts []ProfileFact
	for rows.Next() {
		var f ProfileFact
		if err := rows.Scan(&f.ID, &f.UserID, &f.Category, &f.Key, &f.Value, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile fact: %w", err)
		}
		facts = append(facts, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile facts: %w", err)
	}

	return facts, nil
}
