package migrations

import (
	"database/sql"
)

func init() {
	Register(Migration{
		Version: 1,
		Name:    "initial_schema",
		Up:      initialSchema,
	})
}

func initialSchema(db *sql.DB) error {
	statements := []string{
		// Weekly schedule table: 7 days of ordered slots, replaced wholesale
		// per day by the editor save endpoint
		`CREATE TABLE IF NOT EXISTS schedule_slots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day_of_week INTEGER NOT NULL CHECK(day_of_week BETWEEN 0 AND 6),
			position INTEGER NOT NULL,
			time TEXT NOT NULL,
			activity TEXT NOT NULL,
			emoji TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL CHECK(type IN ('personal', 'class', 'studying', 'commute', 'free', 'sleep', 'break', 'university', 'church'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_schedule_slots_day ON schedule_slots(day_of_week, time)`,

		// Temporary deviations from the weekly schedule, at most one active per user
		`CREATE TABLE IF NOT EXISTS schedule_overrides (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			plan_id TEXT NOT NULL,
			activity_type TEXT NOT NULL,
			activity_emoji TEXT NOT NULL DEFAULT '',
			activity_text TEXT NOT NULL,
			activity_detail TEXT NOT NULL DEFAULT '',
			activity_color TEXT NOT NULL DEFAULT '',
			active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_schedule_overrides_user ON schedule_overrides(user_id, active)`,

		// Future plans detected in chat messages
		`CREATE TABLE IF NOT EXISTS future_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			event_description TEXT NOT NULL,
			event_type TEXT NOT NULL CHECK(event_type IN ('doing_activity', 'watching_movie', 'going_somewhere', 'meeting_someone')),
			time_frame TEXT NOT NULL CHECK(time_frame IN ('today', 'tomorrow', 'future')),
			planned_date TEXT NOT NULL,
			planned_time TEXT,
			status TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('pending', 'completed')),
			completed_at DATETIME,
			source_message_id INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_future_events_user_status ON future_events(user_id, status, planned_date)`,

		// Profile facts about the persona and the user, keyed by category
		`CREATE TABLE IF NOT EXISTS profile_facts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			category TEXT NOT NULL,
			fact_key TEXT NOT NULL,
			fact_value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, category, fact_key)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_profile_facts_category ON profile_facts(user_id, category)`,

		// Last resolved status per user, used to spot just-woken transitions
		`CREATE TABLE IF NOT EXISTS status_log (
			user_id INTEGER PRIMARY KEY,
			status_type TEXT NOT NULL,
			emoji TEXT NOT NULL DEFAULT '',
			text TEXT NOT NULL DEFAULT '',
			detail TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			is_override BOOLEAN NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Conversation history; the woken check reads the latest timestamp
		`CREATE TABLE IF NOT EXISTS conversations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			sender TEXT NOT NULL CHECK(sender IN ('user', 'misuki')),
			message_text TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversations_user_time ON conversations(user_id, timestamp DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
