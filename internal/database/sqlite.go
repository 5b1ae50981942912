package database

// AUTOINCREMENT keeps mood and review ids from being reused after deletes.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		nickname TEXT NOT NULL,
		start_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		has_seen_guide BOOLEAN NOT NULL DEFAULT FALSE
	)`,

	`CREATE TABLE IF NOT EXISTS moods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		record_date TEXT NOT NULL,
		emotion_ids TEXT NOT NULL DEFAULT '[]',
		content TEXT NOT NULL DEFAULT '',
		ai_message TEXT NOT NULL DEFAULT '',
		recommendations TEXT NOT NULL DEFAULT '[]',
		timestamp_ms INTEGER NOT NULL,
		UNIQUE(user_id, record_date)
	)`,

	`CREATE TABLE IF NOT EXISTS period_reviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		period_type TEXT NOT NULL CHECK (period_type IN ('weekly', 'monthly')),
		period_key TEXT NOT NULL,
		content TEXT NOT NULL,
		last_mood_ts INTEGER,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(user_id, period_type, period_key)
	)`,

	`CREATE TABLE IF NOT EXISTS user_reminders (
		user_id TEXT PRIMARY KEY,
		reminder_time TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS idx_moods_user_id ON moods(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_period_reviews_user_id ON period_reviews(user_id)`,
}
