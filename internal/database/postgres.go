package database

// postgresSchema mirrors sqliteSchema. Cascades are done explicitly by the
// services, so no foreign keys are declared.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		nickname TEXT NOT NULL,
		start_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		has_seen_guide BOOLEAN NOT NULL DEFAULT FALSE
	)`,

	`CREATE TABLE IF NOT EXISTS moods (
		id BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		record_date TEXT NOT NULL,
		emotion_ids TEXT NOT NULL DEFAULT '[]',
		content TEXT NOT NULL DEFAULT '',
		ai_message TEXT NOT NULL DEFAULT '',
		recommendations TEXT NOT NULL DEFAULT '[]',
		timestamp_ms BIGINT NOT NULL,
		UNIQUE(user_id, record_date)
	)`,

	`CREATE TABLE IF NOT EXISTS period_reviews (
		id BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		period_type TEXT NOT NULL CHECK (period_type IN ('weekly', 'monthly')),
		period_key TEXT NOT NULL,
		content TEXT NOT NULL,
		last_mood_ts BIGINT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE(user_id, period_type, period_key)
	)`,

	`CREATE TABLE IF NOT EXISTS user_reminders (
		user_id TEXT PRIMARY KEY,
		reminder_time TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_moods_user_id ON moods(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_period_reviews_user_id ON period_reviews(user_id)`,
}
