package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Strava tokens (singleton row)
		`CREATE TABLE IF NOT EXISTS strava_tokens (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			athlete_id INTEGER NOT NULL,
			access_token TEXT NOT NULL,
			refresh_token TEXT NOT NULL,
			expires_at INTEGER NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Body-composition measurements (BIA entries and DEXA scans)
		`CREATE TABLE IF NOT EXISTS measurements (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			kind TEXT NOT NULL,
			lean_left_arm REAL NOT NULL DEFAULT 0,
			lean_right_arm REAL NOT NULL DEFAULT 0,
			lean_trunk REAL NOT NULL DEFAULT 0,
			lean_left_leg REAL NOT NULL DEFAULT 0,
			lean_right_leg REAL NOT NULL DEFAULT 0,
			weight_lbs REAL NOT NULL DEFAULT 0,
			body_fat_pct REAL NOT NULL DEFAULT 0,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_measurements_date ON measurements(date)`,

		// Lifting workouts (summary data from Hevy)
		`CREATE TABLE IF NOT EXISTS workouts (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			total_sets INTEGER NOT NULL DEFAULT 0,
			total_reps INTEGER NOT NULL DEFAULT 0,
			duration_minutes INTEGER NOT NULL DEFAULT 0,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date)`,

		// Per body-part aggregates within a workout
		`CREATE TABLE IF NOT EXISTS workout_body_parts (
			workout_id TEXT NOT NULL,
			body_part TEXT NOT NULL,
			sets INTEGER NOT NULL DEFAULT 0,
			reps INTEGER NOT NULL DEFAULT 0,
			volume_lbs REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (workout_id, body_part),
			FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
		)`,

		// Detailed per-set breakdown
		`CREATE TABLE IF NOT EXISTS workout_sets (
			workout_id TEXT NOT NULL,
			exercise TEXT NOT NULL,
			set_index INTEGER NOT NULL,
			weight_lbs REAL NOT NULL DEFAULT 0,
			reps INTEGER NOT NULL DEFAULT 0,
			set_type TEXT NOT NULL DEFAULT 'normal',
			PRIMARY KEY (workout_id, exercise, set_index),
			FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
		)`,

		// Running activities (from Strava)
		`CREATE TABLE IF NOT EXISTS activities (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			distance_miles REAL NOT NULL DEFAULT 0,
			duration_seconds INTEGER NOT NULL DEFAULT 0,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date)`,

		// Per-mile splits
		`CREATE TABLE IF NOT EXISTS activity_splits (
			activity_id TEXT NOT NULL,
			mile INTEGER NOT NULL,
			seconds REAL NOT NULL,
			PRIMARY KEY (activity_id, mile),
			FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
		)`,

		// Calendar events (inclusive day spans)
		`CREATE TABLE IF NOT EXISTS calendar_events (
			id TEXT PRIMARY KEY,
			owner TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT 'other',
			notes TEXT NOT NULL DEFAULT '',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_calendar_events_owner ON calendar_events(owner)`,
		`CREATE INDEX IF NOT EXISTS idx_calendar_events_start ON calendar_events(start_date)`,

		// Sync state (key-value store for sync tracking)
		`CREATE TABLE IF NOT EXISTS sync_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
