// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Six tables: players, sessions, attendance, video_notes, metrics, parent_msgs.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		level TEXT,
		position TEXT,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		session_date DATE NOT NULL,
		team TEXT,
		title TEXT,
		duration_minutes INTEGER,
		focus TEXT,
		plan_json TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		player_id TEXT NOT NULL,
		present INTEGER NOT NULL,
		intensity INTEGER,
		mood INTEGER,
		memo TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(session_id, player_id)
	);

	CREATE TABLE IF NOT EXISTS video_notes (
		id TEXT PRIMARY KEY,
		note_date DATE NOT NULL,
		game TEXT,
		team TEXT,
		segment TEXT,
		clock TEXT,
		category TEXT NOT NULL,
		players TEXT,
		note TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS metrics (
		id TEXT PRIMARY KEY,
		metric_date DATE NOT NULL,
		metric_type TEXT NOT NULL,
		player TEXT NOT NULL,
		made INTEGER,
		attempt INTEGER,
		percent REAL,
		grade TEXT,
		memo TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS parent_msgs (
		id TEXT PRIMARY KEY,
		msg_date DATE NOT NULL,
		player TEXT NOT NULL,
		from_who TEXT,
		message TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(session_date DESC);
	CREATE INDEX IF NOT EXISTS idx_attendance_session ON attendance(session_id);
	CREATE INDEX IF NOT EXISTS idx_notes_date ON video_notes(note_date DESC);
	CREATE INDEX IF NOT EXISTS idx_notes_category ON video_notes(category);
	CREATE INDEX IF NOT EXISTS idx_metrics_date ON metrics(metric_date DESC);
	CREATE INDEX IF NOT EXISTS idx_metrics_player ON metrics(player, metric_type);
	CREATE INDEX IF NOT EXISTS idx_msgs_date ON parent_msgs(msg_date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
