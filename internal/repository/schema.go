package repository

import "time"

// schemaVersion bumps whenever a statement below changes shape.
const schemaVersion = 1

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL CHECK(role IN ('manager','front_desk','night_audit')),
		is_active INTEGER NOT NULL DEFAULT 1,
		force_password_change INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		version INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guest_name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active' CHECK(status IN ('active','expired','lifted')),
		ban_type TEXT NOT NULL CHECK(ban_type IN ('temporary','permanent')),
		reasons TEXT NOT NULL,
		reason_detail TEXT,
		date_added TEXT NOT NULL,
		incident_date TEXT,
		expiration_type TEXT,
		expiration_date TEXT,
		lifted_date TEXT,
		lifted_type TEXT,
		lifted_reason TEXT,
		lifted_initials TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_records_guest_name ON records(guest_name)`,
	`CREATE INDEX IF NOT EXISTS idx_records_status ON records(status)`,

	`CREATE TABLE IF NOT EXISTS timeline_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		record_id INTEGER NOT NULL REFERENCES records(id),
		entry_date TEXT NOT NULL,
		staff_initials TEXT,
		note TEXT NOT NULL,
		is_system INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_timeline_record ON timeline_entries(record_id)`,

	`CREATE TABLE IF NOT EXISTS photos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		record_id INTEGER NOT NULL REFERENCES records(id),
		filename TEXT NOT NULL,
		original_name TEXT,
		upload_date TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_photos_record ON photos(record_id)`,

	`CREATE TABLE IF NOT EXISTS maintenance_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		location TEXT,
		priority TEXT NOT NULL DEFAULT 'medium' CHECK(priority IN ('low','medium','high','urgent')),
		status TEXT NOT NULL DEFAULT 'open' CHECK(status IN ('open','in_progress','blocked','completed')),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP,
		completed_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_status ON maintenance_items(status)`,

	`CREATE TABLE IF NOT EXISTS room_issues (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_number TEXT NOT NULL,
		issue_type TEXT NOT NULL DEFAULT 'Other' CHECK(issue_type IN ('Hot Water','HVAC','Plumbing','Other')),
		status TEXT NOT NULL CHECK(status IN ('out_of_order','use_if_needed')),
		note TEXT,
		state TEXT NOT NULL DEFAULT 'active' CHECK(state IN ('active','resolved')),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP,
		resolved_at TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS log_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TIMESTAMP NOT NULL,
		author_name TEXT NOT NULL,
		note TEXT NOT NULL,
		related_record_id INTEGER REFERENCES records(id),
		related_maintenance_id INTEGER REFERENCES maintenance_items(id),
		is_system_event INTEGER NOT NULL DEFAULT 0,
		shift_id INTEGER NOT NULL CHECK(shift_id IN (1,2,3)),
		shift_date TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_log_entries_shift_date ON log_entries(shift_date)`,

	`CREATE TABLE IF NOT EXISTS housekeeping_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_number TEXT NOT NULL,
		guest_name TEXT,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		frequency TEXT NOT NULL DEFAULT 'every_3rd_day' CHECK(frequency IN ('none','every_3rd_day','daily','custom')),
		frequency_days INTEGER,
		notes TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP,
		archived_at TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS housekeeping_service_dates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id INTEGER NOT NULL REFERENCES housekeeping_requests(id) ON DELETE CASCADE,
		service_date TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS idx_service_dates_request ON housekeeping_service_dates(request_id)`,

	`CREATE TABLE IF NOT EXISTS wakeup_calls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_number TEXT NOT NULL,
		call_date TEXT NOT NULL,
		call_time TEXT NOT NULL,
		request_source TEXT,
		status TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('pending','completed','failed','cancelled')),
		logged_by_user_id INTEGER REFERENCES users(id),
		completed_by_user_id INTEGER REFERENCES users(id),
		outcome_note TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_wakeup_date_time ON wakeup_calls(call_date, call_time)`,
	`CREATE INDEX IF NOT EXISTS idx_wakeup_status ON wakeup_calls(status)`,

	`CREATE TABLE IF NOT EXISTS schedules (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		staff_name TEXT NOT NULL,
		shift_date TEXT NOT NULL,
		shift_time TEXT NOT NULL,
		department TEXT,
		phone_number TEXT,
		note TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_date ON schedules(shift_date)`,

	`CREATE TABLE IF NOT EXISTS schedule_uploads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		file_path TEXT NOT NULL,
		week_start_date TEXT NOT NULL,
		uploaded_by_user_id INTEGER REFERENCES users(id),
		uploaded_at TIMESTAMP NOT NULL,
		parsed_entries_count INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('pending','confirmed','cancelled'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_uploads_week ON schedule_uploads(week_start_date)`,

	`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL,
		applied_at TIMESTAMP NOT NULL
	)`,
}

// Migrate creates any missing tables and records the schema version. All
// statements are idempotent, so running it at every startup is safe.
func (r *Repository) Migrate() error {
	ctx, cancel := r.txContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_version`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_version (version, applied_at) VALUES (?, ?)`,
			schemaVersion, time.Now(),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
