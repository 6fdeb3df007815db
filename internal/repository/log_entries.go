package repository

import (
	"database/sql"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (r *Repository) CreateLogEntry(entry *domain.LogEntry) error {
	query := `
		INSERT INTO log_entries (created_at, author_name, note, related_record_id,
			related_maintenance_id, is_system_event, shift_id, shift_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	entry.CreatedAt = time.Now()
	args := []any{
		entry.CreatedAt, entry.AuthorName, entry.Note, entry.RelatedRecordID,
		entry.RelatedMaintenanceID, entry.IsSystemEvent, entry.ShiftID, entry.ShiftDate,
	}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.ID)
}

// ListLogEntriesByShiftDate returns the notes of one logical shift date,
// grouped by shift in the order they were written.
func (r *Repository) ListLogEntriesByShiftDate(shiftDate string) ([]*domain.LogEntry, error) {
	query := `
		SELECT id, created_at, author_name, note, related_record_id,
			related_maintenance_id, is_system_event, shift_id, shift_date
		FROM log_entries WHERE shift_date = ?
		ORDER BY shift_id, created_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, shiftDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLogEntries(rows)
}

func (r *Repository) ListRecentLogEntries(limit int) ([]*domain.LogEntry, error) {
	query := `
		SELECT id, created_at, author_name, note, related_record_id,
			related_maintenance_id, is_system_event, shift_id, shift_date
		FROM log_entries
		ORDER BY created_at DESC
		LIMIT ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLogEntries(rows)
}

func scanLogEntries(rows *sql.Rows) ([]*domain.LogEntry, error) {
	entries := make([]*domain.LogEntry, 0)
	for rows.Next() {
		entry := &domain.LogEntry{}
		dst := []any{
			&entry.ID, &entry.CreatedAt, &entry.AuthorName, &entry.Note, &entry.RelatedRecordID,
			&entry.RelatedMaintenanceID, &entry.IsSystemEvent, &entry.ShiftID, &entry.ShiftDate,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
