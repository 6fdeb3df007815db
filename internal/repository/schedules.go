package repository

import (
	"database/sql"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (r *Repository) CreateScheduleEntry(entry *domain.ScheduleEntry) error {
	query := `
		INSERT INTO schedules (staff_name, shift_date, shift_time, department, phone_number, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	entry.CreatedAt = time.Now()
	args := []any{
		entry.StaffName, entry.ShiftDate, entry.ShiftTime, nullString(entry.Department),
		nullString(entry.PhoneNumber), nullString(entry.Note), entry.CreatedAt,
	}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.ID)
}

func (r *Repository) GetScheduleEntryByID(id int64) (*domain.ScheduleEntry, error) {
	query := `
		SELECT staff_name, shift_date, shift_time, department, phone_number, note, created_at
		FROM schedules WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	entry := &domain.ScheduleEntry{ID: id}
	var department, phone, note sql.NullString
	dst := []any{&entry.StaffName, &entry.ShiftDate, &entry.ShiftTime, &department, &phone, &note, &entry.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	entry.Department = department.String
	entry.PhoneNumber = phone.String
	entry.Note = note.String

	return entry, nil
}

// ListScheduleWeek returns all entries with shift_date in [weekStart,
// weekStart+7d), ordered for the week view.
func (r *Repository) ListScheduleWeek(weekStart string) ([]*domain.ScheduleEntry, error) {
	weekEnd, err := addDays(weekStart, 7)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, staff_name, shift_date, shift_time, department, phone_number, note, created_at
		FROM schedules
		WHERE shift_date >= ? AND shift_date < ?
		ORDER BY department, staff_name, shift_date
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ScheduleEntry, 0)
	for rows.Next() {
		entry := &domain.ScheduleEntry{}
		var department, phone, note sql.NullString
		dst := []any{&entry.ID, &entry.StaffName, &entry.ShiftDate, &entry.ShiftTime, &department, &phone, &note, &entry.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entry.Department = department.String
		entry.PhoneNumber = phone.String
		entry.Note = note.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *Repository) UpdateScheduleEntry(entry *domain.ScheduleEntry) error {
	query := `
		UPDATE schedules
		SET staff_name = ?, shift_date = ?, shift_time = ?, department = ?, phone_number = ?, note = ?
		WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{
		entry.StaffName, entry.ShiftDate, entry.ShiftTime, nullString(entry.Department),
		nullString(entry.PhoneNumber), nullString(entry.Note), entry.ID,
	}
	res, err := r.dbpool.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *Repository) DeleteScheduleEntry(id int64) error {
	query := `
		DELETE FROM schedules WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// InsertScheduleWeek persists a parsed week in one transaction. With replace
// set, every existing entry dated inside [weekStart, weekStart+7d) is deleted
// first so a re-upload fully supersedes the old week.
func (r *Repository) InsertScheduleWeek(weekStart string, entries []*domain.ScheduleEntry, replace bool) error {
	weekEnd, err := addDays(weekStart, 7)
	if err != nil {
		return err
	}

	ctx, cancel := r.txContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if replace {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM schedules WHERE shift_date >= ? AND shift_date < ?`,
			weekStart, weekEnd,
		); err != nil {
			return err
		}
	}

	now := time.Now()
	for _, entry := range entries {
		entry.CreatedAt = now
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO schedules (staff_name, shift_date, shift_time, department, phone_number, note, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING id
		`, entry.StaffName, entry.ShiftDate, entry.ShiftTime, nullString(entry.Department),
			nullString(entry.PhoneNumber), nullString(entry.Note), now,
		).Scan(&entry.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func addDays(day string, n int) (string, error) {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format("2006-01-02"), nil
}
