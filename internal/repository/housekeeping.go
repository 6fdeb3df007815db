package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

// CreateHousekeepingRequest inserts the request and materializes its service
// dates in one transaction.
func (r *Repository) CreateHousekeepingRequest(req *domain.HousekeepingRequest) error {
	dates, err := req.PlanServiceDates()
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

	req.CreatedAt = time.Now()
	query := `
		INSERT INTO housekeeping_requests (room_number, guest_name, start_date, end_date,
			frequency, frequency_days, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	args := []any{
		req.RoomNumber, nullString(req.GuestName), req.StartDate, req.EndDate,
		req.Frequency, nullInt(req.FrequencyDays), nullString(req.Notes), req.CreatedAt,
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&req.ID); err != nil {
		return err
	}

	if err := insertServiceDates(ctx, tx, req.ID, dates); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateHousekeepingRequest rewrites the request and regenerates its service
// dates from scratch, dropping any manual toggles.
func (r *Repository) UpdateHousekeepingRequest(req *domain.HousekeepingRequest) error {
	dates, err := req.PlanServiceDates()
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

	now := time.Now()
	req.UpdatedAt = &now
	res, err := tx.ExecContext(ctx, `
		UPDATE housekeeping_requests
		SET room_number = ?, guest_name = ?, start_date = ?, end_date = ?,
			frequency = ?, frequency_days = ?, notes = ?, updated_at = ?
		WHERE id = ? AND archived_at IS NULL
	`, req.RoomNumber, nullString(req.GuestName), req.StartDate, req.EndDate,
		req.Frequency, nullInt(req.FrequencyDays), nullString(req.Notes), now, req.ID)
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

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM housekeeping_service_dates WHERE request_id = ?`, req.ID,
	); err != nil {
		return err
	}
	if err := insertServiceDates(ctx, tx, req.ID, dates); err != nil {
		return err
	}

	return tx.Commit()
}

func insertServiceDates(ctx context.Context, tx *sql.Tx, requestID int64, dates []string) error {
	for _, d := range dates {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO housekeeping_service_dates (request_id, service_date, is_active)
			VALUES (?, ?, 1)
		`, requestID, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) GetHousekeepingRequestByID(id int64) (*domain.HousekeepingRequest, error) {
	query := `
		SELECT room_number, guest_name, start_date, end_date, frequency,
			frequency_days, notes, created_at, updated_at, archived_at
		FROM housekeeping_requests WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	req := &domain.HousekeepingRequest{ID: id}
	var guestName, notes sql.NullString
	var frequencyDays sql.NullInt64
	var updatedAt, archivedAt sql.NullTime
	dst := []any{
		&req.RoomNumber, &guestName, &req.StartDate, &req.EndDate, &req.Frequency,
		&frequencyDays, &notes, &req.CreatedAt, &updatedAt, &archivedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	req.GuestName = guestName.String
	req.Notes = notes.String
	req.FrequencyDays = int(frequencyDays.Int64)
	if updatedAt.Valid {
		req.UpdatedAt = &updatedAt.Time
	}
	if archivedAt.Valid {
		req.ArchivedAt = &archivedAt.Time
	}

	dates, err := r.getServiceDates(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ServiceDates = dates

	return req, nil
}

func (r *Repository) getServiceDates(ctx context.Context, requestID int64) ([]domain.ServiceDate, error) {
	query := `
		SELECT id, service_date, is_active
		FROM housekeeping_service_dates WHERE request_id = ? ORDER BY service_date
	`

	rows, err := r.dbpool.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := make([]domain.ServiceDate, 0)
	for rows.Next() {
		d := domain.ServiceDate{RequestID: requestID}
		if err := rows.Scan(&d.ID, &d.ServiceDate, &d.IsActive); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

// ListHousekeepingRequests returns unarchived requests with their service
// dates, ordered by room.
func (r *Repository) ListHousekeepingRequests(includeArchived bool) ([]*domain.HousekeepingRequest, error) {
	query := `
		SELECT id, room_number, guest_name, start_date, end_date, frequency,
			frequency_days, notes, created_at, updated_at, archived_at
		FROM housekeeping_requests
	`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY room_number, start_date`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.HousekeepingRequest, 0)
	for rows.Next() {
		req := &domain.HousekeepingRequest{}
		var guestName, notes sql.NullString
		var frequencyDays sql.NullInt64
		var updatedAt, archivedAt sql.NullTime
		dst := []any{
			&req.ID, &req.RoomNumber, &guestName, &req.StartDate, &req.EndDate, &req.Frequency,
			&frequencyDays, &notes, &req.CreatedAt, &updatedAt, &archivedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		req.GuestName = guestName.String
		req.Notes = notes.String
		req.FrequencyDays = int(frequencyDays.Int64)
		if updatedAt.Valid {
			req.UpdatedAt = &updatedAt.Time
		}
		if archivedAt.Valid {
			req.ArchivedAt = &archivedAt.Time
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, req := range requests {
		dates, err := r.getServiceDates(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		req.ServiceDates = dates
	}

	return requests, nil
}

// ListServiceDatesForDay returns the active cleaning work for one calendar
// day across all unarchived requests.
func (r *Repository) ListServiceDatesForDay(day string) ([]*domain.HousekeepingRequest, error) {
	query := `
		SELECT r.id, r.room_number, r.guest_name, r.start_date, r.end_date, r.frequency,
			r.frequency_days, r.notes, r.created_at, r.updated_at, r.archived_at
		FROM housekeeping_requests r
		JOIN housekeeping_service_dates d ON d.request_id = r.id
		WHERE d.service_date = ? AND d.is_active = 1 AND r.archived_at IS NULL
		ORDER BY r.room_number
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.HousekeepingRequest, 0)
	for rows.Next() {
		req := &domain.HousekeepingRequest{}
		var guestName, notes sql.NullString
		var frequencyDays sql.NullInt64
		var updatedAt, archivedAt sql.NullTime
		dst := []any{
			&req.ID, &req.RoomNumber, &guestName, &req.StartDate, &req.EndDate, &req.Frequency,
			&frequencyDays, &notes, &req.CreatedAt, &updatedAt, &archivedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		req.GuestName = guestName.String
		req.Notes = notes.String
		req.FrequencyDays = int(frequencyDays.Int64)
		if updatedAt.Valid {
			req.UpdatedAt = &updatedAt.Time
		}
		if archivedAt.Valid {
			req.ArchivedAt = &archivedAt.Time
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *Repository) ArchiveHousekeepingRequest(id int64) error {
	query := `
		UPDATE housekeeping_requests SET archived_at = ? WHERE id = ? AND archived_at IS NULL
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query, time.Now(), id)
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

// ToggleServiceDate flips one materialized date on or off, for guests who
// decline service on a particular day.
func (r *Repository) ToggleServiceDate(id int64) (bool, error) {
	query := `
		UPDATE housekeeping_service_dates
		SET is_active = NOT is_active
		WHERE id = ?
		RETURNING is_active
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	var active bool
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&active); err != nil {
		return false, err
	}

	return active, nil
}

func nullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}
