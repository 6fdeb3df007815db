package repository

import (
	"database/sql"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (r *Repository) CreateWakeupCall(call *domain.WakeupCall) error {
	query := `
		INSERT INTO wakeup_calls (room_number, call_date, call_time, request_source,
			status, logged_by_user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	call.CreatedAt = time.Now()
	args := []any{
		call.RoomNumber, call.CallDate, call.CallTime, nullString(call.RequestSource),
		call.Status, call.LoggedByUserID, call.CreatedAt,
	}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&call.ID)
}

func (r *Repository) GetWakeupCallByID(id int64) (*domain.WakeupCall, error) {
	query := `
		SELECT room_number, call_date, call_time, request_source, status,
			logged_by_user_id, completed_by_user_id, outcome_note, created_at, updated_at
		FROM wakeup_calls WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	call := &domain.WakeupCall{ID: id}
	var requestSource, outcomeNote sql.NullString
	var updatedAt sql.NullTime
	dst := []any{
		&call.RoomNumber, &call.CallDate, &call.CallTime, &requestSource, &call.Status,
		&call.LoggedByUserID, &call.CompletedByUserID, &outcomeNote, &call.CreatedAt, &updatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	call.RequestSource = requestSource.String
	call.OutcomeNote = outcomeNote.String
	if updatedAt.Valid {
		call.UpdatedAt = &updatedAt.Time
	}

	return call, nil
}

// ListWakeupCallsForDate returns all calls scheduled for one day ordered by
// call time. Pending calls across all dates come back from
// ListPendingWakeupCalls.
func (r *Repository) ListWakeupCallsForDate(date string) ([]*domain.WakeupCall, error) {
	query := `
		SELECT id, room_number, call_date, call_time, request_source, status,
			logged_by_user_id, completed_by_user_id, outcome_note, created_at, updated_at
		FROM wakeup_calls WHERE call_date = ?
		ORDER BY call_time, room_number
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWakeupCalls(rows)
}

func (r *Repository) ListPendingWakeupCalls() ([]*domain.WakeupCall, error) {
	query := `
		SELECT id, room_number, call_date, call_time, request_source, status,
			logged_by_user_id, completed_by_user_id, outcome_note, created_at, updated_at
		FROM wakeup_calls WHERE status = 'pending'
		ORDER BY call_date, call_time
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWakeupCalls(rows)
}

func scanWakeupCalls(rows *sql.Rows) ([]*domain.WakeupCall, error) {
	calls := make([]*domain.WakeupCall, 0)
	for rows.Next() {
		call := &domain.WakeupCall{}
		var requestSource, outcomeNote sql.NullString
		var updatedAt sql.NullTime
		dst := []any{
			&call.ID, &call.RoomNumber, &call.CallDate, &call.CallTime, &requestSource, &call.Status,
			&call.LoggedByUserID, &call.CompletedByUserID, &outcomeNote, &call.CreatedAt, &updatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		call.RequestSource = requestSource.String
		call.OutcomeNote = outcomeNote.String
		if updatedAt.Valid {
			call.UpdatedAt = &updatedAt.Time
		}
		calls = append(calls, call)
	}

	return calls, rows.Err()
}

// ResolveWakeupCall records the outcome of a pending call. Only pending calls
// may be resolved.
func (r *Repository) ResolveWakeupCall(id int64, status domain.WakeupStatus, outcomeNote string, userID *int64) error {
	query := `
		UPDATE wakeup_calls
		SET status = ?, outcome_note = ?, completed_by_user_id = ?, updated_at = ?
		WHERE id = ? AND status = 'pending'
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query, status, nullString(outcomeNote), userID, time.Now(), id)
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
