package repository

import (
	"database/sql"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (r *Repository) CreateRoomIssue(issue *domain.RoomIssue) error {
	query := `
		INSERT INTO room_issues (room_number, issue_type, status, note, state, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	issue.CreatedAt = time.Now()
	args := []any{issue.RoomNumber, issue.IssueType, issue.Status, nullString(issue.Note), issue.State, issue.CreatedAt}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&issue.ID)
}

func (r *Repository) GetRoomIssueByID(id int64) (*domain.RoomIssue, error) {
	query := `
		SELECT room_number, issue_type, status, note, state, created_at, updated_at, resolved_at
		FROM room_issues WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	issue := &domain.RoomIssue{ID: id}
	var note sql.NullString
	var updatedAt, resolvedAt sql.NullTime
	dst := []any{&issue.RoomNumber, &issue.IssueType, &issue.Status, &note, &issue.State, &issue.CreatedAt, &updatedAt, &resolvedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	issue.Note = note.String
	if updatedAt.Valid {
		issue.UpdatedAt = &updatedAt.Time
	}
	if resolvedAt.Valid {
		issue.ResolvedAt = &resolvedAt.Time
	}

	return issue, nil
}

func (r *Repository) ListRoomIssues(includeResolved bool) ([]*domain.RoomIssue, error) {
	query := `
		SELECT id, room_number, issue_type, status, note, state, created_at, updated_at, resolved_at
		FROM room_issues
	`
	if !includeResolved {
		query += ` WHERE state = 'active'`
	}
	query += ` ORDER BY room_number, created_at DESC`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	issues := make([]*domain.RoomIssue, 0)
	for rows.Next() {
		issue := &domain.RoomIssue{}
		var note sql.NullString
		var updatedAt, resolvedAt sql.NullTime
		dst := []any{&issue.ID, &issue.RoomNumber, &issue.IssueType, &issue.Status, &note, &issue.State, &issue.CreatedAt, &updatedAt, &resolvedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		issue.Note = note.String
		if updatedAt.Valid {
			issue.UpdatedAt = &updatedAt.Time
		}
		if resolvedAt.Valid {
			issue.ResolvedAt = &resolvedAt.Time
		}
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}

func (r *Repository) UpdateRoomIssue(issue *domain.RoomIssue) error {
	query := `
		UPDATE room_issues
		SET room_number = ?, issue_type = ?, status = ?, note = ?, state = ?,
			updated_at = ?, resolved_at = ?
		WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	now := time.Now()
	issue.UpdatedAt = &now
	if issue.State == domain.IssueResolved && issue.ResolvedAt == nil {
		issue.ResolvedAt = &now
	}
	if issue.State == domain.IssueActive {
		issue.ResolvedAt = nil
	}

	var resolvedAt sql.NullTime
	if issue.ResolvedAt != nil {
		resolvedAt = sql.NullTime{Time: *issue.ResolvedAt, Valid: true}
	}

	args := []any{issue.RoomNumber, issue.IssueType, issue.Status, nullString(issue.Note), issue.State, now, resolvedAt, issue.ID}
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
