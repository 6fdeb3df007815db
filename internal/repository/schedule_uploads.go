package repository

import (
	"database/sql"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (r *Repository) CreateScheduleUpload(upload *domain.ScheduleUpload) error {
	query := `
		INSERT INTO schedule_uploads (filename, file_path, week_start_date,
			uploaded_by_user_id, uploaded_at, parsed_entries_count, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	upload.UploadedAt = time.Now()
	args := []any{
		upload.Filename, upload.FilePath, upload.WeekStartDate,
		upload.UploadedByUserID, upload.UploadedAt, upload.ParsedEntriesCount, upload.Status,
	}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&upload.ID)
}

func (r *Repository) GetScheduleUploadByID(id int64) (*domain.ScheduleUpload, error) {
	query := `
		SELECT filename, file_path, week_start_date, uploaded_by_user_id,
			uploaded_at, parsed_entries_count, status
		FROM schedule_uploads WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	upload := &domain.ScheduleUpload{ID: id}
	dst := []any{
		&upload.Filename, &upload.FilePath, &upload.WeekStartDate, &upload.UploadedByUserID,
		&upload.UploadedAt, &upload.ParsedEntriesCount, &upload.Status,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return upload, nil
}

func (r *Repository) ListScheduleUploads(limit int) ([]*domain.ScheduleUpload, error) {
	query := `
		SELECT id, filename, file_path, week_start_date, uploaded_by_user_id,
			uploaded_at, parsed_entries_count, status
		FROM schedule_uploads
		ORDER BY uploaded_at DESC
		LIMIT ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	uploads := make([]*domain.ScheduleUpload, 0)
	for rows.Next() {
		upload := &domain.ScheduleUpload{}
		dst := []any{
			&upload.ID, &upload.Filename, &upload.FilePath, &upload.WeekStartDate, &upload.UploadedByUserID,
			&upload.UploadedAt, &upload.ParsedEntriesCount, &upload.Status,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, rows.Err()
}

// SetScheduleUploadStatus moves a pending upload to confirmed or cancelled.
// Terminal uploads do not change again.
func (r *Repository) SetScheduleUploadStatus(id int64, status domain.UploadStatus) error {
	query := `
		UPDATE schedule_uploads SET status = ? WHERE id = ? AND status = 'pending'
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query, status, id)
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
