package repository

import (
	"database/sql"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (r *Repository) CreatePhoto(photo *domain.Photo) error {
	query := `
		INSERT INTO photos (record_id, filename, original_name, upload_date)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	photo.UploadDate = time.Now()
	args := []any{photo.RecordID, photo.Filename, nullString(photo.OriginalName), photo.UploadDate}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&photo.ID)
}

func (r *Repository) GetPhotoByID(id int64) (*domain.Photo, error) {
	query := `
		SELECT record_id, filename, original_name, upload_date
		FROM photos WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	photo := &domain.Photo{ID: id}
	var originalName sql.NullString
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&photo.RecordID, &photo.Filename, &originalName, &photo.UploadDate); err != nil {
		return nil, err
	}
	photo.OriginalName = originalName.String

	return photo, nil
}

func (r *Repository) GetPhotosByRecordID(recordID int64) ([]domain.Photo, error) {
	query := `
		SELECT id, filename, original_name, upload_date
		FROM photos WHERE record_id = ? ORDER BY upload_date, id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]domain.Photo, 0)
	for rows.Next() {
		photo := domain.Photo{RecordID: recordID}
		var originalName sql.NullString
		if err := rows.Scan(&photo.ID, &photo.Filename, &originalName, &photo.UploadDate); err != nil {
			return nil, err
		}
		photo.OriginalName = originalName.String
		photos = append(photos, photo)
	}

	return photos, rows.Err()
}

func (r *Repository) CountPhotosByRecordID(recordID int64) (int, error) {
	query := `
		SELECT COUNT(*) FROM photos WHERE record_id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	var count int
	if err := r.dbpool.QueryRowContext(ctx, query, recordID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) DeletePhoto(id int64) error {
	query := `
		DELETE FROM photos WHERE id = ?
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
