package repository

import (
	"database/sql"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (r *Repository) CreateMaintenanceItem(item *domain.MaintenanceItem) error {
	query := `
		INSERT INTO maintenance_items (title, description, location, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	item.CreatedAt = time.Now()
	args := []any{item.Title, nullString(item.Description), nullString(item.Location), item.Priority, item.Status, item.CreatedAt}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&item.ID)
}

func (r *Repository) GetMaintenanceItemByID(id int64) (*domain.MaintenanceItem, error) {
	query := `
		SELECT title, description, location, priority, status, created_at, updated_at, completed_at
		FROM maintenance_items WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	item := &domain.MaintenanceItem{ID: id}
	var description, location sql.NullString
	var updatedAt, completedAt sql.NullTime
	dst := []any{&item.Title, &description, &location, &item.Priority, &item.Status, &item.CreatedAt, &updatedAt, &completedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	item.Description = description.String
	item.Location = location.String
	if updatedAt.Valid {
		item.UpdatedAt = &updatedAt.Time
	}
	if completedAt.Valid {
		item.CompletedAt = &completedAt.Time
	}

	return item, nil
}

// ListMaintenanceItems returns open work first, urgent before low, newest
// first within the same priority. Completed items sort last.
func (r *Repository) ListMaintenanceItems(includeCompleted bool) ([]*domain.MaintenanceItem, error) {
	query := `
		SELECT id, title, description, location, priority, status, created_at, updated_at, completed_at
		FROM maintenance_items
	`
	if !includeCompleted {
		query += ` WHERE status != 'completed'`
	}
	query += `
		ORDER BY
			CASE status WHEN 'completed' THEN 1 ELSE 0 END,
			CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END,
			created_at DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.MaintenanceItem, 0)
	for rows.Next() {
		item := &domain.MaintenanceItem{}
		var description, location sql.NullString
		var updatedAt, completedAt sql.NullTime
		dst := []any{&item.ID, &item.Title, &description, &location, &item.Priority, &item.Status, &item.CreatedAt, &updatedAt, &completedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		item.Description = description.String
		item.Location = location.String
		if updatedAt.Valid {
			item.UpdatedAt = &updatedAt.Time
		}
		if completedAt.Valid {
			item.CompletedAt = &completedAt.Time
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *Repository) UpdateMaintenanceItem(item *domain.MaintenanceItem) error {
	query := `
		UPDATE maintenance_items
		SET title = ?, description = ?, location = ?, priority = ?, status = ?,
			updated_at = ?, completed_at = ?
		WHERE id = ?
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	now := time.Now()
	item.UpdatedAt = &now
	if item.Status == domain.MaintenanceCompleted && item.CompletedAt == nil {
		item.CompletedAt = &now
	}
	if item.Status != domain.MaintenanceCompleted {
		item.CompletedAt = nil
	}

	var completedAt sql.NullTime
	if item.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *item.CompletedAt, Valid: true}
	}

	args := []any{item.Title, nullString(item.Description), nullString(item.Location), item.Priority, item.Status, now, completedAt, item.ID}
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

func (r *Repository) DeleteMaintenanceItem(id int64) error {
	query := `
		DELETE FROM maintenance_items WHERE id = ?
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
