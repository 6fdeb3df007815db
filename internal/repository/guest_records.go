package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

// RecordFilter narrows ListRecords. Zero values mean "no filter". SortBy must
// be one of the whitelisted columns or the query falls back to date_added.
type RecordFilter struct {
	Status    domain.RecordStatus
	BanType   domain.BanType
	NameQuery string
	SortBy    string
	SortDesc  bool
}

var recordSortColumns = map[string]string{
	"guest_name": "guest_name",
	"date_added": "date_added",
	"status":     "status",
}

const recordColumns = `id, guest_name, status, ban_type, reasons, reason_detail,
	date_added, incident_date, expiration_type, expiration_date,
	lifted_date, lifted_type, lifted_reason, lifted_initials`

func scanRecord(row interface{ Scan(...any) error }) (*domain.GuestRecord, error) {
	rec := &domain.GuestRecord{}
	var reasons string
	var reasonDetail, incidentDate, expirationType, expirationDate sql.NullString
	var liftedDate, liftedType, liftedReason, liftedInitials sql.NullString

	dst := []any{
		&rec.ID, &rec.GuestName, &rec.Status, &rec.BanType, &reasons, &reasonDetail,
		&rec.DateAdded, &incidentDate, &expirationType, &expirationDate,
		&liftedDate, &liftedType, &liftedReason, &liftedInitials,
	}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(reasons), &rec.Reasons); err != nil {
		return nil, fmt.Errorf("record %d reasons: %w", rec.ID, err)
	}
	rec.ReasonDetail = reasonDetail.String
	rec.IncidentDate = incidentDate.String
	rec.ExpirationType = domain.ExpirationType(expirationType.String)
	rec.ExpirationDate = expirationDate.String
	rec.LiftedDate = liftedDate.String
	rec.LiftedType = domain.LiftType(liftedType.String)
	rec.LiftedReason = liftedReason.String
	rec.LiftedInitials = liftedInitials.String
	return rec, nil
}

func (r *Repository) ListRecords(filter RecordFilter) ([]*domain.GuestRecord, error) {
	var conds []string
	var args []any

	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.BanType != "" {
		conds = append(conds, "ban_type = ?")
		args = append(args, filter.BanType)
	}
	if filter.NameQuery != "" {
		conds = append(conds, "guest_name LIKE ?")
		args = append(args, "%"+filter.NameQuery+"%")
	}

	query := "SELECT " + recordColumns + " FROM records"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	sortCol, ok := recordSortColumns[filter.SortBy]
	if !ok {
		sortCol = "date_added"
	}
	dir := "ASC"
	if filter.SortDesc {
		dir = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, id %s", sortCol, dir, dir)

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.GuestRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetRecordByID loads the record together with its timeline and photos.
func (r *Repository) GetRecordByID(id int64) (*domain.GuestRecord, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := "SELECT " + recordColumns + " FROM records WHERE id = ?"
	rec, err := scanRecord(r.dbpool.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	timeline, err := r.getTimeline(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Timeline = timeline

	photos, err := r.GetPhotosByRecordID(id)
	if err != nil {
		return nil, err
	}
	rec.Photos = photos

	return rec, nil
}

func (r *Repository) getTimeline(ctx context.Context, recordID int64) ([]domain.TimelineEntry, error) {
	query := `
		SELECT id, record_id, entry_date, staff_initials, note, is_system
		FROM timeline_entries WHERE record_id = ? ORDER BY entry_date, id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.TimelineEntry, 0)
	for rows.Next() {
		var e domain.TimelineEntry
		var initials sql.NullString
		if err := rows.Scan(&e.ID, &e.RecordID, &e.EntryDate, &initials, &e.Note, &e.IsSystem); err != nil {
			return nil, err
		}
		e.StaffInitials = initials.String
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CreateRecord inserts the record and its opening timeline entry in one
// transaction.
func (r *Repository) CreateRecord(rec *domain.GuestRecord, initials string) error {
	ctx, cancel := r.txContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	reasons, err := json.Marshal(rec.Reasons)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO records (guest_name, status, ban_type, reasons, reason_detail,
			date_added, incident_date, expiration_type, expiration_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	args := []any{
		rec.GuestName, rec.Status, rec.BanType, string(reasons), nullString(rec.ReasonDetail),
		rec.DateAdded, nullString(rec.IncidentDate), nullString(string(rec.ExpirationType)),
		nullString(rec.ExpirationDate),
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&rec.ID); err != nil {
		return err
	}

	note := fmt.Sprintf("Record created (%s ban)", rec.BanType)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO timeline_entries (record_id, entry_date, staff_initials, note, is_system)
		VALUES (?, ?, ?, ?, 1)
	`, rec.ID, rec.DateAdded, nullString(initials), note); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) AddTimelineEntry(entry *domain.TimelineEntry) error {
	query := `
		INSERT INTO timeline_entries (record_id, entry_date, staff_initials, note, is_system)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{entry.RecordID, entry.EntryDate, nullString(entry.StaffInitials), entry.Note, entry.IsSystem}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.ID)
}

// LiftRecord marks the record lifted and writes the lift to the timeline in
// one transaction.
func (r *Repository) LiftRecord(id int64, liftType domain.LiftType, reason, initials, liftedDate string) error {
	ctx, cancel := r.txContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE records
		SET status = ?, lifted_date = ?, lifted_type = ?, lifted_reason = ?, lifted_initials = ?
		WHERE id = ? AND status = ?
	`, domain.RecordLifted, liftedDate, liftType, reason, initials, id, domain.RecordActive)
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

	note := fmt.Sprintf("Ban lifted (%s): %s", liftType, reason)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO timeline_entries (record_id, entry_date, staff_initials, note, is_system)
		VALUES (?, ?, ?, ?, 1)
	`, id, liftedDate, nullString(initials), note); err != nil {
		return err
	}

	return tx.Commit()
}

// ExpireDueRecords flips active temporary date-bans whose expiration date has
// passed to expired, with a timeline note per record. Returns how many
// records changed.
func (r *Repository) ExpireDueRecords(today string) (int64, error) {
	ctx, cancel := r.txContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rows, err := tx.QueryContext(ctx, `
		SELECT id FROM records
		WHERE status = ? AND ban_type = ? AND expiration_type = ?
			AND expiration_date IS NOT NULL AND expiration_date <= ?
	`, domain.RecordActive, domain.BanTemporary, domain.ExpireByDate, today)
	if err != nil {
		return 0, err
	}

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE records SET status = ? WHERE id = ?`, domain.RecordExpired, id,
		); err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO timeline_entries (record_id, entry_date, staff_initials, note, is_system)
			VALUES (?, ?, NULL, 'Temporary ban expired automatically', 1)
		`, id, today); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
