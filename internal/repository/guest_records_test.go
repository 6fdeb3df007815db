package repository

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

var recordRowColumns = []string{
	"id", "guest_name", "status", "ban_type", "reasons", "reason_detail",
	"date_added", "incident_date", "expiration_type", "expiration_date",
	"lifted_date", "lifted_type", "lifted_reason", "lifted_initials",
}

func TestListRecordsFilterAndSort(t *testing.T) {
	repo, mock := newTestRepository(t)

	rows := sqlmock.NewRows(recordRowColumns).
		AddRow(1, "Alex Smith", "active", "temporary", `["Scammer"]`, nil,
			"2026-02-01", nil, "date", "2026-05-01", nil, nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = ? AND guest_name LIKE ? ORDER BY guest_name DESC, id DESC")).
		WithArgs("active", "%smith%").
		WillReturnRows(rows)

	records, err := repo.ListRecords(RecordFilter{
		Status:    domain.RecordActive,
		NameQuery: "smith",
		SortBy:    "guest_name",
		SortDesc:  true,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Alex Smith", rec.GuestName)
	assert.Equal(t, []string{"Scammer"}, rec.Reasons)
	assert.Equal(t, domain.ExpireByDate, rec.ExpirationType)
	assert.Equal(t, "2026-05-01", rec.ExpirationDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecordsUnknownSortFallsBack(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY date_added ASC, id ASC")).
		WillReturnRows(sqlmock.NewRows(recordRowColumns))

	records, err := repo.ListRecords(RecordFilter{SortBy: "guest_name; DROP TABLE records"})
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecordWritesOpeningTimelineEntry(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO records")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO timeline_entries")).
		WithArgs(int64(7), "2026-02-01", "JD", "Record created (temporary ban)").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rec := &domain.GuestRecord{
		GuestName: "Alex Smith",
		Status:    domain.RecordActive,
		BanType:   domain.BanTemporary,
		Reasons:   []string{"Scammer"},
		DateAdded: "2026-02-01",
	}
	require.NoError(t, repo.CreateRecord(rec, "JD"))
	assert.Equal(t, int64(7), rec.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLiftRecord(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE records")).
		WithArgs("lifted", "2026-02-10", "issue_resolved", "Paid outstanding balance", "JD", int64(4), "active").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO timeline_entries")).
		WithArgs(int64(4), "2026-02-10", "JD", "Ban lifted (issue_resolved): Paid outstanding balance").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.LiftRecord(4, domain.LiftIssueResolved, "Paid outstanding balance", "JD", "2026-02-10")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLiftRecordNotActive(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE records")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.LiftRecord(4, domain.LiftManagerOverride, "n/a", "JD", "2026-02-10")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireDueRecords(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM records")).
		WithArgs("active", "temporary", "date", "2026-02-15").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(9))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE records SET status = ? WHERE id = ?")).
		WithArgs("expired", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO timeline_entries")).
		WithArgs(int64(3), "2026-02-15").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE records SET status = ? WHERE id = ?")).
		WithArgs("expired", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO timeline_entries")).
		WithArgs(int64(9), "2026-02-15").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	count, err := repo.ExpireDueRecords("2026-02-15")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireDueRecordsNoneDue(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM records")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	count, err := repo.ExpireDueRecords("2026-02-15")
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
