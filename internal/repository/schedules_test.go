package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func TestInsertScheduleWeekReplacesExistingWeek(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM schedules WHERE shift_date >= ? AND shift_date < ?")).
		WithArgs("2026-01-05", "2026-01-12").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO schedules")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO schedules")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectCommit()

	entries := []*domain.ScheduleEntry{
		{StaffName: "Dana", ShiftDate: "2026-01-05", ShiftTime: "7am-3pm", Department: "FRONT DESK"},
		{StaffName: "Gus", ShiftDate: "2026-01-06", ShiftTime: "3pm-11pm", Department: "FRONT DESK"},
	}
	require.NoError(t, repo.InsertScheduleWeek("2026-01-05", entries, true))
	assert.Equal(t, int64(11), entries[0].ID)
	assert.Equal(t, int64(12), entries[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertScheduleWeekWithoutReplaceSkipsDelete(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO schedules")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectCommit()

	entries := []*domain.ScheduleEntry{
		{StaffName: "Dana", ShiftDate: "2026-01-05", ShiftTime: "7am-3pm"},
	}
	require.NoError(t, repo.InsertScheduleWeek("2026-01-05", entries, false))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertScheduleWeekRejectsBadWeekStart(t *testing.T) {
	repo, mock := newTestRepository(t)

	err := repo.InsertScheduleWeek("Jan 5 2026", nil, true)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListScheduleWeek(t *testing.T) {
	repo, mock := newTestRepository(t)

	created := time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "staff_name", "shift_date", "shift_time", "department", "phone_number", "note", "created_at",
	}).
		AddRow(1, "Dana", "2026-01-05", "7am-3pm", "FRONT DESK", "555-123-4567", nil, created).
		AddRow(2, "Maria", "2026-01-05", "8am-4pm", "HOUSEKEEPING", nil, nil, created)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE shift_date >= ? AND shift_date < ?")).
		WithArgs("2026-01-05", "2026-01-12").
		WillReturnRows(rows)

	entries, err := repo.ListScheduleWeek("2026-01-05")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Dana", entries[0].StaffName)
	assert.Equal(t, "555-123-4567", entries[0].PhoneNumber)
	assert.Empty(t, entries[1].PhoneNumber)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateScheduleEntryMissing(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedules")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateScheduleEntry(&domain.ScheduleEntry{ID: 99, StaffName: "Dana"})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}
