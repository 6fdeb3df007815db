package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weekOf returns Monday January 5th 2026, the week used by all fixtures.
func weekOf(t *testing.T) time.Time {
	t.Helper()
	ws := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, ws.Weekday())
	return ws
}

func headerRow() RawRow {
	return RawRow{"NAME", "PHONE", "MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}
}

func findEntries(entries []Entry, name string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.StaffName == name {
			out = append(out, e)
		}
	}
	return out
}

func hasWarning(warnings []Warning, kind WarningKind) bool {
	for _, w := range warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

func TestParseMapsMatchedHeaderColumnsOntoWeek(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"FRONT DESK"},
		{"Dana", "555-123-4567", "7am-3pm", "", "9:00am-5:00pm", "", "", "", ""},
	}

	entries, warnings := Parse([]RawTable{table}, ws)
	require.Len(t, entries, 2)
	assert.False(t, hasWarning(warnings, WarnMissingDepartmentHeader))

	mon := entries[0]
	assert.Equal(t, "Dana", mon.StaffName)
	assert.Equal(t, "2026-01-05", mon.ShiftDate.Format("2006-01-02"))
	assert.Equal(t, "7am-3pm", mon.ShiftTime)
	assert.Equal(t, DepartmentFrontDesk, mon.Department)
	assert.Equal(t, "555-123-4567", mon.PhoneNumber)

	wed := entries[1]
	assert.Equal(t, "2026-01-07", wed.ShiftDate.Format("2006-01-02"))
	assert.Equal(t, "9am-5pm", wed.ShiftTime)
}

func TestParseIsDeterministic(t *testing.T) {
	ws := weekOf(t)
	tables := []RawTable{{
		headerRow(),
		{"HOUSEKEEPING"},
		{"Maria", "", "8am-4pm", "8am-4pm", "", "ON", "morning??", "", ""},
		{"", "555-234-5678", "", "", "", "", "", "", ""},
	}}

	entries1, warnings1 := Parse(tables, ws)
	entries2, warnings2 := Parse(tables, ws)
	assert.Equal(t, entries1, entries2)
	assert.Equal(t, warnings1, warnings2)
}

func TestParseKeepsUnrecognizedTimeRaw(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"LAUNDRY"},
		{"Pat", "", "morning??", "", "", "", "", "", ""},
	}

	entries, warnings := Parse([]RawTable{table}, ws)
	require.Len(t, entries, 1)
	assert.Equal(t, "morning??", entries[0].ShiftTime)
	assert.True(t, hasWarning(warnings, WarnUnrecognizedTimeFormat))
}

func TestParseRecognizesOnCall(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"MAINTENANCE"},
		{"Lou", "", "ON", "on call", "On-Call", "", "", "", ""},
	}

	entries, warnings := Parse([]RawTable{table}, ws)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, OnCall, e.ShiftTime)
	}
	assert.False(t, hasWarning(warnings, WarnUnrecognizedTimeFormat))
}

func TestParseExtractsPhoneEmbeddedInName(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"HOUSEKEEPING"},
		{"Karolee 555-888-9397", "", "9am-1pm", "", "", "", "", "", ""},
	}

	entries, _ := Parse([]RawTable{table}, ws)
	require.Len(t, entries, 1)
	assert.Equal(t, "Karolee", entries[0].StaffName)
	assert.Equal(t, "555-888-9397", entries[0].PhoneNumber)
}

func TestParseMergesWrappedTimeRange(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"FRONT DESK"},
		{"Pam", "", "8:45am-", "", "", "", "", "", ""},
		{"", "", "12:45pm", "", "", "", "", "", ""},
	}

	entries, warnings := Parse([]RawTable{table}, ws)
	require.Len(t, entries, 1)
	assert.Equal(t, "8:45am-12:45pm", entries[0].ShiftTime)
	assert.False(t, hasWarning(warnings, WarnUnrecognizedTimeFormat))
}

func TestParsePhoneContinuationRow(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"FRONT DESK"},
		{"Gil", "", "3pm-11pm", "", "", "", "", "", ""},
		{"555-321-7654", "", "", "", "", "", "", "", ""},
	}

	entries, _ := Parse([]RawTable{table}, ws)
	require.Len(t, entries, 1)
	assert.Equal(t, "555-321-7654", entries[0].PhoneNumber)
}

func TestParseEmptyDocument(t *testing.T) {
	ws := weekOf(t)

	entries, warnings := Parse(nil, ws)
	assert.Empty(t, entries)
	assert.True(t, hasWarning(warnings, WarnNoTableFound))
}

func TestParseUnusableTable(t *testing.T) {
	ws := weekOf(t)
	// too narrow for the positional fallback, no weekday header
	table := RawTable{
		{"Notes", "Week of Jan 5"},
		{"All hands meeting", "Tuesday 2pm"},
	}

	entries, warnings := Parse([]RawTable{table}, ws)
	assert.Empty(t, entries)
	assert.True(t, hasWarning(warnings, WarnNoEntriesExtracted))
}

func TestParseDepartmentCarriesAcrossBlankRows(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"HOUSEKEEPING"},
		{"Ana", "", "8am-4pm", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", "", ""},
		{"Bea", "", "", "8am-4pm", "", "", "", "", ""},
		{"BREAKFAST ATTENDANT"},
		{"Cal", "", "", "", "6am-10am", "", "", "", ""},
	}

	entries, _ := Parse([]RawTable{table}, ws)
	require.Len(t, entries, 3)
	assert.Equal(t, DepartmentHousekeeping, findEntries(entries, "Ana")[0].Department)
	assert.Equal(t, DepartmentHousekeeping, findEntries(entries, "Bea")[0].Department)
	assert.Equal(t, DepartmentBreakfastAttendant, findEntries(entries, "Cal")[0].Department)
}

func TestParseMissingDepartmentHeaderWarnsOnce(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"Ada", "", "7am-3pm", "7am-3pm", "", "", "", "", ""},
		{"Ben", "", "", "", "3pm-11pm", "", "", "", ""},
	}

	entries, warnings := Parse([]RawTable{table}, ws)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, DepartmentUnknown, e.Department)
	}

	count := 0
	for _, w := range warnings {
		if w.Kind == WarnMissingDepartmentHeader {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestParseDuplicatesKeptAndFlagged(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"FRONT DESK"},
		{"Dana", "", "7am-3pm", "", "", "", "", "", ""},
		{"Dana", "", "3pm-11pm", "", "", "", "", "", ""},
	}

	entries, warnings := Parse([]RawTable{table}, ws)
	assert.Len(t, entries, 2)
	assert.True(t, hasWarning(warnings, WarnDuplicateEntry))
}

func TestParseHeaderlessPositionalTable(t *testing.T) {
	ws := weekOf(t)
	// 8 columns wide: name, then Mon..Sun by position
	table := RawTable{
		{"FRONT DESK", "", "", "", "", "", "", ""},
		{"Eve", "7am-3pm", "", "", "", "", "", "11pm-7am"},
	}

	entries, _ := Parse([]RawTable{table}, ws)
	require.Len(t, entries, 2)
	assert.Equal(t, "2026-01-05", entries[0].ShiftDate.Format("2006-01-02"))
	assert.Equal(t, "2026-01-11", entries[1].ShiftDate.Format("2006-01-02"))
	assert.Equal(t, DepartmentFrontDesk, entries[0].Department)
}

func TestParseRepeatedHeaderRowInsideData(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"FRONT DESK"},
		{"Flo", "", "7am-3pm", "", "", "", "", "", ""},
		headerRow(),
		{"Gus", "", "", "3pm-11pm", "", "", "", "", ""},
	}

	entries, _ := Parse([]RawTable{table}, ws)
	require.Len(t, entries, 2)
	assert.Equal(t, "Flo", entries[0].StaffName)
	assert.Equal(t, "Gus", entries[1].StaffName)
}

func TestParseSkipsNamelessRowWithTimes(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"FRONT DESK"},
		{"555-111-2233", "", "7am-3pm", "", "", "", "", "", ""},
	}

	entries, warnings := Parse([]RawTable{table}, ws)
	assert.Empty(t, entries)
	assert.True(t, hasWarning(warnings, WarnUnrecognizedTimeFormat))
	assert.True(t, hasWarning(warnings, WarnNoEntriesExtracted))
}

func TestParsePhoneOnlyStaffRowWarnsEmptyName(t *testing.T) {
	ws := weekOf(t)
	table := RawTable{
		headerRow(),
		{"FRONT DESK"},
		{"555-111-2233", "ext 12", "7am-3pm", "", "", "", "", "", ""},
	}

	entries, warnings := Parse([]RawTable{table}, ws)
	assert.Empty(t, entries)
	assert.True(t, hasWarning(warnings, WarnEmptyStaffName))
}

func TestParseMultipleTables(t *testing.T) {
	ws := weekOf(t)
	tables := []RawTable{
		{
			headerRow(),
			{"FRONT DESK"},
			{"Hal", "", "7am-3pm", "", "", "", "", "", ""},
		},
		{
			headerRow(),
			{"LAUNDRY"},
			{"Ida", "", "", "9am-5pm", "", "", "", "", ""},
		},
	}

	entries, _ := Parse(tables, ws)
	require.Len(t, entries, 2)
	assert.Equal(t, DepartmentFrontDesk, entries[0].Department)
	assert.Equal(t, DepartmentLaundry, entries[1].Department)
}
