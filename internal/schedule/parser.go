package schedule

import (
	"fmt"
	"strings"
	"time"
)

// dayColumn binds a weekday offset (0 = Monday) to a table column index.
type dayColumn struct {
	col    int
	offset int
}

// staffRow accumulates one staff member's cells while continuation rows below
// it are still being merged in.
type staffRow struct {
	rawName    string
	rowIdx     int
	phone      string
	department Department
	cells      [7]string // indexed by weekday offset
}

// Parse converts raw document tables into normalized schedule entries for the
// week starting at weekStart (a Monday). It is a pure function of its inputs:
// repeated calls with the same tables yield identical entries and warnings.
//
// Row-level anomalies (unreadable times, missing names, duplicates) are
// reported as warnings without aborting; only an absent or entirely
// unparseable document yields an empty result.
func Parse(tables []RawTable, weekStart time.Time) ([]Entry, []Warning) {
	entries := []Entry{}
	warnings := []Warning{}

	if len(tables) == 0 {
		return entries, append(warnings, Warning{Kind: WarnNoTableFound, Detail: "document contained no tables"})
	}

	for _, table := range tables {
		entries, warnings = parseTable(table, weekStart, entries, warnings)
	}

	if missing := countUnknownDepartment(entries); missing > 0 {
		warnings = append(warnings, Warning{
			Kind:   WarnMissingDepartmentHeader,
			Detail: fmt.Sprintf("%d entries parsed before any department header", missing),
		})
	}
	warnings = append(warnings, duplicateWarnings(entries)...)

	if len(entries) == 0 {
		warnings = append(warnings, Warning{Kind: WarnNoEntriesExtracted, Detail: "no schedule entries could be extracted"})
	}

	return entries, warnings
}

func parseTable(table RawTable, weekStart time.Time, entries []Entry, warnings []Warning) ([]Entry, []Warning) {
	dayCols, startIdx, ok := detectHeader(table)
	if !ok {
		return entries, warnings
	}

	currentDept := DepartmentUnknown
	var pending *staffRow

	flush := func() {
		if pending == nil {
			return
		}
		entries, warnings = emitStaffRow(pending, weekStart, entries, warnings)
		pending = nil
	}

	for rowIdx := startIdx; rowIdx < len(table); rowIdx++ {
		row := table[rowIdx]

		nonEmpty := nonEmptyCells(row)
		if len(nonEmpty) == 0 {
			// blank rows neither end a department section nor detach a
			// pending staff row
			continue
		}

		// a repeated header (weekday row) inside the data is not an entry
		if weekdayCellCount(row) >= 3 {
			flush()
			continue
		}

		// department header: the sole non-empty cell names a department
		if len(nonEmpty) == 1 {
			if dept := detectDepartment(row[nonEmpty[0]]); dept != DepartmentUnknown {
				flush()
				currentDept = dept
				continue
			}
		}

		firstCell := ""
		if len(row) > 0 {
			firstCell = strings.TrimSpace(row[0])
		}

		if isContinuation(row, firstCell, nonEmpty, dayCols) {
			if pending == nil {
				warnings = appendAmbiguousContinuation(warnings, row, rowIdx)
				continue
			}
			mergeContinuation(pending, row, firstCell, dayCols)
			continue
		}

		if firstCell != "" && detectDepartment(firstCell) == DepartmentUnknown {
			flush()
			pending = newStaffRow(row, rowIdx, firstCell, currentDept, dayCols)
			continue
		}

		// neither header, department label, nor staff/time row
		if pending == nil {
			warnings = appendAmbiguousContinuation(warnings, row, rowIdx)
		}
	}

	flush()
	return entries, warnings
}

// detectHeader scans top-down for the first row with at least 3 weekday
// tokens and maps its matching columns, left to right, onto Mon..Sun. Without
// a header the table is treated as positional when it is 7 to 9 columns wide
// (leading columns reserved for name and phone); anything else is skipped.
func detectHeader(table RawTable) ([]dayColumn, int, bool) {
	for rowIdx, row := range table {
		if weekdayCellCount(row) < 3 {
			continue
		}
		dayCols := []dayColumn{}
		offset := 0
		for col, cell := range row {
			if !containsWeekday(cell) {
				continue
			}
			if offset > 6 {
				break
			}
			dayCols = append(dayCols, dayColumn{col: col, offset: offset})
			offset++
		}
		return dayCols, rowIdx + 1, true
	}

	width := tableWidth(table)
	if width < 7 || width > 9 {
		return nil, 0, false
	}
	dayCols := make([]dayColumn, 7)
	for offset := 0; offset < 7; offset++ {
		dayCols[offset] = dayColumn{col: width - 7 + offset, offset: offset}
	}
	return dayCols, 0, true
}

func newStaffRow(row RawRow, rowIdx int, firstCell string, dept Department, dayCols []dayColumn) *staffRow {
	sr := &staffRow{
		rawName:    firstCell,
		rowIdx:     rowIdx,
		department: dept,
	}
	for _, dc := range dayCols {
		if dc.col < len(row) {
			sr.cells[dc.offset] = strings.TrimSpace(row[dc.col])
		}
	}
	sr.phone = phoneFromSideColumns(row, dayCols)
	return sr
}

// phoneFromSideColumns picks a phone-shaped token out of the non-day columns
// (a dedicated PHONE column between name and the week grid).
func phoneFromSideColumns(row RawRow, dayCols []dayColumn) string {
	for col := 1; col < len(row); col++ {
		if isDayColumn(col, dayCols) {
			continue
		}
		if cell := strings.TrimSpace(row[col]); isPhoneOnly(cell) {
			return cell
		}
	}
	return ""
}

// isContinuation recognizes a row that supplies overflow content for the
// staff row above it: an empty first cell with content only in mapped day
// columns, or a lone phone-shaped token in the first cell.
func isContinuation(row RawRow, firstCell string, nonEmpty []int, dayCols []dayColumn) bool {
	if firstCell != "" && !isPhoneOnly(firstCell) {
		return false
	}
	for _, idx := range nonEmpty {
		if idx == 0 {
			continue
		}
		if isDayColumn(idx, dayCols) {
			continue
		}
		if !isPhoneOnly(strings.TrimSpace(row[idx])) {
			return false
		}
	}
	return true
}

func mergeContinuation(pending *staffRow, row RawRow, firstCell string, dayCols []dayColumn) {
	if isPhoneOnly(firstCell) && pending.phone == "" {
		pending.phone = firstCell
	}
	if pending.phone == "" {
		pending.phone = phoneFromSideColumns(row, dayCols)
	}
	for _, dc := range dayCols {
		if dc.col >= len(row) {
			continue
		}
		overflow := strings.TrimSpace(row[dc.col])
		if overflow == "" {
			continue
		}
		// wrapped time ranges span two physical rows ("8:45am-" / "12:45pm"),
		// so join with a blank rather than replacing
		if pending.cells[dc.offset] == "" {
			pending.cells[dc.offset] = overflow
		} else {
			pending.cells[dc.offset] += " " + overflow
		}
	}
}

func emitStaffRow(sr *staffRow, weekStart time.Time, entries []Entry, warnings []Warning) ([]Entry, []Warning) {
	phone, name := extractPhone(sr.rawName)
	name = strings.TrimSpace(name)
	if name == "" {
		return entries, append(warnings, Warning{
			Kind:   WarnEmptyStaffName,
			Detail: fmt.Sprintf("row %d has shift times but no staff name", sr.rowIdx),
		})
	}
	if phone == "" {
		phone = sr.phone
	}

	for offset := 0; offset < 7; offset++ {
		cell := sr.cells[offset]
		if cell == "" {
			continue
		}
		shiftTime, ok := NormalizeTime(cell)
		if !ok {
			// keep the raw text visible to the reviewer instead of dropping it
			warnings = append(warnings, Warning{
				Kind:   WarnUnrecognizedTimeFormat,
				Detail: fmt.Sprintf("unrecognized shift time %q for %s", cell, name),
			})
		}
		entries = append(entries, Entry{
			StaffName:   name,
			ShiftDate:   weekStart.AddDate(0, 0, offset),
			ShiftTime:   shiftTime,
			Department:  sr.department,
			PhoneNumber: phone,
		})
	}
	return entries, warnings
}

func appendAmbiguousContinuation(warnings []Warning, row RawRow, rowIdx int) []Warning {
	for _, cell := range row {
		if looksLikeTime(cell) {
			return append(warnings, Warning{
				Kind:   WarnUnrecognizedTimeFormat,
				Detail: fmt.Sprintf("row %d holds shift time %q with no staff row above it", rowIdx, strings.TrimSpace(cell)),
			})
		}
	}
	return warnings
}

func countUnknownDepartment(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Department == DepartmentUnknown {
			n++
		}
	}
	return n
}

// duplicateWarnings flags every extra entry sharing (date, name, department)
// with an earlier one. The entries themselves are all kept; the reviewer
// decides their disposition.
func duplicateWarnings(entries []Entry) []Warning {
	warnings := []Warning{}
	seen := map[string]bool{}
	for _, e := range entries {
		key := e.ShiftDate.Format("2006-01-02") + "|" + e.StaffName + "|" + string(e.Department)
		if seen[key] {
			warnings = append(warnings, Warning{
				Kind:   WarnDuplicateEntry,
				Detail: fmt.Sprintf("%s has more than one %s entry on %s", e.StaffName, e.Department, e.ShiftDate.Format("2006-01-02")),
			})
		}
		seen[key] = true
	}
	return warnings
}

func nonEmptyCells(row RawRow) []int {
	idxs := []int{}
	for i, cell := range row {
		if strings.TrimSpace(cell) != "" {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func weekdayCellCount(row RawRow) int {
	n := 0
	for _, cell := range row {
		if containsWeekday(cell) {
			n++
		}
	}
	return n
}

func isDayColumn(idx int, dayCols []dayColumn) bool {
	for _, dc := range dayCols {
		if dc.col == idx {
			return true
		}
	}
	return false
}

func tableWidth(table RawTable) int {
	width := 0
	for _, row := range table {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
