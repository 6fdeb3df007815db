// Package schedule turns raw tables extracted from uploaded paper-schedule
// documents into normalized weekly schedule entries.
package schedule

import "time"

// RawRow is an ordered sequence of cell strings. A cell may be empty.
type RawRow []string

// RawTable is an unprocessed grid of text cells, prior to semantic
// interpretation. No identity beyond position.
type RawTable []RawRow

// Department is the staff department a schedule row belongs to.
type Department string

const (
	DepartmentFrontDesk          Department = "FRONT DESK"
	DepartmentHousekeeping       Department = "HOUSEKEEPING"
	DepartmentBreakfastAttendant Department = "BREAKFAST ATTENDANT"
	DepartmentLaundry            Department = "LAUNDRY"
	DepartmentMaintenance        Department = "MAINTENANCE"
	DepartmentInspecting         Department = "INSPECTING"
	DepartmentUnknown            Department = "UNKNOWN"
)

// OnCall is the shift_time sentinel for on-call rows with no fixed hours.
const OnCall = "ON"

// Entry is one normalized schedule cell: one staff member, one day.
type Entry struct {
	StaffName   string     `json:"staff_name"`
	ShiftDate   time.Time  `json:"shift_date"`
	ShiftTime   string     `json:"shift_time"`
	Department  Department `json:"department"`
	PhoneNumber string     `json:"phone_number,omitempty"`
}

// WarningKind classifies a parse warning.
type WarningKind string

const (
	WarnNoTableFound            WarningKind = "NO_TABLE_FOUND"
	WarnNoEntriesExtracted      WarningKind = "NO_ENTRIES_EXTRACTED"
	WarnMissingDepartmentHeader WarningKind = "MISSING_DEPARTMENT_HEADER"
	WarnUnrecognizedTimeFormat  WarningKind = "UNRECOGNIZED_TIME_FORMAT"
	WarnDuplicateEntry          WarningKind = "DUPLICATE_ENTRY"
	WarnEmptyStaffName          WarningKind = "EMPTY_STAFF_NAME"
)

// Warning is an advisory attached to a parse result. Only NO_TABLE_FOUND and
// NO_ENTRIES_EXTRACTED mean the result is empty; everything else is
// informational and the affected entries are still returned.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Detail string      `json:"detail"`
}

// Fatal reports whether warnings include a structural failure, meaning the
// document yielded no schedule at all. Fatal results must not reach the
// review workflow.
func Fatal(warnings []Warning) bool {
	for _, w := range warnings {
		if w.Kind == WarnNoTableFound || w.Kind == WarnNoEntriesExtracted {
			return true
		}
	}
	return false
}
