package domain

import "time"

// LogEntry is a shift note. Entries are stamped with the logical shift active
// when they were written, so night-audit notes after midnight stay with the
// previous day's shift.
type LogEntry struct {
	ID                   int64     `json:"id"`
	CreatedAt            time.Time `json:"createdAt"`
	AuthorName           string    `json:"authorName"`
	Note                 string    `json:"note"`
	RelatedRecordID      *int64    `json:"relatedRecordID,omitempty"`
	RelatedMaintenanceID *int64    `json:"relatedMaintenanceID,omitempty"`
	IsSystemEvent        bool      `json:"isSystemEvent"`
	ShiftID              int       `json:"shiftID"`
	ShiftDate            string    `json:"shiftDate"` // YYYY-MM-DD, logical date
}
