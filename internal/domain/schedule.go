package domain

import "time"

// ScheduleEntry is one persisted schedule row: a staff member working (or on
// call) one day. Paper-format fields come from the upload parser; manual rows
// carry the same shape.
type ScheduleEntry struct {
	ID          int64     `json:"id"`
	StaffName   string    `json:"staff_name"`
	ShiftDate   string    `json:"shift_date"` // YYYY-MM-DD
	ShiftTime   string    `json:"shift_time"` // "7am-3pm" style, or "ON"
	Department  string    `json:"department"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UploadStatus string

const (
	UploadPending   UploadStatus = "pending"
	UploadConfirmed UploadStatus = "confirmed"
	UploadCancelled UploadStatus = "cancelled"
)

// ScheduleUpload tracks one uploaded schedule document through the
// parse → review → confirm/cancel workflow.
type ScheduleUpload struct {
	ID                 int64        `json:"id"`
	Filename           string       `json:"filename"`
	FilePath           string       `json:"-"`
	WeekStartDate      string       `json:"weekStartDate"` // YYYY-MM-DD, a Monday
	UploadedByUserID   *int64       `json:"uploadedByUserID,omitempty"`
	UploadedAt         time.Time    `json:"uploadedAt"`
	ParsedEntriesCount int          `json:"parsedEntriesCount"`
	Status             UploadStatus `json:"status"`
}
