package domain

import "time"

type RecordStatus string

const (
	RecordActive  RecordStatus = "active"
	RecordExpired RecordStatus = "expired"
	RecordLifted  RecordStatus = "lifted"
)

type BanType string

const (
	BanTemporary BanType = "temporary"
	BanPermanent BanType = "permanent"
)

type ExpirationType string

const (
	ExpireByDate      ExpirationType = "date"
	ExpireWhenResolved ExpirationType = "resolved"
	ExpireOnReview    ExpirationType = "manager_review"
)

type LiftType string

const (
	LiftManagerOverride LiftType = "manager_override"
	LiftIssueResolved   LiftType = "issue_resolved"
	LiftErrorEntry      LiftType = "error_entry"
)

// BanReasons is the predefined reason list shown on the intake form. Free-text
// reasons are rejected; detail goes in ReasonDetail.
var BanReasons = []string{
	"Noise complaints multiple incidents",
	"Smoking in non smoking room",
	"Damage under review",
	"Housekeeping safety concern",
	"Aggressive or abusive behavior toward staff",
	"Policy violation warning issued",
	"Third party booking dispute",
	"Chargeback or payment dispute pending",
	"Local police involvement without arrest",
	"Welfare check initiated",
	"Ruined linnen",
	"Scammer",
	"Animals",
	"Drug use",
	"Former employee on bad terms",
	"Stole property",
}

// GuestRecord is one do-not-rent entry.
type GuestRecord struct {
	ID             int64          `json:"id"`
	GuestName      string         `json:"guestName"`
	Status         RecordStatus   `json:"status"`
	BanType        BanType        `json:"banType"`
	Reasons        []string       `json:"reasons"`
	ReasonDetail   string         `json:"reasonDetail"`
	DateAdded      string         `json:"dateAdded"` // YYYY-MM-DD
	IncidentDate   string         `json:"incidentDate,omitempty"`
	ExpirationType ExpirationType `json:"expirationType,omitempty"`
	ExpirationDate string         `json:"expirationDate,omitempty"`
	LiftedDate     string         `json:"liftedDate,omitempty"`
	LiftedType     LiftType       `json:"liftedType,omitempty"`
	LiftedReason   string         `json:"liftedReason,omitempty"`
	LiftedInitials string         `json:"liftedInitials,omitempty"`
	Timeline       []TimelineEntry `json:"timeline,omitempty"`
	Photos         []Photo        `json:"photos,omitempty"`
}

// TimelineEntry is a dated note on a guest record. System entries are written
// by the application itself (creation, lift, auto-expiry, failed lift
// attempts).
type TimelineEntry struct {
	ID            int64  `json:"id"`
	RecordID      int64  `json:"recordID"`
	EntryDate     string `json:"entryDate"` // YYYY-MM-DD
	StaffInitials string `json:"staffInitials,omitempty"`
	Note          string `json:"note"`
	IsSystem      bool   `json:"isSystem"`
}

type Photo struct {
	ID           int64     `json:"id"`
	RecordID     int64     `json:"recordID"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	UploadDate   time.Time `json:"uploadDate"`
}
