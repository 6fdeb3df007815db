package domain

import "time"

type RoomIssueType string

const (
	IssueHotWater RoomIssueType = "Hot Water"
	IssueHVAC     RoomIssueType = "HVAC"
	IssuePlumbing RoomIssueType = "Plumbing"
	IssueOther    RoomIssueType = "Other"
)

type RoomIssueStatus string

const (
	RoomOutOfOrder   RoomIssueStatus = "out_of_order"
	RoomUseIfNeeded  RoomIssueStatus = "use_if_needed"
)

type RoomIssueState string

const (
	IssueActive   RoomIssueState = "active"
	IssueResolved RoomIssueState = "resolved"
)

type RoomIssue struct {
	ID         int64           `json:"id"`
	RoomNumber string          `json:"roomNumber"`
	IssueType  RoomIssueType   `json:"issueType"`
	Status     RoomIssueStatus `json:"status"`
	Note       string          `json:"note"`
	State      RoomIssueState  `json:"state"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  *time.Time      `json:"updatedAt,omitempty"`
	ResolvedAt *time.Time      `json:"resolvedAt,omitempty"`
}
