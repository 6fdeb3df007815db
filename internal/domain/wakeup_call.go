package domain

import "time"

type WakeupStatus string

const (
	WakeupPending   WakeupStatus = "pending"
	WakeupCompleted WakeupStatus = "completed"
	WakeupFailed    WakeupStatus = "failed"
	WakeupCancelled WakeupStatus = "cancelled"
)

type WakeupCall struct {
	ID                int64        `json:"id"`
	RoomNumber        string       `json:"roomNumber"`
	CallDate          string       `json:"callDate"` // YYYY-MM-DD
	CallTime          string       `json:"callTime"` // HH:MM, 24h
	RequestSource     string       `json:"requestSource,omitempty"`
	Status            WakeupStatus `json:"status"`
	LoggedByUserID    *int64       `json:"loggedByUserID,omitempty"`
	CompletedByUserID *int64       `json:"completedByUserID,omitempty"`
	OutcomeNote       string       `json:"outcomeNote,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         *time.Time   `json:"updatedAt,omitempty"`
}
