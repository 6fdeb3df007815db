package domain

import "time"

type HousekeepingFrequency string

const (
	FrequencyNone      HousekeepingFrequency = "none"
	FrequencyDaily     HousekeepingFrequency = "daily"
	FrequencyEvery3rd  HousekeepingFrequency = "every_3rd_day"
	FrequencyCustom    HousekeepingFrequency = "custom"
)

type HousekeepingRequest struct {
	ID            int64                 `json:"id"`
	RoomNumber    string                `json:"roomNumber"`
	GuestName     string                `json:"guestName"`
	StartDate     string                `json:"startDate"` // YYYY-MM-DD, check-in
	EndDate       string                `json:"endDate"`   // YYYY-MM-DD, check-out
	Frequency     HousekeepingFrequency `json:"frequency"`
	FrequencyDays int                   `json:"frequencyDays,omitempty"` // for custom
	Notes         string                `json:"notes"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     *time.Time            `json:"updatedAt,omitempty"`
	ArchivedAt    *time.Time            `json:"archivedAt,omitempty"`
	ServiceDates  []ServiceDate         `json:"serviceDates,omitempty"`
}

type ServiceDate struct {
	ID          int64  `json:"id"`
	RequestID   int64  `json:"requestID"`
	ServiceDate string `json:"serviceDate"` // YYYY-MM-DD
	IsActive    bool   `json:"isActive"`
}

// PlanServiceDates materializes the cleaning calendar for a stay. The
// check-in day is never serviced; daily runs every day after it, every_3rd_day
// and custom step by their interval, none yields nothing. The check-out day is
// excluded.
func (h *HousekeepingRequest) PlanServiceDates() ([]string, error) {
	start, err := time.Parse("2006-01-02", h.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", h.EndDate)
	if err != nil {
		return nil, err
	}

	step := 0
	switch h.Frequency {
	case FrequencyDaily:
		step = 1
	case FrequencyEvery3rd:
		step = 3
	case FrequencyCustom:
		step = h.FrequencyDays
	}
	if step <= 0 {
		return nil, nil
	}

	var dates []string
	for d := start.AddDate(0, 0, step); d.Before(end); d = d.AddDate(0, 0, step) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates, nil
}
