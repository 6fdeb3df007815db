// Package shifts defines the three fixed front-desk shifts and the logical
// shift-date rules used to stamp shift notes.
//
// Shift 1: 07:00-15:00, Shift 2: 15:00-23:00, Shift 3: 23:00-07:00 (crosses
// midnight). A night-audit entry at 01:00 on Jan 2 belongs to Jan 1's shift 3.
package shifts

import "time"

const (
	Shift1 = 1
	Shift2 = 2
	Shift3 = 3
)

const (
	shift1StartHour = 7
	shift2StartHour = 15
	shift3StartHour = 23
)

// Clock resolves the property's wall-clock time. Handlers hold one per
// configured timezone so tests can pin moments explicitly.
type Clock struct {
	loc *time.Location
}

func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Clock{loc: loc}, nil
}

// Now returns the current time in the property's timezone.
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// CurrentShift returns the shift ID (1, 2 or 3) active at t.
func CurrentShift(t time.Time) int {
	switch h := t.Hour(); {
	case h >= shift1StartHour && h < shift2StartHour:
		return Shift1
	case h >= shift2StartHour && h < shift3StartHour:
		return Shift2
	default:
		return Shift3
	}
}

// ShiftDate returns the logical date of the shift active at t. Shift 3 spans
// midnight, so times before 07:00 belong to the previous day's shift.
func ShiftDate(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Hour() < shift1StartHour {
		return day.AddDate(0, 0, -1)
	}
	return day
}

// IsActive reports whether the shift identified by (shiftID, shiftDate) is
// the one currently running at t.
func IsActive(shiftID int, shiftDate time.Time, t time.Time) bool {
	if CurrentShift(t) != shiftID {
		return false
	}
	cur := ShiftDate(t)
	return cur.Year() == shiftDate.Year() && cur.YearDay() == shiftDate.YearDay()
}
