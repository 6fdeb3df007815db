package shifts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 1, 15, hour, minute, 0, 0, time.UTC)
}

func TestCurrentShift(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         int
	}{
		{7, 0, Shift1},
		{14, 59, Shift1},
		{15, 0, Shift2},
		{22, 59, Shift2},
		{23, 0, Shift3},
		{0, 0, Shift3},
		{1, 30, Shift3},
		{6, 59, Shift3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CurrentShift(at(tt.hour, tt.minute)), "at %02d:%02d", tt.hour, tt.minute)
	}
}

func TestShiftDate(t *testing.T) {
	// daytime stays on its calendar day
	assert.Equal(t, "2026-01-15", ShiftDate(at(9, 0)).Format("2006-01-02"))
	assert.Equal(t, "2026-01-15", ShiftDate(at(23, 30)).Format("2006-01-02"))

	// a night-audit note at 01:30 belongs to the previous day's shift
	assert.Equal(t, "2026-01-14", ShiftDate(at(1, 30)).Format("2006-01-02"))
	assert.Equal(t, "2026-01-14", ShiftDate(at(6, 59)).Format("2006-01-02"))
	assert.Equal(t, "2026-01-15", ShiftDate(at(7, 0)).Format("2006-01-02"))
}

func TestShiftDateCrossesMonthBoundary(t *testing.T) {
	feb1 := time.Date(2026, 2, 1, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-31", ShiftDate(feb1).Format("2006-01-02"))
}

func TestIsActive(t *testing.T) {
	now := at(2, 0) // shift 3 of Jan 14

	jan14 := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	jan15 := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsActive(Shift3, jan14, now))
	assert.False(t, IsActive(Shift3, jan15, now))
	assert.False(t, IsActive(Shift1, jan14, now))
}

func TestNewClock(t *testing.T) {
	clock, err := NewClock("America/New_York")
	require.NoError(t, err)
	assert.NotNil(t, clock)

	_, err = NewClock("Mars/Olympus")
	assert.Error(t, err)
}
