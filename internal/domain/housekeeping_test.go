package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planRequest(freq HousekeepingFrequency, freqDays int, start, end string) *HousekeepingRequest {
	return &HousekeepingRequest{
		RoomNumber:    "204",
		GuestName:     "Dana Whitfield",
		StartDate:     start,
		EndDate:       end,
		Frequency:     freq,
		FrequencyDays: freqDays,
	}
}

func TestPlanServiceDatesDaily(t *testing.T) {
	req := planRequest(FrequencyDaily, 0, "2026-03-02", "2026-03-06")

	dates, err := req.PlanServiceDates()
	require.NoError(t, err)
	// check-in day skipped, check-out day excluded
	assert.Equal(t, []string{"2026-03-03", "2026-03-04", "2026-03-05"}, dates)
}

func TestPlanServiceDatesEvery3rdDay(t *testing.T) {
	req := planRequest(FrequencyEvery3rd, 0, "2026-03-02", "2026-03-12")

	dates, err := req.PlanServiceDates()
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-05", "2026-03-08", "2026-03-11"}, dates)
}

func TestPlanServiceDatesCustomInterval(t *testing.T) {
	req := planRequest(FrequencyCustom, 2, "2026-03-02", "2026-03-09")

	dates, err := req.PlanServiceDates()
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-04", "2026-03-06", "2026-03-08"}, dates)
}

func TestPlanServiceDatesNone(t *testing.T) {
	req := planRequest(FrequencyNone, 0, "2026-03-02", "2026-03-09")

	dates, err := req.PlanServiceDates()
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestPlanServiceDatesShortStay(t *testing.T) {
	// one-night stay: nothing falls between check-in and check-out
	req := planRequest(FrequencyDaily, 0, "2026-03-02", "2026-03-03")

	dates, err := req.PlanServiceDates()
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestPlanServiceDatesCustomWithoutInterval(t *testing.T) {
	req := planRequest(FrequencyCustom, 0, "2026-03-02", "2026-03-09")

	dates, err := req.PlanServiceDates()
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestPlanServiceDatesBadDate(t *testing.T) {
	req := planRequest(FrequencyDaily, 0, "03/02/2026", "2026-03-09")

	_, err := req.PlanServiceDates()
	assert.Error(t, err)
}
