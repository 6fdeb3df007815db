package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"canonical range unchanged", "7am-3pm", "7am-3pm", true},
		{"zero minutes dropped", "9:00am-5:00pm", "9am-5pm", true},
		{"minutes kept", "8:45am-12:45pm", "8:45am-12:45pm", true},
		{"spaces around dash", "8:45am - 12:45pm", "8:45am-12:45pm", true},
		{"en dash", "11PM–7AM", "11pm-7am", true},
		{"upper case folded", "3PM-11PM", "3pm-11pm", true},
		{"leading zero stripped", "07am-03pm", "7am-3pm", true},
		{"no colon minutes", "845am-1245pm", "8:45am-12:45pm", true},
		{"on call bare", "ON", "ON", true},
		{"on call lower", "on", "ON", true},
		{"on call spelled", "On Call", "ON", true},
		{"on call hyphenated", "on-call", "ON", true},
		{"empty cell", "", "", true},
		{"whitespace only", "   ", "", true},
		{"unrecognized kept raw", "morning??", "morning??", false},
		{"single endpoint rejected", "7am", "7am", false},
		{"word rejected", "OFF", "OFF", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeTime(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNormalizeTimeIdempotent(t *testing.T) {
	for _, raw := range []string{"7am-3pm", "8:45am-12:45pm", "ON", "11pm-7am"} {
		once, ok := NormalizeTime(raw)
		assert.True(t, ok)
		twice, ok := NormalizeTime(once)
		assert.True(t, ok)
		assert.Equal(t, once, twice)
	}
}

func TestExtractPhone(t *testing.T) {
	phone, rest := extractPhone("Karolee 555-888-9397")
	assert.Equal(t, "555-888-9397", phone)
	assert.Equal(t, "Karolee", rest)

	phone, rest = extractPhone("Dana")
	assert.Empty(t, phone)
	assert.Equal(t, "Dana", rest)

	phone, _ = extractPhone("call 555.123.4567 after 5")
	assert.Equal(t, "555.123.4567", phone)
}

func TestIsPhoneOnly(t *testing.T) {
	assert.True(t, isPhoneOnly("555-321-7654"))
	assert.True(t, isPhoneOnly(" 5551234567 "))
	assert.False(t, isPhoneOnly("Karolee 555-888-9397"))
	assert.False(t, isPhoneOnly("ext 12"))
	assert.False(t, isPhoneOnly(""))
}

func TestDetectDepartment(t *testing.T) {
	assert.Equal(t, DepartmentFrontDesk, detectDepartment("FRONT DESK"))
	assert.Equal(t, DepartmentFrontDesk, detectDepartment("Front Desk Staff"))
	assert.Equal(t, DepartmentHousekeeping, detectDepartment("housekeeping"))
	assert.Equal(t, DepartmentBreakfastAttendant, detectDepartment("BREAKFAST ATTENDANT"))
	assert.Equal(t, DepartmentInspecting, detectDepartment("Inspecting"))
	assert.Equal(t, DepartmentUnknown, detectDepartment("Dana"))
	assert.Equal(t, DepartmentUnknown, detectDepartment(""))
}

func TestContainsWeekday(t *testing.T) {
	assert.True(t, containsWeekday("MON"))
	assert.True(t, containsWeekday("Monday"))
	assert.True(t, containsWeekday("THURS 1/8"))
	assert.False(t, containsWeekday("NAME"))
	assert.False(t, containsWeekday("PHONE"))
	assert.False(t, containsWeekday(""))
}

func TestLooksLikeTime(t *testing.T) {
	assert.True(t, looksLikeTime("7am-3pm"))
	assert.True(t, looksLikeTime("on call"))
	assert.False(t, looksLikeTime("Karolee"))
	assert.False(t, looksLikeTime("555-888-9397"))
}
