package schedule

import (
	"regexp"
	"strings"
)

// departmentKeywords maps a lowercase keyword to the department a header row
// containing it announces. Matching is case-insensitive containment.
var departmentKeywords = []struct {
	keyword    string
	department Department
}{
	{"front desk", DepartmentFrontDesk},
	{"housekeeping", DepartmentHousekeeping},
	{"breakfast", DepartmentBreakfastAttendant},
	{"laundry", DepartmentLaundry},
	{"maintenance", DepartmentMaintenance},
	{"inspect", DepartmentInspecting},
}

// weekdayTokens are the header tokens recognized for day-column detection,
// matched case-insensitively as substrings. Abbreviations cover the long
// names too ("monday" contains "mon").
var weekdayTokens = []string{"mon", "tue", "wed", "thu", "thurs", "fri", "sat", "sun"}

// timeRangePattern matches a two-endpoint time range like "7am-3pm",
// "8:45am - 12:45pm" or "11PM–7AM" (hyphen or en-dash).
var timeRangePattern = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(am|pm)\s*[-–]\s*(\d{1,2}):?(\d{2})?\s*(am|pm)`)

// phonePattern matches "3 digits, separator, 3 digits, separator, 4 digits"
// with hyphen, period, space, or no separator.
var phonePattern = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)

// detectDepartment returns the department a cell announces, or
// DepartmentUnknown if the cell names none.
func detectDepartment(cell string) Department {
	lower := strings.ToLower(strings.TrimSpace(cell))
	if lower == "" {
		return DepartmentUnknown
	}
	for _, kw := range departmentKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.department
		}
	}
	return DepartmentUnknown
}

// containsWeekday reports whether a header cell names a weekday.
func containsWeekday(cell string) bool {
	lower := strings.ToLower(strings.TrimSpace(cell))
	if lower == "" {
		return false
	}
	for _, tok := range weekdayTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// extractPhone pulls the first phone-shaped token out of text. It returns the
// matched phone and the text with the match removed, or "" and the input
// untouched when nothing matches.
func extractPhone(text string) (phone, rest string) {
	loc := phonePattern.FindStringIndex(text)
	if loc == nil {
		return "", text
	}
	return text[loc[0]:loc[1]], strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
}

// isPhoneOnly reports whether a cell consists solely of a phone-shaped token.
func isPhoneOnly(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return false
	}
	loc := phonePattern.FindStringIndex(trimmed)
	return loc != nil && loc[0] == 0 && loc[1] == len(trimmed)
}

// looksLikeTime reports whether a cell contains a recognizable time range or
// on-call marker. Used to flag ambiguous continuation rows.
func looksLikeTime(cell string) bool {
	if isOnCall(cell) {
		return true
	}
	return timeRangePattern.MatchString(cell)
}

// isOnCall recognizes the "on call, no fixed hours" variants.
func isOnCall(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "on", "on-call", "on call", "oncall":
		return true
	}
	return false
}

// NormalizeTime converts a raw shift cell to its canonical form: "ON" for
// on-call variants, "{h}[:mm]{am|pm}-{h}[:mm]{am|pm}" for a recognized
// two-endpoint range (minutes omitted when :00, lower-case meridiem, no
// spaces around the dash). The second return is false when the text is
// non-empty but matches neither shape; callers keep the raw text and warn.
// Normalizing an already-normalized string returns it unchanged.
func NormalizeTime(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", true
	}
	if isOnCall(trimmed) {
		return OnCall, true
	}

	m := timeRangePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed, false
	}

	return formatEndpoint(m[1], m[2], m[3]) + "-" + formatEndpoint(m[4], m[5], m[6]), true
}

func formatEndpoint(hour, minute, meridiem string) string {
	hour = strings.TrimLeft(hour, "0")
	if hour == "" {
		hour = "0"
	}
	if minute == "" || minute == "00" {
		return hour + strings.ToLower(meridiem)
	}
	return hour + ":" + minute + strings.ToLower(meridiem)
}
