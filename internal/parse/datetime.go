package parse

import (
	"strings"

	appLog "timecalc/internal/log"
	"timecalc/internal/model"
)

// ParseDateTime reads free-form text such as "October 9, 2025 at 04:00AM"
// or "2025-10-09 16:30". A clock time is required; the date falls back to
// today when absent. The connective " at " is dropped before matching.
func ParseDateTime(input string, today model.Date) (model.DateTime, bool) {
	cleaned := strings.ReplaceAll(strings.ToLower(input), " at ", " ")

	clock, ok := ExtractTime(cleaned)
	if !ok {
		return model.DateTime{}, false
	}
	date := ExtractDate(cleaned, today)

	dt := model.DateTime{Date: date, Clock: clock}
	appLog.Debug("parsed datetime", "input", input, "result", dt)
	return dt, true
}

// SplitDateTimeAndZone treats the last token as a timezone name and joins
// the rest back into date/time text. ok is false when parts is empty.
func SplitDateTimeAndZone(parts []string) (datetime, zone string, ok bool) {
	if len(parts) == 0 {
		return "", "", false
	}
	last := len(parts) - 1
	return strings.Join(parts[:last], " "), parts[last], true
}
