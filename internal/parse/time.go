// Package parse turns loosely formatted user text into calendar values.
//
// Matching is heuristic and ordered: the clock time is located first, then
// the date, and in each case the first match wins.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	appLog "timecalc/internal/log"
	"timecalc/internal/model"
)

var timePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)?`)

// ExtractTime finds the first H:MM or HH:MM token, with an optional am/pm
// marker, in lower-cased input. 12-hour values are converted to 24-hour
// time; without a marker the value is taken as 24-hour. Out-of-range
// results are reported as not found.
func ExtractTime(input string) (model.Clock, bool) {
	m := timePattern.FindStringSubmatch(input)
	if m == nil {
		appLog.Debug("no time token", "input", input)
		return model.Clock{}, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return model.Clock{}, false
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return model.Clock{}, false
	}

	switch {
	case m[3] == "pm" && hour != 12:
		hour += 12
	case m[3] == "am" && hour == 12:
		hour = 0
	}

	clock, err := model.NewClock(hour, minute)
	if err != nil {
		appLog.Debug("time token out of range", "token", strings.TrimSpace(m[0]), "hour", hour, "minute", minute)
		return model.Clock{}, false
	}

	appLog.Debug("time token matched", "token", strings.TrimSpace(m[0]), "clock", clock)
	return clock, true
}
