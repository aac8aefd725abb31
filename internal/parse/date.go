package parse

import (
	"strconv"
	"strings"
	"time"

	appLog "timecalc/internal/log"
	"timecalc/internal/model"
)

type monthName struct {
	name  string
	month time.Month
}

// Long names are tried before abbreviations; the order decides which entry
// claims an input that contains several.
var monthNames = []monthName{
	{"january", time.January}, {"february", time.February}, {"march", time.March},
	{"april", time.April}, {"may", time.May}, {"june", time.June},
	{"july", time.July}, {"august", time.August}, {"september", time.September},
	{"october", time.October}, {"november", time.November}, {"december", time.December},
	{"jan", time.January}, {"feb", time.February}, {"mar", time.March},
	{"apr", time.April}, {"jun", time.June}, {"jul", time.July},
	{"aug", time.August}, {"sep", time.September}, {"sept", time.September},
	{"oct", time.October}, {"nov", time.November}, {"dec", time.December},
}

// ExtractDate finds a calendar date in lower-cased input. It recognises
// "<month> <day>[,] <year>" and a leading YYYY-MM-DD token, and returns
// today when neither yields a real date.
//
// Month names match as substrings, so a token such as "mayor" counts as May.
func ExtractDate(input string, today model.Date) model.Date {
	if d, ok := monthDayYear(input); ok {
		return d
	}

	if first := strings.Fields(input); len(first) > 0 {
		if d, err := ParseISODate(first[0]); err == nil {
			appLog.Debug("iso date matched", "token", first[0])
			return d
		}
	}

	appLog.Debug("no date found, using today", "today", today)
	return today
}

func monthDayYear(input string) (model.Date, bool) {
	for _, mn := range monthNames {
		if !strings.Contains(input, mn.name) {
			continue
		}

		parts := strings.Fields(input)
		var (
			day, year     int
			dayOK, yearOK bool
		)
		// Every token holding the name is considered; a later one overrides
		// an earlier one.
		for i, part := range parts {
			if !strings.Contains(part, mn.name) {
				continue
			}
			if i+1 < len(parts) {
				day, dayOK = parseUint(strings.TrimRight(parts[i+1], ","))
			}
			if i+2 < len(parts) {
				year, yearOK = parseInt(parts[i+2])
			}
		}
		if !dayOK || !yearOK {
			continue
		}

		d, err := model.NewDate(year, mn.month, day)
		if err != nil {
			appLog.Debug("month name matched but date invalid", "month", mn.name, "day", day, "year", year)
			continue
		}
		appLog.Debug("month name matched", "month", mn.name, "date", d)
		return d, true
	}
	return model.Date{}, false
}

// ParseISODate parses a strict, zero-padded YYYY-MM-DD date.
func ParseISODate(s string) (model.Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return model.Date{}, err
	}
	return model.DateOf(t), nil
}

// parseUint accepts one leading '+', as the year parse does.
func parseUint(s string) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func parseInt(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
