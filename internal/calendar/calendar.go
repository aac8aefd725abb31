package calendar

import (
	"time"

	"timecalc/internal/model"
)

// Period describes where a date sits inside its month or year.
type Period struct {
	Today     model.Date
	End       model.Date
	Remaining int // days from Today to End
	Passed    int // day of month, or day of year
}

// LastDayOfMonth returns the final date of the given month.
func LastDayOfMonth(year int, month time.Month) model.Date {
	nextYear, nextMonth := year, month+1
	if month == time.December {
		nextYear, nextMonth = year+1, time.January
	}
	first := time.Date(nextYear, nextMonth, 1, 0, 0, 0, 0, time.UTC)
	return model.DateOf(first.AddDate(0, 0, -1))
}

// EndOfYear returns December 31 of year.
func EndOfYear(year int) model.Date {
	return model.Date{Year: year, Month: time.December, Day: 31}
}

func MonthPeriod(today model.Date) Period {
	end := LastDayOfMonth(today.Year, today.Month)
	return Period{
		Today:     today,
		End:       end,
		Remaining: end.Sub(today),
		Passed:    today.Day,
	}
}

func YearPeriod(today model.Date) Period {
	end := EndOfYear(today.Year)
	return Period{
		Today:     today,
		End:       end,
		Remaining: end.Sub(today),
		Passed:    today.YearDay(),
	}
}
