package command

import (
	"fmt"
	"strings"

	"timecalc/internal/calendar"
)

// Remaining reports days left in the current month or year.
func Remaining(env Env, args []string) error {
	if len(args) == 0 {
		return newError(KindMissingArgument, "Specify 'month' or 'year'")
	}

	today := env.today()
	var (
		p        calendar.Period
		endLabel string
	)
	switch strings.ToLower(args[0]) {
	case "month":
		p = calendar.MonthPeriod(today)
		endLabel = "END OF MONTH:    "
	case "year":
		p = calendar.YearPeriod(today)
		endLabel = "END OF YEAR:     "
	default:
		return newError(KindUnknownOption, "Use 'month' or 'year'")
	}

	lines := []string{
		"TODAY:           " + today.Format(shortDate),
		endLabel + p.End.Format(shortDate),
		fmt.Sprintf("DAYS REMAINING:  %d days", p.Remaining),
		fmt.Sprintf("DAYS PASSED:     %d days", p.Passed),
	}
	if env.Weekdays {
		n, err := calendar.WeekdaysBetween(today, p.End)
		if err != nil {
			return fmt.Errorf("count weekdays: %w", err)
		}
		lines = append(lines, fmt.Sprintf("WEEKDAYS LEFT:   %d days", n))
	}

	writeBlock(env.Out, "DAYS REMAINING", lines...)
	return nil
}
