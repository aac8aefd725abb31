package command

import (
	"timecalc/internal/parse"
)

// DayOfWeek prints the weekday of a YYYY-MM-DD date.
func DayOfWeek(env Env, args []string) error {
	if len(args) == 0 {
		return newError(KindMissingArgument, "Please provide a date",
			"Example: timecalc day 2025-12-25")
	}
	d, err := parse.ParseISODate(args[0])
	if err != nil {
		e := newError(KindInvalidDateTime, "Invalid date format. Use YYYY-MM-DD")
		e.Err = err
		return e
	}

	writeBlock(env.Out, "DAY OF WEEK",
		"DATE: "+d.Format(shortDate),
		"DAY:  "+d.Weekday().String(),
	)
	return nil
}
