package command

import (
	"fmt"

	"timecalc/internal/parse"
)

// Future prints today and the date N days ahead.
func Future(env Env, args []string) error {
	if len(args) == 0 {
		return newError(KindMissingArgument, "Please specify number of days",
			"Example: timecalc future 69 days")
	}
	days, err := parse.ParseDays(args[0])
	if err != nil {
		return InvalidCount("future", err)
	}

	target := env.Now.AddDate(0, 0, days)
	writeBlock(env.Out, "DATE CALCULATION",
		fmt.Sprintf("TODAY:        %s (%s)", env.Now.Format(longDate), env.Now.Format(isoDate)),
		fmt.Sprintf("AFTER %d DAYS: %s (%s)", days, target.Format(longDate), target.Format(isoDate)),
	)
	return nil
}

// Past prints today and the date N days back.
func Past(env Env, args []string) error {
	if len(args) == 0 {
		return newError(KindMissingArgument, "Please specify number of days")
	}
	days, err := parse.ParseDays(args[0])
	if err != nil {
		return InvalidCount("past", err)
	}

	target := env.Now.AddDate(0, 0, -days)
	writeBlock(env.Out, "DATE CALCULATION",
		fmt.Sprintf("TODAY:        %s (%s)", env.Now.Format(longDate), env.Now.Format(isoDate)),
		fmt.Sprintf("%d DAYS AGO:  %s (%s)", days, target.Format(longDate), target.Format(isoDate)),
	)
	return nil
}

// InvalidCount is the error future and past report for a day count they
// cannot read. cause is kept as the wrapped error.
func InvalidCount(cmd string, cause error) *Error {
	msg := "Could not parse days. Use format like: 69 days, 69d, or just 69"
	if cmd == "past" {
		msg = "Could not parse days"
	}
	e := newError(KindInvalidCount, msg)
	e.Err = cause
	return e
}
