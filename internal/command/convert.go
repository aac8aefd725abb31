package command

import (
	"fmt"
	"strings"

	"timecalc/internal/ics"
	appLog "timecalc/internal/log"
	"timecalc/internal/parse"
	"timecalc/internal/tz"
)

// Convert interprets "<date/time...> <from-zone> to <to-zone>" and prints
// the same instant in both zones.
func Convert(env Env, args []string) error {
	toPos := -1
	for i, a := range args {
		if strings.ToLower(a) == "to" {
			toPos = i
			break
		}
	}
	// A missing separator is reported before the token count.
	if toPos < 0 && len(args) > 0 {
		return newError(KindMissingSeparator, "Missing 'to' keyword")
	}
	if len(args) < 4 {
		return invalidFormat()
	}
	if toPos+1 >= len(args) {
		return newError(KindMissingArgument, "Missing destination timezone after 'to'")
	}
	toName := args[toPos+1]

	text, fromName, _ := parse.SplitDateTimeAndZone(args[:toPos])
	dt, ok := parse.ParseDateTime(text, env.today())
	if !ok {
		return newError(KindInvalidDateTime, "Could not parse date/time",
			"Examples:",
			"  timecalc tz 4:00 UTC+7 to WIB",
			"  timecalc tz 04:00AM UTC+8 to WIB",
			"  timecalc tz October 9, 2025 at 04:00AM UTC+8 to WIB",
			"  timecalc tz 2025-10-09 04:00 UTC+8 to WIB")
	}

	fromLoc, err := tz.Resolve(fromName)
	if err != nil {
		return unsupportedZone(fromName, err)
	}
	toLoc, err := tz.Resolve(toName)
	if err != nil {
		return unsupportedZone(toName, err)
	}

	from := dt.In(fromLoc)
	to := from.In(toLoc)
	appLog.Debug("converted", "from", from, "to", to)

	fromLabel, toLabel := strings.ToUpper(fromName), strings.ToUpper(toName)
	writeBlock(env.Out, "TIMEZONE CONVERSION",
		fmt.Sprintf("FROM: %s %s %s", from.Format(longDate), from.Format(clockTime), fromLabel),
		fmt.Sprintf("TO:   %s %s %s", to.Format(longDate), to.Format(clockTime), toLabel),
	)

	if env.ICS {
		err := ics.WriteConversion(env.Out, ics.Conversion{
			Summary:  env.ICSSummary,
			From:     from,
			FromZone: fromLabel,
			To:       to,
			ToZone:   toLabel,
			Stamp:    env.Now,
		})
		if err != nil {
			return fmt.Errorf("write ics: %w", err)
		}
	}
	return nil
}

func invalidFormat() *Error {
	return newError(KindMissingArgument, "Invalid format",
		"Example: timecalc convert 4:00 UTC+7 to WIB",
		"         timecalc tz October 9, 2025 at 04:00AM UTC+8 to WIB")
}

func unsupportedZone(name string, err error) *Error {
	e := newError(KindUnsupportedZone, "Unsupported timezone: "+name,
		"Supported: "+strings.Join(tz.Common, ", "))
	e.Err = err
	return e
}
