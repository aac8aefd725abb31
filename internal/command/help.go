package command

import (
	"fmt"
	"io"
)

const usage = `
TIME CALCULATOR CLI
=========================================================

FUTURE/PAST DATES:
  timecalc future 69 days    - Calculate date 69 days from now
  timecalc future 69d        - Short form
  timecalc past 30 days      - Calculate date 30 days ago

TIMEZONE CONVERSION:
  timecalc convert 4:00 UTC+7 to WIB
  timecalc convert 10:00 PST to WIB
  timecalc tz 14:30 WIB to UTC
  timecalc tz 14:30 WIB to UTC --ics   - Also print an iCalendar event

REMAINING DAYS:
  timecalc remaining month   - Days left in current month
  timecalc remaining year    - Days left in current year
  timecalc left month        - Same as above

DAY OF WEEK:
  timecalc day 2025-12-25    - What day is this date?

SUPPORTED TIMEZONES:
  WIB (UTC+7), UTC, PST (UTC-8), EST (UTC-5), JST (UTC+9)
  UTC+0, UTC+7, UTC+8, UTC+9, UTC-5, UTC-7, UTC-8

GLOBAL FLAGS:
  --config <file>            - YAML config (or $TIMECALC_CONFIG)
  --debug                    - Log parsing decisions to stderr
  --version                  - Print version

=========================================================

`

// PrintHelp writes the usage text.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, usage)
}
