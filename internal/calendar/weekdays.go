package calendar

import (
	"time"

	"github.com/teambition/rrule-go"

	appLog "timecalc/internal/log"
	"timecalc/internal/model"
)

var workWeek = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}

// WeekdaysBetween counts Monday-Friday dates after from, up to and
// including to. It returns 0 when to is not after from.
func WeekdaysBetween(from, to model.Date) (int, error) {
	if to.Sub(from) <= 0 {
		return 0, nil
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   from.AddDays(1).Midnight(time.UTC),
		Until:     to.Midnight(time.UTC),
		Byweekday: workWeek,
	})
	if err != nil {
		appLog.Error("weekday rule rejected", err, "from", from, "to", to)
		return 0, err
	}

	n := len(r.All())
	appLog.Debug("weekdays counted", "from", from, "to", to, "count", n)
	return n, nil
}
