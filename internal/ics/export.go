package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const productID = "-//timecalc//timezone conversion//EN"

// Conversion is a converted instant rendered as a calendar event.
type Conversion struct {
	// Summary becomes the event SUMMARY; a default is used when empty.
	Summary string

	From     time.Time
	FromZone string
	To       time.Time
	ToZone   string

	// Stamp is the DTSTAMP, usually the invocation time.
	Stamp time.Time
}

// NewCalendar builds a VCALENDAR holding one zero-length VEVENT at the
// converted instant. Times are serialized in UTC.
func NewCalendar(c Conversion) *ical.Calendar {
	summary := c.Summary
	if summary == "" {
		summary = "Timezone conversion"
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	ev := cal.AddEvent(uuid.NewString() + "@timecalc")
	ev.SetDtStampTime(c.Stamp)
	ev.SetStartAt(c.From)
	ev.SetEndAt(c.From)
	ev.SetSummary(summary)
	ev.SetDescription(fmt.Sprintf("%s %s = %s %s",
		c.From.Format("2006-01-02 15:04"), c.FromZone,
		c.To.Format("2006-01-02 15:04"), c.ToZone))

	return cal
}

// WriteConversion serializes the conversion as iCalendar text.
func WriteConversion(w io.Writer, c Conversion) error {
	_, err := io.WriteString(w, NewCalendar(c).Serialize())
	return err
}
