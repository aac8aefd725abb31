package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
)

func TestWriteConversionRoundTrip(t *testing.T) {
	hk := time.FixedZone("HKT", 8*3600)
	jk := time.FixedZone("WIB", 7*3600)
	from := time.Date(2025, time.October, 9, 4, 0, 0, 0, hk)

	var buf bytes.Buffer
	err := WriteConversion(&buf, Conversion{
		Summary:  "Standup",
		From:     from,
		FromZone: "UTC+8",
		To:       from.In(jk),
		ToZone:   "WIB",
		Stamp:    time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("WriteConversion: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "PRODID:" + productID, "DTSTART:20251008T200000Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]

	if p := ev.GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "Standup" {
		t.Errorf("SUMMARY = %v", p)
	}
	if p := ev.GetProperty(ical.ComponentPropertyDescription); p == nil || !strings.Contains(p.Value, "2025-10-09 03:00 WIB") {
		t.Errorf("DESCRIPTION = %v", p)
	}
	if p := ev.GetProperty(ical.ComponentPropertyUniqueId); p == nil || !strings.HasSuffix(p.Value, "@timecalc") {
		t.Errorf("UID = %v", p)
	}
	start, err := ev.GetStartAt()
	if err != nil {
		t.Fatalf("GetStartAt: %v", err)
	}
	if !start.Equal(from) {
		t.Errorf("start = %v, want %v", start, from)
	}
}

func TestNewCalendarDefaultSummary(t *testing.T) {
	now := time.Date(2025, time.October, 14, 9, 0, 0, 0, time.UTC)
	cal := NewCalendar(Conversion{From: now, To: now, FromZone: "UTC", ToZone: "UTC", Stamp: now})

	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if p := events[0].GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "Timezone conversion" {
		t.Errorf("SUMMARY = %v", p)
	}
}
