package parse

import (
	"testing"
	"time"

	"timecalc/internal/model"
)

var today = model.Date{Year: 2025, Month: time.October, Day: 14}

func date(y int, m time.Month, d int) model.Date {
	return model.Date{Year: y, Month: m, Day: d}
}

func TestExtractDate(t *testing.T) {
	cases := []struct {
		in   string
		want model.Date
	}{
		{"2025-10-31 04:00pm", date(2025, time.October, 31)},
		{"2025-01-01", date(2025, time.January, 1)},
		{"2024-02-29", date(2024, time.February, 29)},
		{"october 9, 2025 04:00am", date(2025, time.October, 9)},
		{"jan 1, 2024", date(2024, time.January, 1)},

		{"january 15, 2025", date(2025, time.January, 15)},
		{"february 20, 2025", date(2025, time.February, 20)},
		{"march 10, 2025", date(2025, time.March, 10)},
		{"april 5, 2025", date(2025, time.April, 5)},
		{"may 1, 2025", date(2025, time.May, 1)},
		{"june 30, 2025", date(2025, time.June, 30)},
		{"july 4, 2025", date(2025, time.July, 4)},
		{"august 15, 2025", date(2025, time.August, 15)},
		{"september 1, 2025", date(2025, time.September, 1)},
		{"november 11, 2025", date(2025, time.November, 11)},
		{"december 25, 2025", date(2025, time.December, 25)},

		{"feb 14, 2025", date(2025, time.February, 14)},
		{"mar 17, 2025", date(2025, time.March, 17)},
		{"apr 1, 2025", date(2025, time.April, 1)},
		{"jun 15, 2025", date(2025, time.June, 15)},
		{"jul 20, 2025", date(2025, time.July, 20)},
		{"aug 31, 2025", date(2025, time.August, 31)},
		{"sep 5, 2025", date(2025, time.September, 5)},
		{"sept 10, 2025", date(2025, time.September, 10)},
		{"oct 31, 2025", date(2025, time.October, 31)},
		{"nov 5, 2025", date(2025, time.November, 5)},
		{"dec 31, 2025", date(2025, time.December, 31)},

		// No comma, several commas.
		{"march 3 2026", date(2026, time.March, 3)},
		{"march 3,, 2026", date(2026, time.March, 3)},

		// Signs on day and year.
		{"october +9, 2025", date(2025, time.October, 9)},
		{"october 9, +2025", date(2025, time.October, 9)},

		// Substring matching is intentional.
		{"mayor 5, 2025", date(2025, time.May, 5)},

		// Fallbacks to today.
		{"4:00pm", today},
		{"", today},
		{"february 30, 2025", today},
		{"month13 15, 2025", today},
		{"october", today},
		{"october nine, 2025", today},
		{"october -9, 2025", today},
		{"october ++9, 2025", today},
		{"2025-13-01", today},
		{"2025-1-5", today},
		{"04:00 2025-10-31", today},
	}
	for _, c := range cases {
		if got := ExtractDate(c.in, today); got != c.want {
			t.Errorf("ExtractDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExtractDateFirstMonthWins(t *testing.T) {
	// "march" precedes "jun" in the table, so the March date is used
	// even though the June date appears first in the text.
	got := ExtractDate("jun 1, 2025 or march 2, 2025", today)
	if want := date(2025, time.March, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractDateInvalidMonthFallsThrough(t *testing.T) {
	// February 30 is rejected, then the leading ISO token still applies.
	got := ExtractDate("2025-06-01 february 30, 2025", today)
	if want := date(2025, time.June, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseISODate(t *testing.T) {
	valid := map[string]model.Date{
		"2025-10-31": date(2025, time.October, 31),
		"2025-12-25": date(2025, time.December, 25),
		"2024-02-29": date(2024, time.February, 29),
	}
	for in, want := range valid {
		got, err := ParseISODate(in)
		if err != nil || got != want {
			t.Errorf("ParseISODate(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	for _, in := range []string{"", "invalid-date", "2025-02-30", "2025-1-05", "25-10-31", "2025/10/31", "2025-10-31x"} {
		if _, err := ParseISODate(in); err == nil {
			t.Errorf("ParseISODate(%q) expected error", in)
		}
	}
}
