package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate  = errors.New("invalid calendar date")
	ErrInvalidClock = errors.New("invalid clock time")
)

// Date is a Gregorian calendar date without a timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates year/month/day and returns the Date. Dates that do not
// exist (e.g. February 30) are rejected rather than normalized.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December || day < 1 {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Midnight returns 00:00 of the date in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Midnight(time.UTC).AddDate(0, 0, n))
}

// Sub returns the number of calendar days from o to d.
func (d Date) Sub(o Date) int {
	return int(d.Midnight(time.UTC).Sub(o.Midnight(time.UTC)).Hours() / 24)
}

func (d Date) Weekday() time.Weekday {
	return d.Midnight(time.UTC).Weekday()
}

// YearDay returns the day of the year, 1 for January 1.
func (d Date) YearDay() int {
	return d.Midnight(time.UTC).YearDay()
}

func (d Date) Format(layout string) string {
	return d.Midnight(time.UTC).Format(layout)
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// NewClock rejects hours outside 0-23 and minutes outside 0-59.
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidClock, hour, minute)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// DateTime is a naive timestamp: a date and a clock time with no zone
// attached. It only gains an instant once interpreted in a location.
type DateTime struct {
	Date  Date
	Clock Clock
}

// In interprets the wall-clock value in loc. Times that fall in a DST gap
// or overlap are resolved the way time.Date resolves them.
func (dt DateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.Date.Year, dt.Date.Month, dt.Date.Day, dt.Clock.Hour, dt.Clock.Minute, 0, 0, loc)
}

func (dt DateTime) String() string {
	return dt.Date.String() + " " + dt.Clock.String()
}
