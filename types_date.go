package jbudget

import (
	"fmt"
	"time"
)

// DateFormat is the canonical ISO-8601 representation of a date.
const DateFormat = "2006-01-02"

// LegacyDateFormat is the day-first representation used in the flat-file
// rows (dd-MM-yyyy).
const LegacyDateFormat = "02-01-2006"

// Date represents a date with day-level granularity.
//
// Movements and transactions are dated, never timed: comparing two dates
// compares calendar days, and Today() is the cutoff for balance
// computations.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a date in the canonical ISO form, falling back to the
// legacy day-first form. Any other input is a malformed value.
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{DateFormat, LegacyDateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("%w: date %q", ErrParse, s)
}

// MustParseDate is a test helper that panics on malformed input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// time returns the canonical time.Time for that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formats the date in the canonical ISO form.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Legacy formats the date in the day-first flat-file form.
func (d Date) Legacy() string { return d.time().Format(LegacyDateFormat) }

// Format returns the date formatted according to a time.Format layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date { return NewDate(d.y, d.m, d.d+n) }
