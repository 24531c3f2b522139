/*
Package calendar provides fiscal calendar periods: financial years running
July 1 through June 30, and calendar quarters.

PURPOSE:
  Answers "which financial year (or quarter) does this date fall in",
  whether a date belongs to a period, and which period comes next. All
  types are immutable values; every derivation returns a new value.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: a calendar day, the unit every period is built from

USAGE:
  fy := calendar.FinancialYearOf(calendar.NewDate(2021, time.February, 3))
  fy.String()  // "2020-21"

  q, err := calendar.ParseQuarter("2020Q3")
  q.Next()     // 2020Q4

SEE ALSO:
  - clock.go: Injectable source of "today"
  - financial_year.go: FinancialYear
  - quarter.go: Quarter
*/
package calendar

import (
	"time"
)

// DateLayout is the YYYY-MM-DD form accepted by ParseDate and produced by Date.String.
const DateLayout = "2006-01-02"

// =============================================================================
// DATE - Day-resolution calendar date
// =============================================================================

// Date is a calendar day. The underlying time is always midnight UTC, so two
// Dates for the same day compare equal with == as well as Equal.
type Date struct {
	t time.Time
}

// NewDate returns the date for year, month and day. Out-of-range values are
// normalized the way time.Date does (April 31 becomes May 1).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the wall-clock date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &ParseError{Input: s, Layout: DateLayout, Err: err}
	}
	return DateOf(t), nil
}

// MustParseDate is like ParseDate but panics on malformed input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case d.After(other):
		return 1
	default:
		return 0
	}
}

// Arithmetic
func (d Date) AddDays(n int) Date     { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date   { return Date{t: d.t.AddDate(0, n, 0)} }
func (d Date) AddQuarters(n int) Date { return d.AddMonths(3 * n) }
func (d Date) AddYears(n int) Date    { return Date{t: d.t.AddDate(n, 0, 0)} }

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) Time() time.Time   { return d.t }

// Quarter returns the calendar quarter (1-4) the date falls in.
func (d Date) Quarter() int { return quarterOfMonth(d.Month()) }

func (d Date) String() string { return d.t.Format(DateLayout) }

// =============================================================================
// DATE UTILITIES
// =============================================================================

// StartOfQuarter returns the first day of the date's quarter.
func (d Date) StartOfQuarter() Date {
	return NewDate(d.Year(), firstMonthOfQuarter(d.Quarter()), 1)
}

// EndOfQuarter returns the last day of the date's quarter.
func (d Date) EndOfQuarter() Date {
	return endOfMonth(d.Year(), firstMonthOfQuarter(d.Quarter())+2)
}

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date { return endOfMonth(d.Year(), d.Month()) }

// SameQuarter reports whether both dates are in the same quarter of the same year.
func (d Date) SameQuarter(other Date) bool {
	return d.Year() == other.Year() && d.Quarter() == other.Quarter()
}

func quarterOfMonth(m time.Month) int      { return (int(m)-1)/3 + 1 }
func firstMonthOfQuarter(q int) time.Month { return time.Month(3*q - 2) }

// endOfMonth relies on day 0 of the following month normalizing to the last
// day of month, which accounts for month length and leap years.
func endOfMonth(year int, month time.Month) Date {
	return NewDate(year, month+1, 0)
}
