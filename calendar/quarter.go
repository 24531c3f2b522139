package calendar

import (
	"fmt"
	"strconv"
)

// =============================================================================
// QUARTER - Three-month calendar period
// =============================================================================

// Quarter is one of the four calendar quarters of a year: Q1 is January to
// March, Q4 October to December. It is written "2020Q3".
type Quarter struct {
	year    int
	quarter int
}

// NewQuarter returns quarter (1-4) of year. The year is not range checked.
func NewQuarter(year, quarter int) (Quarter, error) {
	if quarter < 1 || quarter > 4 {
		return Quarter{}, &OutOfRangeError{Quarter: quarter}
	}
	return Quarter{year: year, quarter: quarter}, nil
}

// CreateQuarter is an alias for NewQuarter.
func CreateQuarter(year, quarter int) (Quarter, error) {
	return NewQuarter(year, quarter)
}

// QuarterOf returns the quarter containing d.
func QuarterOf(d Date) Quarter {
	return Quarter{year: d.Year(), quarter: d.Quarter()}
}

// QuarterFromYmd returns the quarter containing the YYYY-MM-DD date ymd.
func QuarterFromYmd(ymd string) (Quarter, error) {
	d, err := ParseDate(ymd)
	if err != nil {
		return Quarter{}, err
	}
	return QuarterOf(d), nil
}

// ParseQuarter reads a quarter written as "2020Q3": a four-digit year, one
// separator character and a one-digit quarter. The separator is not checked.
func ParseQuarter(yq string) (Quarter, error) {
	if len(yq) < 6 {
		return Quarter{}, &InvalidInputError{Field: "quarter", Value: yq}
	}
	year, err := parseYear("year", yq[0:4])
	if err != nil {
		return Quarter{}, err
	}
	quarter, err := strconv.Atoi(yq[5:6])
	if err != nil {
		return Quarter{}, &InvalidInputError{Field: "quarter", Value: yq[5:6]}
	}
	return NewQuarter(year, quarter)
}

// ThisQuarter returns the quarter containing today.
func ThisQuarter(clock Clock) Quarter {
	return QuarterOf(clock.Today())
}

// NextQuarter returns the quarter after the current one.
func NextQuarter(clock Clock) Quarter {
	return ThisQuarter(clock).Next()
}

// QuartersBetween returns every quarter that contains at least one day of
// [from, to], in order.
func QuartersBetween(from, to Date) []Quarter {
	if to.Before(from) {
		return nil
	}
	var quarters []Quarter
	for q := QuarterOf(from); q.StartDate().BeforeOrEqual(to); q = q.Next() {
		quarters = append(quarters, q)
	}
	return quarters
}

func (q Quarter) Year() int   { return q.year }
func (q Quarter) Number() int { return q.quarter }

// StartDate returns the first day of the quarter's first month.
func (q Quarter) StartDate() Date {
	return NewDate(q.year, firstMonthOfQuarter(q.quarter), 1)
}

// EndDate returns the last day of the quarter's last month.
func (q Quarter) EndDate() Date {
	return q.StartDate().EndOfQuarter()
}

// Next returns the following quarter; Q4 rolls over to Q1 of the next year.
func (q Quarter) Next() Quarter {
	return QuarterOf(q.StartDate().AddQuarters(1))
}

// Previous returns the preceding quarter; Q1 rolls back to Q4 of the previous year.
func (q Quarter) Previous() Quarter {
	return QuarterOf(q.StartDate().AddQuarters(-1))
}

// InQuarter returns true if d is in the same quarter of the same year.
func (q Quarter) InQuarter(d Date) bool {
	return q.StartDate().SameQuarter(d)
}

func (q Quarter) Contains(d Date) bool { return q.InQuarter(d) }

// IsThisQuarter returns true if today falls in the quarter.
func (q Quarter) IsThisQuarter(clock Clock) bool {
	return q.InQuarter(clock.Today())
}

func (q Quarter) String() string {
	return fmt.Sprintf("%04dQ%d", q.year, q.quarter)
}
