package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// FINANCIAL YEAR - July 1 through June 30
// =============================================================================

// FinancialYear is the twelve months from July 1 of its start year through
// June 30 of the following year. It is identified by its start year and
// written "2020-21".
type FinancialYear struct {
	start Date
	end   Date
}

// NewFinancialYear returns the financial year starting July 1 of startYear.
// An endYear of 0 means "not given" and defaults to startYear+1; any other
// endYear must be exactly startYear+1.
func NewFinancialYear(startYear, endYear int) (FinancialYear, error) {
	if endYear == 0 {
		endYear = startYear + 1
	}
	if startYear > endYear || endYear-startYear != 1 {
		return FinancialYear{}, &RangeError{StartYear: startYear, EndYear: endYear}
	}
	return FinancialYear{
		start: NewDate(startYear, time.July, 1),
		end:   NewDate(endYear, time.June, 30),
	}, nil
}

// NewFinancialYearFromStrings is NewFinancialYear for years held as strings.
// An empty endYear is treated as not given.
func NewFinancialYearFromStrings(startYear, endYear string) (FinancialYear, error) {
	start, err := parseYear("start year", startYear)
	if err != nil {
		return FinancialYear{}, err
	}
	var end int
	if endYear != "" {
		if end, err = parseYear("end year", endYear); err != nil {
			return FinancialYear{}, err
		}
	}
	return NewFinancialYear(start, end)
}

// CreateFinancialYear returns the financial year starting in startYear, or
// the current one according to clock when startYear is 0.
func CreateFinancialYear(clock Clock, startYear int) (FinancialYear, error) {
	if startYear == 0 {
		return ThisFinancialYear(clock), nil
	}
	return NewFinancialYear(startYear, 0)
}

// FinancialYearOf returns the financial year containing d. January through
// June belong to the year that started the previous July.
func FinancialYearOf(d Date) FinancialYear {
	if d.Month() <= time.June {
		return financialYearStarting(d.Year() - 1)
	}
	return financialYearStarting(d.Year())
}

// FinancialYearFromYmd returns the financial year containing the YYYY-MM-DD date ymd.
func FinancialYearFromYmd(ymd string) (FinancialYear, error) {
	d, err := ParseDate(ymd)
	if err != nil {
		return FinancialYear{}, err
	}
	return FinancialYearOf(d), nil
}

// ParseFinancialYear is ParseFinancialYearAt using the system clock in UTC.
func ParseFinancialYear(s string) (FinancialYear, error) {
	return ParseFinancialYearAt(SystemClock{}, s)
}

// ParseFinancialYearAt reads a financial year written as "2020-21". Only the
// first four characters are used; whatever follows is ignored. A prefix of
// "" or "0" names no year and yields the current financial year per clock,
// while "0000" is the financial year starting in year 0.
func ParseFinancialYearAt(clock Clock, s string) (FinancialYear, error) {
	prefix := s
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	if prefix == "" || prefix == "0" {
		return ThisFinancialYear(clock), nil
	}
	year, err := parseYear("start year", prefix)
	if err != nil {
		return FinancialYear{}, err
	}
	return NewFinancialYear(year, 0)
}

// ThisFinancialYear returns the financial year containing today.
func ThisFinancialYear(clock Clock) FinancialYear {
	return FinancialYearOf(clock.Today())
}

// NextFinancialYear returns the financial year after the current one.
func NextFinancialYear(clock Clock) FinancialYear {
	return ThisFinancialYear(clock).Next()
}

// FinancialYearsBetween returns every financial year that contains at least
// one day of [from, to], in order.
func FinancialYearsBetween(from, to Date) []FinancialYear {
	if to.Before(from) {
		return nil
	}
	var years []FinancialYear
	for fy := FinancialYearOf(from); fy.start.BeforeOrEqual(to); fy = fy.Next() {
		years = append(years, fy)
	}
	return years
}

func financialYearStarting(year int) FinancialYear {
	// startYear+1 always satisfies the end-year check.
	fy, _ := NewFinancialYear(year, year+1)
	return fy
}

func (fy FinancialYear) StartDate() Date { return fy.start }
func (fy FinancialYear) EndDate() Date   { return fy.end }
func (fy FinancialYear) StartYear() int  { return fy.start.Year() }
func (fy FinancialYear) EndYear() int    { return fy.end.Year() }

// Next returns the following financial year.
func (fy FinancialYear) Next() FinancialYear {
	return FinancialYearOf(fy.start.AddYears(1))
}

// Previous returns the preceding financial year.
func (fy FinancialYear) Previous() FinancialYear {
	return FinancialYearOf(fy.start.AddYears(-1))
}

// InFinancialYear returns true if d is between the start and end dates, inclusive.
func (fy FinancialYear) InFinancialYear(d Date) bool {
	return fy.start.BeforeOrEqual(d) && fy.end.AfterOrEqual(d)
}

func (fy FinancialYear) Contains(d Date) bool { return fy.InFinancialYear(d) }

// IsThisFinancialYear returns true if today falls in the financial year.
func (fy FinancialYear) IsThisFinancialYear(clock Clock) bool {
	return fy.InFinancialYear(clock.Today())
}

func (fy FinancialYear) Equal(other FinancialYear) bool {
	return fy.start.Equal(other.start) && fy.end.Equal(other.end)
}

// String returns the four-digit start year and two-digit end year, e.g. "2020-21".
// Start years below -999 take more than four characters and do not parse back.
func (fy FinancialYear) String() string {
	return fmt.Sprintf("%04d-%02d", fy.StartYear(), ((fy.EndYear()%100)+100)%100)
}

func parseYear(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidInputError{Field: field, Value: s}
	}
	return n, nil
}
