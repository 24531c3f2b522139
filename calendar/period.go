package calendar

// =============================================================================
// PERIOD - A named date range with containment
// =============================================================================

// Period is implemented by FinancialYear and Quarter.
type Period interface {
	StartDate() Date
	EndDate() Date
	Contains(d Date) bool
	String() string
}

// Range is a closed interval of days [Start, End].
type Range struct {
	Start Date
	End   Date
}

// RangeOf returns the days covered by p.
func RangeOf(p Period) Range {
	return Range{Start: p.StartDate(), End: p.EndDate()}
}

// Contains returns true if the date is within the range [Start, End]
func (r Range) Contains(d Date) bool {
	return d.AfterOrEqual(r.Start) && d.BeforeOrEqual(r.End)
}

// Days returns all days in the range.
func (r Range) Days() []Date {
	var days []Date
	for current := r.Start; current.BeforeOrEqual(r.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

// Len returns the number of days in the range, counting both ends.
// An inverted range has length 0.
func (r Range) Len() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return int(epochDay(r.End)-epochDay(r.Start)) + 1
}

// Overlaps reports whether the two ranges share at least one day.
func (r Range) Overlaps(other Range) bool {
	return r.Start.BeforeOrEqual(other.End) && other.Start.BeforeOrEqual(r.End)
}

// epochDay counts whole days since 1970-01-01. Date is always UTC midnight,
// so Unix() is an exact multiple of a day.
func epochDay(d Date) int64 { return d.Time().Unix() / secondsPerDay }

const secondsPerDay = 24 * 60 * 60

func (r Range) String() string {
	return "[" + r.Start.String() + ", " + r.End.String() + "]"
}

var (
	_ Period = FinancialYear{}
	_ Period = Quarter{}
)
