package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/fiscal-calendar/calendar"
)

func TestRange_Contains(t *testing.T) {
	r := calendar.Range{Start: date(2020, time.July, 1), End: date(2021, time.June, 30)}

	assert.False(t, r.Contains(date(2020, time.June, 30)))
	assert.True(t, r.Contains(date(2020, time.July, 1)))
	assert.True(t, r.Contains(date(2021, time.June, 30)))
	assert.False(t, r.Contains(date(2021, time.July, 1)))
}

func TestRange_DaysAndLen(t *testing.T) {
	r := calendar.Range{Start: date(2020, time.February, 27), End: date(2020, time.March, 1)}

	days := r.Days()
	assert.Len(t, days, 4)
	assert.Equal(t, date(2020, time.February, 29), days[2])
	assert.Equal(t, 4, r.Len())

	inverted := calendar.Range{Start: r.End, End: r.Start}
	assert.Empty(t, inverted.Days())
	assert.Equal(t, 0, inverted.Len())
}

func TestRange_LenOverCenturies(t *testing.T) {
	// GIVEN: a range longer than time.Duration can represent
	r := calendar.Range{Start: date(1700, time.January, 1), End: date(2100, time.January, 1)}

	// THEN: Len still counts every calendar day
	assert.Equal(t, 146098, r.Len())
	assert.Equal(t, len(r.Days()), r.Len())

	before := calendar.Range{Start: date(1, time.January, 1), End: date(1, time.December, 31)}
	assert.Equal(t, 365, before.Len())
}

func TestRange_Overlaps(t *testing.T) {
	q2 := calendar.RangeOf(mustQuarter(t, 2020, 2))
	q3 := calendar.RangeOf(mustQuarter(t, 2020, 3))
	fy := calendar.RangeOf(mustFY(t, 2020))

	assert.False(t, q2.Overlaps(q3))
	assert.True(t, q3.Overlaps(fy))
	assert.False(t, q2.Overlaps(fy), "Q2 ends the day before the financial year starts")
}

func TestRangeOf_PeriodLengths(t *testing.T) {
	// GIVEN: the financial year containing Feb 29, 2024
	// THEN: it spans 366 days; the one before spans 365
	assert.Equal(t, 366, calendar.RangeOf(mustFY(t, 2023)).Len())
	assert.Equal(t, 365, calendar.RangeOf(mustFY(t, 2022)).Len())

	assert.Equal(t, 91, calendar.RangeOf(mustQuarter(t, 2024, 1)).Len())
	assert.Equal(t, 90, calendar.RangeOf(mustQuarter(t, 2023, 1)).Len())
}

func TestPeriod_ContainsAgreesWithRange(t *testing.T) {
	periods := []calendar.Period{mustFY(t, 2020), mustQuarter(t, 2020, 4)}
	for _, p := range periods {
		r := calendar.RangeOf(p)
		for _, d := range []calendar.Date{
			r.Start.AddDays(-1), r.Start, r.Start.AddDays(40), r.End, r.End.AddDays(1),
		} {
			assert.Equal(t, r.Contains(d), p.Contains(d), "%s contains %s", p, d)
		}
	}
}

func TestRange_String(t *testing.T) {
	r := calendar.RangeOf(mustQuarter(t, 2020, 2))
	assert.Equal(t, "[2020-04-01, 2020-06-30]", r.String())
}
