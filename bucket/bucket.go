/*
Package bucket totals dated amounts per fiscal period.

PURPOSE:
  Answers reporting questions like "how much was spent in each financial
  year" or "what were the quarterly totals" from a flat list of dated
  amounts. Sums are exact (decimal.Decimal), never float.

USAGE:
  totals := bucket.ByFinancialYear(entries)
  for _, t := range bucket.Fill(totals, calendar.FinancialYear.Next) {
      fmt.Println(t.Period, t.Sum)
  }

SEE ALSO:
  - calendar/period.go: Period interface every bucket key implements
*/
package bucket

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/warp/fiscal-calendar/calendar"
)

// Entry is an amount recorded on a day.
type Entry struct {
	Date   calendar.Date
	Amount decimal.Decimal
}

// Total is the sum of all entries falling in Period.
type Total[P calendar.Period] struct {
	Period P
	Sum    decimal.Decimal
	Count  int
}

// Totals groups entries by the period key assigns them to and returns one
// Total per period, ordered by period start. Periods with no entries are
// omitted; see Fill.
func Totals[P calendar.Period](entries []Entry, key func(calendar.Date) P) []Total[P] {
	index := make(map[string]int)
	var totals []Total[P]
	for _, e := range entries {
		p := key(e.Date)
		i, ok := index[p.String()]
		if !ok {
			i = len(totals)
			index[p.String()] = i
			totals = append(totals, Total[P]{Period: p, Sum: decimal.Zero})
		}
		totals[i].Sum = totals[i].Sum.Add(e.Amount)
		totals[i].Count++
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Period.StartDate().Before(totals[j].Period.StartDate())
	})
	return totals
}

// ByFinancialYear totals entries per financial year.
func ByFinancialYear(entries []Entry) []Total[calendar.FinancialYear] {
	return Totals(entries, calendar.FinancialYearOf)
}

// ByQuarter totals entries per calendar quarter.
func ByQuarter(entries []Entry) []Total[calendar.Quarter] {
	return Totals(entries, calendar.QuarterOf)
}

// Fill returns totals with a zero Total inserted for every period missing
// between the first and last one. totals must be ordered by period start,
// as returned by Totals.
func Fill[P calendar.Period](totals []Total[P], next func(P) P) []Total[P] {
	if len(totals) == 0 {
		return nil
	}
	filled := make([]Total[P], 0, len(totals))
	current := totals[0].Period
	for _, t := range totals {
		for current.StartDate().Before(t.Period.StartDate()) {
			filled = append(filled, Total[P]{Period: current, Sum: decimal.Zero})
			current = next(current)
		}
		filled = append(filled, t)
		current = next(t.Period)
	}
	return filled
}

// Sum returns the grand total across all periods.
func Sum[P calendar.Period](totals []Total[P]) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Sum)
	}
	return sum
}
