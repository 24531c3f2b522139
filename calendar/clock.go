package calendar

import "time"

// Clock supplies "today". Everything that depends on the current date takes a
// Clock so callers and tests decide what today is.
type Clock interface {
	Today() Date
}

// SystemClock reads today's date from the system clock in Location.
// A nil Location means UTC.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Today() Date {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

// FixedClock always reports the same day.
type FixedClock Date

func (c FixedClock) Today() Date { return Date(c) }
