/*
errors.go - Error types for period construction and parsing

PURPOSE:
  Every constructor and parser reports failure through these errors. None
  are recovered internally; callers match them with errors.Is / errors.As.

ERROR CATEGORIES:
  1. Input errors - a year or quarter that is not a number
  2. Range errors - end year not directly after start year
  3. Out-of-range errors - quarter outside 1..4
  4. Parse errors - malformed YYYY-MM-DD date

USAGE:
  fy, err := calendar.NewFinancialYear(2020, 2022)
  if errors.Is(err, calendar.ErrInvalidRange) { ... }

  var rangeErr *calendar.RangeError
  if errors.As(err, &rangeErr) { log(rangeErr.EndYear) }
*/
package calendar

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when a year or quarter is not numeric.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRange is returned when the end year of a financial year is
	// not exactly one greater than its start year.
	ErrInvalidRange = errors.New("invalid range")

	// ErrOutOfRange is returned for a quarter number outside 1..4.
	ErrOutOfRange = errors.New("out of range")

	// ErrParse is returned when a date string is not in YYYY-MM-DD form.
	ErrParse = errors.New("parse error")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidInputError names the argument that was not numeric.
type InvalidInputError struct {
	Field string // e.g. "start year", "quarter"
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s must be numeric, got %q", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// RangeError reports a start/end year pair that does not describe one financial year.
type RangeError struct {
	StartYear int
	EndYear   int
}

func (e *RangeError) Error() string {
	return "end year must be the year after start year"
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// OutOfRangeError reports a quarter number outside 1..4.
type OutOfRangeError struct {
	Quarter int
}

func (e *OutOfRangeError) Error() string {
	return "quarter must be in the range 1..4"
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// ParseError reports a date string that could not be parsed. It matches both
// ErrParse and the underlying time parse error.
type ParseError struct {
	Input  string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Input, e.Layout, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsInputError returns true if the error was caused by the caller's arguments.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrParse)
}
