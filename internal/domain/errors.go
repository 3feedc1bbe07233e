package domain

import "errors"

// Failure kinds of the pay computation. All are recoverable by the
// caller; nothing in this package panics. Callers match them with
// errors.Is since returned errors carry wrapped detail.
var (
	// ErrInvalidTimeFormat signals a clock string that is not HH:MM.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrZeroOrNegativeDuration signals a shift the normalizer could
	// not resolve into a positive interval.
	ErrZeroOrNegativeDuration = errors.New("zero or negative shift duration")

	// ErrNoWorkableTime signals a shift entirely consumed by the
	// lunch deduction.
	ErrNoWorkableTime = errors.New("no workable time after lunch deduction")
)
