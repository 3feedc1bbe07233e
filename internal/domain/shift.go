package domain

import "fmt"

// ShiftInterval is a half-open [Start, End) range in minutes, both
// measured from the midnight of the day the shift begins. End exceeds
// 1439 when the shift spills into the next day.
type ShiftInterval struct {
	Start int
	End   int
}

// Normalize turns a (start, end) pair of clock times into a positive
// minute interval. An end that is not strictly after the start is
// rolled forward by one day, so a shift may cross midnight. As a
// consequence start == end normalizes to a full 24-hour shift rather
// than an empty one; that quirk is intentional and pinned by tests.
func Normalize(start, end TimeOfDay) (ShiftInterval, error) {
	s := start.MinuteOfDay()
	e := end.MinuteOfDay()
	if e <= s {
		e += MinutesPerDay
	}
	if e-s <= 0 {
		return ShiftInterval{}, fmt.Errorf("%w: %s to %s", ErrZeroOrNegativeDuration, start, end)
	}
	return ShiftInterval{Start: s, End: e}, nil
}

// Duration returns the worked minutes before any deduction.
func (si ShiftInterval) Duration() int {
	return si.End - si.Start
}
