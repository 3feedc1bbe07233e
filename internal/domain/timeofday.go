package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a naive wall-clock time. No timezone is attached;
// values are whatever the clock on the wall said.
type TimeOfDay struct {
	Hour   int // 0..23
	Minute int // 0..59
}

// ParseTimeOfDay parses a clock string in HH:MM form. The string is
// split on the first colon and both parts must be non-negative
// integers within clock range.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return TimeOfDay{}, fmt.Errorf("%w: %q is missing the colon separator", ErrInvalidTimeFormat, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 {
		return TimeOfDay{}, fmt.Errorf("%w: bad hour in %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 {
		return TimeOfDay{}, fmt.Errorf("%w: bad minute in %q", ErrInvalidTimeFormat, s)
	}
	if hour >= 24 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range in %q", ErrInvalidTimeFormat, hour, s)
	}
	if minute >= 60 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range in %q", ErrInvalidTimeFormat, minute, s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// MinuteOfDay returns the minutes elapsed since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
