package domain

import "time"

// DayFormat is the wire and storage format for calendar days.
const DayFormat = "2006-01-02"

// ShiftEntry is one recorded shift: a calendar day, the raw clock
// strings as entered or punched, and the hourly rate in effect.
// Clock strings stay raw on purpose; validation happens when the
// entry is priced, so a bad punch is an entry-level failure the
// caller can skip, not a stored-data corruption.
type ShiftEntry struct {
	ID         int64
	Day        time.Time // date only, midnight UTC
	Start      string    // HH:MM
	End        string    // HH:MM
	HourlyRate float64
	Note       string
}

// Pay prices the entry with the calculator core.
func (e ShiftEntry) Pay() (PaySummary, error) {
	return ComputePay(e.Start, e.End, e.HourlyRate)
}

// ComputedShift pairs a stored entry with its priced summary. It is
// what reports and exports consume.
type ComputedShift struct {
	Entry   ShiftEntry
	Summary PaySummary
}
