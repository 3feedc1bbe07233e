package domain

const (
	// MinutesPerDay is the length of one calendar day in minutes.
	MinutesPerDay = 24 * 60

	// OvertimeStart is the daily cutoff, in minutes of day, after
	// which worked time counts as overtime (15:30).
	OvertimeStart = 15*60 + 30

	// LunchMinutes is the fixed unpaid break deducted per shift.
	LunchMinutes = 30
)

// Split partitions the interval into regular and overtime minutes.
// The walk advances day by day so that a shift crossing midnight gets
// a fresh overtime boundary on each calendar day it touches.
func (si ShiftInterval) Split() (regular, overtime int) {
	for cursor := si.Start; cursor < si.End; {
		dayStart := cursor / MinutesPerDay * MinutesPerDay
		boundary := dayStart + OvertimeStart
		if cursor < boundary {
			segEnd := min(si.End, boundary)
			regular += segEnd - cursor
			cursor = segEnd
			continue
		}
		segEnd := min(si.End, dayStart+MinutesPerDay)
		overtime += segEnd - cursor
		cursor = segEnd
	}
	return regular, overtime
}
