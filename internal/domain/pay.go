package domain

import "fmt"

// OvertimeMultiplier is the pay factor applied to overtime hours.
const OvertimeMultiplier = 1.5

// PaySummary is the outcome of a successful pay computation. Minute
// counts are net of the lunch deduction and their sum is always
// positive; a summary never exists for a shift with nothing payable.
type PaySummary struct {
	RegularMinutes  int     `json:"regular_minutes"`
	OvertimeMinutes int     `json:"overtime_minutes"`
	RegularHours    float64 `json:"regular_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	TotalPay        float64 `json:"total_pay"`
}

// ComputePay is the front door of the calculator: raw clock strings
// and an hourly rate in, a pay summary or a typed failure out. It is
// pure and safe for concurrent use.
func ComputePay(start, end string, hourlyRate float64) (PaySummary, error) {
	st, err := ParseTimeOfDay(start)
	if err != nil {
		return PaySummary{}, fmt.Errorf("start time: %w", err)
	}
	en, err := ParseTimeOfDay(end)
	if err != nil {
		return PaySummary{}, fmt.Errorf("end time: %w", err)
	}
	si, err := Normalize(st, en)
	if err != nil {
		return PaySummary{}, err
	}
	return ComputeIntervalPay(si, hourlyRate)
}

// ComputeIntervalPay prices an already-normalized interval. The lunch
// break comes out of regular minutes first and spills into overtime
// only when regular time cannot cover it.
func ComputeIntervalPay(si ShiftInterval, hourlyRate float64) (PaySummary, error) {
	regular, overtime := si.Split()

	lunch := min(LunchMinutes, regular+overtime)
	fromRegular := min(lunch, regular)
	regular -= fromRegular
	overtime -= lunch - fromRegular

	if regular+overtime <= 0 {
		return PaySummary{}, fmt.Errorf("%w: %d minute shift", ErrNoWorkableTime, si.Duration())
	}

	regularHours := float64(regular) / 60
	overtimeHours := float64(overtime) / 60
	return PaySummary{
		RegularMinutes:  regular,
		OvertimeMinutes: overtime,
		RegularHours:    regularHours,
		OvertimeHours:   overtimeHours,
		TotalPay:        regularHours*hourlyRate + overtimeHours*hourlyRate*OvertimeMultiplier,
	}, nil
}
