package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shiftpay/internal/domain"
	"shiftpay/internal/ports"
)

// Totals is the simple summation callers of the calculator are
// responsible for: hours and pay added up across entries.
type Totals struct {
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	TotalPay      float64 `json:"total_pay"`
}

// Report is a priced range of entries. Entries the calculator rejects
// (bad punch, shift eaten by lunch) are skipped and counted, never
// fatal; every shift failure is recoverable at this level.
type Report struct {
	From    time.Time              `json:"from"`
	To      time.Time              `json:"to"`
	Shifts  []domain.ComputedShift `json:"shifts"`
	Totals  Totals                 `json:"totals"`
	Skipped int                    `json:"skipped"`
}

// ReportUseCase reads entries from the store and prices them with the
// calculator core.
type ReportUseCase struct {
	Log   *slog.Logger
	Store ports.EntryStore
}

// Range prices every entry with a day in [from, to].
func (uc *ReportUseCase) Range(ctx context.Context, from, to time.Time) (Report, error) {
	if uc.Store == nil {
		return Report{}, errors.New("usecase not initialized: missing store")
	}
	entries, err := uc.Store.ListEntries(ctx, from, to)
	if err != nil {
		return Report{}, err
	}

	rep := Report{From: from, To: to}
	for _, e := range entries {
		summary, err := e.Pay()
		if err != nil {
			rep.Skipped++
			uc.Log.Warn("skipping entry",
				slog.Int64("id", e.ID),
				slog.String("day", e.Day.Format(domain.DayFormat)),
				slog.String("error", err.Error()),
			)
			continue
		}
		rep.Shifts = append(rep.Shifts, domain.ComputedShift{Entry: e, Summary: summary})
		rep.Totals.RegularHours += summary.RegularHours
		rep.Totals.OvertimeHours += summary.OvertimeHours
		rep.Totals.TotalPay += summary.TotalPay
	}
	uc.Log.Debug("report built",
		slog.Int("shifts", len(rep.Shifts)),
		slog.Int("skipped", rep.Skipped),
	)
	return rep, nil
}

// Month prices a whole calendar month given in YYYY-MM form.
func (uc *ReportUseCase) Month(ctx context.Context, month string) (Report, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return Report{}, err
	}
	return uc.Range(ctx, from, to)
}

// MonthRange expands YYYY-MM into the inclusive [first, last] days of
// that month.
func MonthRange(month string) (from, to time.Time, err error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}
