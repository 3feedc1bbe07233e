// Package csvexport serializes priced shifts into CSV rows for
// spreadsheets and payroll handoff.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"shiftpay/internal/domain"
)

var header = []string{
	"day", "start", "end", "hourly_rate",
	"regular_minutes", "overtime_minutes",
	"regular_hours", "overtime_hours", "total_pay",
}

// Write emits one row per priced shift, preceded by a header row.
func Write(w io.Writer, shifts []domain.ComputedShift) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range shifts {
		row := []string{
			s.Entry.Day.Format(domain.DayFormat),
			s.Entry.Start,
			s.Entry.End,
			formatFloat(s.Entry.HourlyRate),
			strconv.Itoa(s.Summary.RegularMinutes),
			strconv.Itoa(s.Summary.OvertimeMinutes),
			formatFloat(s.Summary.RegularHours),
			formatFloat(s.Summary.OvertimeHours),
			formatFloat(s.Summary.TotalPay),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
