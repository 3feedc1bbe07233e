package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shiftpay/internal/domain"
)

func (a *App) addCmd() *cobra.Command {
	var (
		rate float64
		note string
	)

	cmd := &cobra.Command{
		Use:   "add <day> <start> <end>",
		Short: "Record a shift for a calendar day",
		Long: `Record a worked shift. The day is YYYY-MM-DD; start and end are
HH:MM clock times. Re-adding the same day and start time updates
the stored entry.

Example:
  shiftpay add 2025-08-05 14:00 17:00 --rate 20`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			day, err := time.Parse(domain.DayFormat, args[0])
			if err != nil {
				return fmt.Errorf("day must be YYYY-MM-DD: %q", args[0])
			}
			if !cmd.Flags().Changed("rate") {
				rate = a.config.Pay.DefaultRate
			}
			if rate < 0 {
				return fmt.Errorf("rate must be non-negative")
			}

			entry := domain.ShiftEntry{
				Day:        day,
				Start:      args[1],
				End:        args[2],
				HourlyRate: rate,
				Note:       note,
			}
			if err := a.store.UpsertEntries(cmd.Context(), []domain.ShiftEntry{entry}); err != nil {
				return err
			}

			summary, err := entry.Pay()
			if err != nil {
				// Stored, but nothing payable; tell the user why.
				fmt.Fprintf(cmd.OutOrStdout(), "recorded %s %s-%s (not payable: %v)\n",
					args[0], args[1], args[2], err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded %s %s-%s\n", args[0], args[1], args[2])
			printSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate (defaults to pay.default_rate from config)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note stored with the entry")
	return cmd
}
