package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shiftpay/internal/domain"
	"shiftpay/internal/usecase"
)

func (a *App) listCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded shifts for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			from, to, err := usecase.MonthRange(month)
			if err != nil {
				return err
			}
			rep, err := a.reporter().Range(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			if len(rep.Shifts) == 0 && rep.Skipped == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no shifts recorded in %s\n", month)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DAY\tSHIFT\tREGULAR\tOVERTIME\tPAY\tNOTE")
			for _, s := range rep.Shifts {
				fmt.Fprintf(tw, "%s\t%s-%s\t%s\t%s\t%.2f\t%s\n",
					s.Entry.Day.Format(domain.DayFormat),
					s.Entry.Start, s.Entry.End,
					hours(s.Summary.RegularHours),
					hours(s.Summary.OvertimeHours),
					s.Summary.TotalPay,
					s.Entry.Note,
				)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if rep.Skipped > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("%d entries skipped (not payable)", rep.Skipped))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", defaultMonth(), "Month to list, YYYY-MM")
	return cmd
}
