package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *App) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [month]",
		Short: "Sum hours and pay for a month",
		Long: `Sum regular hours, overtime hours and total pay across all
shifts of a month (YYYY-MM, default: current month). Entries the
calculator rejects are skipped and reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			month := defaultMonth()
			if len(args) == 1 {
				month = args[0]
			}
			rep, err := a.reporter().Month(cmd.Context(), month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			bold.Fprintf(out, "%s: %d shifts\n", month, len(rep.Shifts))
			fmt.Fprintf(out, "regular   %s\n", hours(rep.Totals.RegularHours))
			fmt.Fprintf(out, "overtime  %s\n", color.YellowString(hours(rep.Totals.OvertimeHours)))
			fmt.Fprintf(out, "total     %s\n", color.GreenString("%.2f", rep.Totals.TotalPay))
			if rep.Skipped > 0 {
				fmt.Fprintln(out, color.YellowString("%d entries skipped (not payable)", rep.Skipped))
			}
			return nil
		},
	}
	return cmd
}

func defaultMonth() string {
	return time.Now().UTC().Format("2006-01")
}
