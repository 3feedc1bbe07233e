package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shiftpay/internal/domain"
)

func (a *App) computeCmd() *cobra.Command {
	var rate float64

	cmd := &cobra.Command{
		Use:   "compute <start> <end>",
		Short: "Price a single shift without storing it",
		Long: `Price one shift given start and end clock times in HH:MM form.
A shift whose end is not after its start is taken to cross midnight.

Example:
  shiftpay compute 14:00 17:00 --rate 20`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rate") {
				rate = a.config.Pay.DefaultRate
			}
			if rate < 0 {
				return fmt.Errorf("rate must be non-negative")
			}
			summary, err := domain.ComputePay(args[0], args[1], rate)
			if err != nil {
				return err
			}
			printSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate (defaults to pay.default_rate from config)")
	return cmd
}

func printSummary(cmd *cobra.Command, s domain.PaySummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "regular   %s  (%d min)\n", hours(s.RegularHours), s.RegularMinutes)
	if s.OvertimeMinutes > 0 {
		fmt.Fprintf(out, "overtime  %s  (%d min)\n", color.YellowString(hours(s.OvertimeHours)), s.OvertimeMinutes)
	}
	fmt.Fprintf(out, "total     %s\n", color.GreenString("%.2f", s.TotalPay))
}

func hours(h float64) string {
	return fmt.Sprintf("%.2fh", h)
}
