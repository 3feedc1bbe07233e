package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shiftpay/internal/adapter/csvexport"
	"shiftpay/internal/usecase"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		month  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a month of priced shifts as CSV",
		Long: `Write one CSV row per payable shift of a month, with minutes,
hours and pay columns. Without --output the CSV goes to stdout.`,
		Args: cobra.NoArgs,
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

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if err := csvexport.Write(w, rep.Shifts); err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(rep.Shifts), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", defaultMonth(), "Month to export, YYYY-MM")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default: stdout)")
	return cmd
}
