package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"walletwise/internal/analytics"
	"walletwise/internal/cli"
)

func trendsCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show spending and cash flow over the trend window",
		Long: `Show spending per category and income against expenses over the last
7 days (week), 6 months (month) or 4 years (year).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, p, err := flags.resolve()
			if err != nil {
				return err
			}

			txns, err := newClient().GetTransactions(cmd.Context(), flags.userID)
			if err != nil {
				fmt.Fprintln(os.Stderr, cli.FormatWarning("transactions unavailable, reporting without them: "+err.Error()))
			}

			return cli.RenderTrends(cmd.OutOrStdout(),
				analytics.SpendingSeries(txns, ref, p),
				analytics.CashFlowSeries(txns, ref, p))
		},
	}
	flags.register(cmd)
	return cmd
}
