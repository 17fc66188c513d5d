package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"walletwise/internal/analytics"
	"walletwise/internal/cli"
)

func savingsCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Show progress on savings goals",
		Long: `Fetch a user's savings goals and transactions and report each goal's
progress along with how much saved money is not yet allocated to a goal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()

			goals, err := c.GetSavingsGoals(cmd.Context(), userID)
			if err != nil {
				fmt.Fprintln(os.Stderr, cli.FormatWarning("savings goals unavailable, reporting without them: "+err.Error()))
			}
			txns, err := c.GetTransactions(cmd.Context(), userID)
			if err != nil {
				fmt.Fprintln(os.Stderr, cli.FormatWarning("transactions unavailable, reporting without them: "+err.Error()))
			}

			return cli.RenderSavings(cmd.OutOrStdout(), analytics.SummarizeSavings(goals, txns))
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user ID (required)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
