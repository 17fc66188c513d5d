package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"walletwise/internal/cli"
)

func allocateCmd() *cobra.Command {
	var goalID string
	var amount string

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Add funds to a savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cents, err := cli.ParseAmount(amount)
			if err != nil {
				return err
			}
			if cents <= 0 {
				return fmt.Errorf("--amount must be greater than zero")
			}

			goal, err := newClient().Allocate(cmd.Context(), goalID, cents)
			if err != nil {
				return err
			}
			return cli.RenderGoal(cmd.OutOrStdout(), goal)
		},
	}
	cmd.Flags().StringVar(&goalID, "goal", "", "saving goal ID (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in dollars, e.g. 25.50 (required)")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
