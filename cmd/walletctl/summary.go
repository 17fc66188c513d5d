package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"walletwise/internal/analytics"
	"walletwise/internal/cli"
	"walletwise/internal/client"
	"walletwise/internal/period"
)

// reportFlags are shared by the commands that aggregate over a period.
type reportFlags struct {
	userID string
	period string
	date   string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.userID, "user", "", "user ID (required)")
	cmd.Flags().StringVar(&f.period, "period", "month", "week, month or year")
	cmd.Flags().StringVar(&f.date, "date", "", "reference date (default today)")
	_ = cmd.MarkFlagRequired("user")
}

func (f *reportFlags) resolve() (time.Time, period.Period, error) {
	p, err := period.Parse(f.period)
	if err != nil {
		return time.Time{}, "", err
	}
	ref := time.Now()
	if f.date != "" {
		if ref, err = period.ParseDate(f.date, time.Local); err != nil {
			return time.Time{}, "", err
		}
	}
	return ref, p, nil
}

// warnPartial reports a failed fetch; the report continues over an empty
// collection.
func warnPartial(r client.Records) {
	if r.BudgetsErr != nil {
		fmt.Fprintln(os.Stderr, cli.FormatWarning("budgets unavailable, reporting without them: "+r.BudgetsErr.Error()))
	}
	if r.TransactionsErr != nil {
		fmt.Fprintln(os.Stderr, cli.FormatWarning("transactions unavailable, reporting without them: "+r.TransactionsErr.Error()))
	}
}

func summaryCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show budgeted vs spent for a period",
		Long: `Fetch a user's budgets and transactions and report total budgeted, spent
and remaining for the week, month or year containing the reference date.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, p, err := flags.resolve()
			if err != nil {
				return err
			}

			records := newClient().FetchRecords(cmd.Context(), flags.userID)
			warnPartial(records)

			summary := analytics.SummarizeBudgets(records.Budgets, records.Transactions, ref, p)
			return cli.RenderSummary(cmd.OutOrStdout(), summary)
		},
	}
	flags.register(cmd)
	return cmd
}
