package analytics

import (
	"time"

	"walletwise/internal/models"
	"walletwise/internal/period"
)

// Dashboard bundles everything the overview page renders for one period.
type Dashboard struct {
	Period        period.Period   `json:"period"`
	ReferenceDate time.Time       `json:"referenceDate"`
	Budget        BudgetSummary   `json:"budget"`
	CashFlow      CashFlow        `json:"cashFlow"`
	Breakdown     []BucketTotal   `json:"breakdown"`
	Spending      []SpendingPoint `json:"spending"`
	CashFlowTrend []CashFlowPoint `json:"cashFlowTrend"`
	Savings       SavingsOverview `json:"savings"`
}

// BuildDashboard computes every dashboard figure from the same inputs.
func BuildDashboard(
	budgets []models.Budget,
	transactions []models.Transaction,
	goals []models.SavingsGoal,
	ref time.Time,
	p period.Period,
) Dashboard {
	return Dashboard{
		Period:        p,
		ReferenceDate: ref,
		Budget:        SummarizeBudgets(budgets, transactions, ref, p),
		CashFlow:      SummarizeCashFlow(transactions, ref, p),
		Breakdown:     CategoryBreakdown(transactions, ref, p),
		Spending:      SpendingSeries(transactions, ref, p),
		CashFlowTrend: CashFlowSeries(transactions, ref, p),
		Savings:       SummarizeSavings(goals, transactions),
	}
}
