package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletwise/internal/analytics"
	"walletwise/internal/category"
	"walletwise/internal/models"
	"walletwise/internal/money"
	"walletwise/internal/period"
)

var ref = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents money.Cents
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1234, "$12.34"},
		{-1234, "-$12.34"},
		{100000, "$1000.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.cents))
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    money.Cents
		wantErr bool
	}{
		{"25.50", 2550, false},
		{"25.5", 2550, false},
		{"$10", 1000, false},
		{" 0.01 ", 1, false},
		{"-3", -300, false},
		{"$1,200.75", 120075, false},
		{"1.005", 0, true},
		{"92233720368547758.08", 0, true},
		{"ten", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderSummary(t *testing.T) {
	budgets := []models.Budget{
		{BudgetID: "b1", Category: "Food & Dining", Amount: 50000, Date: ref},
		{BudgetID: "b2", Category: "Housing", Amount: 100000, Date: ref},
	}
	txns := []models.Transaction{
		{Type: models.TransactionTypeExpense, Category: "Food & Dining", Amount: 55000, Date: ref},
		{Type: models.TransactionTypeExpense, Category: "Housing", Amount: 90000, Date: ref},
	}
	s := analytics.SummarizeBudgets(budgets, txns, ref, period.Month)

	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, s))

	out := buf.String()
	assert.Contains(t, out, "Budget summary (month, 2025-03-01")
	assert.Contains(t, out, "$1500.00")
	assert.Contains(t, out, "$1450.00")
	assert.Contains(t, out, "Food & Dining is over budget by $50.00")
	assert.NotContains(t, out, "Housing is over budget")
}

func TestRenderSummary_NoAlerts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, analytics.SummarizeBudgets(nil, nil, ref, period.Week)))
	assert.Contains(t, buf.String(), "All categories are within budget")
}

func TestRenderTrends(t *testing.T) {
	txns := []models.Transaction{
		{Type: models.TransactionTypeExpense, Category: "Housing", Amount: 120000, Date: ref},
		{Type: models.TransactionTypeIncome, Category: "Salary", Amount: 500000, Date: ref},
	}

	var buf bytes.Buffer
	err := RenderTrends(&buf,
		analytics.SpendingSeries(txns, ref, period.Year),
		analytics.CashFlowSeries(txns, ref, period.Year))
	require.NoError(t, err)

	out := buf.String()
	for _, b := range category.Buckets {
		assert.Contains(t, out, string(b))
	}
	assert.Contains(t, out, "2022")
	assert.Contains(t, out, "2025")
	assert.Contains(t, out, "$1200.00")
	assert.Contains(t, out, "$3800.00")
}

func TestRenderGoal(t *testing.T) {
	var buf bytes.Buffer
	g := &models.SavingsGoal{GoalName: "Trip", TargetAmount: 100000, InitialAmount: 25000}
	require.NoError(t, RenderGoal(&buf, g))
	assert.Contains(t, buf.String(), "Trip: $250.00 of $1000.00 saved")
	assert.Contains(t, buf.String(), "[##........] 25%")
}

func TestParseAmount_OutOfRange(t *testing.T) {
	_, err := ParseAmount("100000000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, money.ErrOutOfRange)
}

func TestRenderSavings(t *testing.T) {
	goals := []models.SavingsGoal{
		{SavingGoalID: "g1", GoalName: "Emergency Fund", TargetAmount: 500000, InitialAmount: 150000},
	}
	txns := []models.Transaction{
		{Type: models.TransactionTypeExpense, Category: "Savings", Amount: 200000, Date: ref},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderSavings(&buf, analytics.SummarizeSavings(goals, txns)))

	out := buf.String()
	assert.Contains(t, out, "Emergency Fund")
	assert.Contains(t, out, "$2000.00")
	assert.Contains(t, out, "$500.00")
	assert.Contains(t, out, "$3500.00")
	assert.Contains(t, out, "[###.......] 30%")
}

func TestRenderSavings_NoGoals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSavings(&buf, analytics.SummarizeSavings(nil, nil)))
	assert.Contains(t, buf.String(), "No savings goals yet")
}
