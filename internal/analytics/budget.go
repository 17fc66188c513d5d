// Package analytics turns raw budgets, transactions and savings goals into
// the period-scoped figures shown on the dashboards.
//
// Every function here is pure: it reads its arguments, never modifies them,
// and is defined for empty and zero inputs. Callers are free to run them
// concurrently.
package analytics

import (
	"math"
	"time"

	"walletwise/internal/models"
	"walletwise/internal/money"
	"walletwise/internal/period"
)

// Status summarises the alert set of a BudgetSummary.
type Status string

const (
	StatusAllWithinBudget Status = "all_within_budget"
	StatusOverBudget      Status = "over_budget"
)

// CategoryProgress is spend against a single budget.
type CategoryProgress struct {
	BudgetID    string      `json:"budgetId"`
	Category    string      `json:"category"`
	CategoryKey string      `json:"categoryKey"`
	Budgeted    money.Cents `json:"budgeted"`
	Spent       money.Cents `json:"spent"`
	Remaining   money.Cents `json:"remaining"`
	// Progress is spent/budgeted as a percentage, clamped to [0, 100] so a
	// progress bar never overflows. Overage carries the raw excess.
	Progress float64     `json:"progress"`
	Overage  money.Cents `json:"overage"`
	Over     bool        `json:"over"`
}

// Alert flags a budget whose spend has reached or passed its cap.
type Alert struct {
	BudgetID string      `json:"budgetId"`
	Category string      `json:"category"`
	Budgeted money.Cents `json:"budgeted"`
	Spent    money.Cents `json:"spent"`
	Overage  money.Cents `json:"overage"`
}

// BudgetSummary is the budget page for one period.
type BudgetSummary struct {
	Period              period.Period      `json:"period"`
	Window              period.Window      `json:"window"`
	TotalBudgeted       money.Cents        `json:"totalBudgeted"`
	TotalSpent          money.Cents        `json:"totalSpent"`
	TotalRemaining      money.Cents        `json:"totalRemaining"`
	SpentPercentage     int64              `json:"spentPercentage"`
	RemainingPercentage int64              `json:"remainingPercentage"`
	Categories          []CategoryProgress `json:"categories"`
	Alerts              []Alert            `json:"alerts"`
	Status              Status             `json:"status"`
}

// SummarizeBudgets scopes budgets and transactions to the period containing
// ref and reduces them to totals, per-category progress and alerts. Budgets
// and transactions are both scoped by their own date; income never counts
// as spend.
func SummarizeBudgets(budgets []models.Budget, transactions []models.Transaction, ref time.Time, p period.Period) BudgetSummary {
	w := period.Current(ref, p)
	inBudgets := period.Filter(budgets, w)
	expenses := Expenses(period.Filter(transactions, w))

	spentByKey := make(map[string]money.Cents, len(inBudgets))
	for _, t := range expenses {
		spentByKey[t.MatchKey()] += t.Amount
	}

	s := BudgetSummary{
		Period:     p,
		Window:     w,
		TotalSpent: SumAmounts(expenses),
		Categories: make([]CategoryProgress, 0, len(inBudgets)),
		Alerts:     []Alert{},
	}

	for _, b := range inBudgets {
		s.TotalBudgeted += b.Amount
		cp := categoryProgress(b, spentByKey[b.MatchKey()])
		s.Categories = append(s.Categories, cp)
		if cp.Over {
			s.Alerts = append(s.Alerts, Alert{
				BudgetID: cp.BudgetID,
				Category: cp.Category,
				Budgeted: cp.Budgeted,
				Spent:    cp.Spent,
				Overage:  cp.Overage,
			})
		}
	}

	s.TotalRemaining = s.TotalBudgeted - s.TotalSpent
	s.SpentPercentage = SpentPercentage(s.TotalSpent, s.TotalBudgeted)
	s.RemainingPercentage = 100 - s.SpentPercentage
	if s.TotalBudgeted == 0 {
		s.RemainingPercentage = 0
	}

	s.Status = StatusAllWithinBudget
	if len(s.Alerts) > 0 {
		s.Status = StatusOverBudget
	}
	return s
}

func categoryProgress(b models.Budget, spent money.Cents) CategoryProgress {
	cp := CategoryProgress{
		BudgetID:    b.BudgetID,
		Category:    b.Label(),
		CategoryKey: b.MatchKey(),
		Budgeted:    b.Amount,
		Spent:       spent,
		Remaining:   b.Amount - spent,
		Progress:    Progress(spent, b.Amount),
		Over:        spent >= b.Amount,
	}
	if spent > b.Amount {
		cp.Overage = spent - b.Amount
	}
	return cp
}

// SpentPercentage returns round(spent / budgeted * 100), or 0 when nothing
// is budgeted.
func SpentPercentage(spent, budgeted money.Cents) int64 {
	if budgeted <= 0 {
		return 0
	}
	return int64(math.Round(float64(spent) / float64(budgeted) * 100))
}

// Progress returns spent/budgeted as a percentage clamped to [0, 100]. A zero
// budget reports 0 rather than dividing by zero.
func Progress(spent, budgeted money.Cents) float64 {
	if budgeted <= 0 || spent <= 0 {
		return 0
	}
	return math.Min(float64(spent)/float64(budgeted)*100, 100)
}

// Expenses returns the non-income transactions, preserving order.
func Expenses(transactions []models.Transaction) []models.Transaction {
	return period.FilterFunc(transactions, models.Transaction.IsExpense)
}

// Income returns the income transactions, preserving order.
func Income(transactions []models.Transaction) []models.Transaction {
	return period.FilterFunc(transactions, func(t models.Transaction) bool { return !t.IsExpense() })
}

// SumAmounts adds up transaction amounts.
func SumAmounts(transactions []models.Transaction) money.Cents {
	var total money.Cents
	for _, t := range transactions {
		total += t.Amount
	}
	return total
}
