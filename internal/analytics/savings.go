package analytics

import (
	"walletwise/internal/category"
	"walletwise/internal/models"
	"walletwise/internal/money"
)

// GoalProgress is how far a single savings goal has come.
type GoalProgress struct {
	SavingGoalID string      `json:"savingGoalId"`
	GoalName     string      `json:"goalName"`
	Target       money.Cents `json:"target"`
	Saved        money.Cents `json:"saved"`
	Remaining    money.Cents `json:"remaining"`
	Progress     float64     `json:"progress"`
}

// SavingsOverview compares money tagged as savings with what has been
// allocated to goals.
type SavingsOverview struct {
	// TotalSavings is every transaction filed under the Savings category.
	TotalSavings   money.Cents    `json:"totalSavings"`
	TotalAllocated money.Cents    `json:"totalAllocated"`
	Unallocated    money.Cents    `json:"unallocated"`
	TotalTarget    money.Cents    `json:"totalTarget"`
	Goals          []GoalProgress `json:"goals"`
}

// SummarizeSavings reports per-goal progress and how much of the money saved
// via Savings transactions is not yet allocated to a goal. Unallocated goes
// negative when goals were funded from elsewhere.
func SummarizeSavings(goals []models.SavingsGoal, transactions []models.Transaction) SavingsOverview {
	savingsKey := category.Key(string(category.Savings), "")

	o := SavingsOverview{Goals: make([]GoalProgress, 0, len(goals))}
	for _, t := range transactions {
		if t.MatchKey() == savingsKey {
			o.TotalSavings += t.Amount
		}
	}

	for _, g := range goals {
		o.TotalAllocated += g.InitialAmount
		o.TotalTarget += g.TargetAmount

		remaining := g.TargetAmount - g.InitialAmount
		if remaining < 0 {
			remaining = 0
		}
		o.Goals = append(o.Goals, GoalProgress{
			SavingGoalID: g.SavingGoalID,
			GoalName:     g.GoalName,
			Target:       g.TargetAmount,
			Saved:        g.InitialAmount,
			Remaining:    remaining,
			Progress:     Progress(g.InitialAmount, g.TargetAmount),
		})
	}

	o.Unallocated = o.TotalSavings - o.TotalAllocated
	return o
}
