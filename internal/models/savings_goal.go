package models

import (
	"time"

	"walletwise/internal/money"
)

// SavingsGoal tracks money set aside towards a target. InitialAmount is the
// running total saved so far; allocations only ever add to it.
type SavingsGoal struct {
	Base
	UserID        string      `gorm:"not null;index" json:"userId"`
	SavingGoalID  string      `gorm:"not null;uniqueIndex" json:"savingGoalId"`
	GoalName      string      `gorm:"not null" json:"goalName"`
	TargetAmount  money.Cents `gorm:"type:bigint;not null" json:"targetAmount"`
	InitialAmount money.Cents `gorm:"type:bigint;not null;default:0" json:"initialAmount"`
	Date          time.Time   `gorm:"not null" json:"date"`
}

// TableName keeps the plural the API has always used.
func (SavingsGoal) TableName() string { return "savings_goals" }
