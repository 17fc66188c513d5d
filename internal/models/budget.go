package models

import (
	"time"

	"walletwise/internal/category"
	"walletwise/internal/money"

	"gorm.io/gorm"
)

// Budget is a user's spending cap for one category. A user has at most one
// budget per category key; the composite unique index enforces it.
type Budget struct {
	Base
	UserID         string      `gorm:"not null;uniqueIndex:idx_budgets_user_category" json:"userId"`
	BudgetID       string      `gorm:"not null;uniqueIndex" json:"budgetId"`
	Category       string      `gorm:"not null" json:"category"`
	CustomCategory string      `json:"customCategory"`
	CategoryKey    string      `gorm:"not null;uniqueIndex:idx_budgets_user_category" json:"categoryKey"`
	Amount         money.Cents `gorm:"type:bigint;not null" json:"amount"`
	Notes          string      `gorm:"size:500" json:"notes"`
	Date           time.Time   `gorm:"not null" json:"date"`
}

// BeforeSave normalises the category label and recomputes its key.
func (b *Budget) BeforeSave(tx *gorm.DB) error {
	b.Category = category.Normalize(b.Category)
	b.CategoryKey = category.Key(b.Category, b.CustomCategory)
	return nil
}

// OccurredAt implements period.Dated.
func (b Budget) OccurredAt() time.Time { return b.Date }

// MatchKey returns the key spend is matched against.
func (b Budget) MatchKey() string {
	if b.CategoryKey != "" {
		return b.CategoryKey
	}
	return category.Key(b.Category, b.CustomCategory)
}

// Label is the display name, the custom label for "Other" budgets.
func (b Budget) Label() string {
	return category.Label(b.Category, b.CustomCategory)
}
