package models

import (
	"time"

	"walletwise/internal/category"
	"walletwise/internal/money"

	"gorm.io/gorm"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single income or expense entry. Transactions are never
// edited once recorded.
type Transaction struct {
	Base
	UserID        string          `gorm:"not null;index" json:"userId"`
	TransactionID string          `gorm:"not null;uniqueIndex" json:"transactionId"`
	Type          TransactionType `gorm:"not null" json:"type"`
	Description   string          `json:"description"`
	Amount        money.Cents     `gorm:"type:bigint;not null" json:"amount"`
	Category      string          `gorm:"not null" json:"category"`
	CategoryKey   string          `gorm:"index" json:"categoryKey"`
	Date          time.Time       `gorm:"not null;index" json:"date"`
	Account       string          `json:"account"`
}

// BeforeSave keeps the category matching key in sync with the label.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.CategoryKey = category.TransactionKey(t.Category)
	return nil
}

// OccurredAt implements period.Dated.
func (t Transaction) OccurredAt() time.Time { return t.Date }

// IsExpense reports whether the transaction counts as spend. Anything that
// is not explicitly income is treated as an expense.
func (t Transaction) IsExpense() bool { return t.Type != TransactionTypeIncome }

// MatchKey returns the category key used to attribute spend to a budget.
func (t Transaction) MatchKey() string {
	if t.CategoryKey != "" {
		return t.CategoryKey
	}
	return category.TransactionKey(t.Category)
}
