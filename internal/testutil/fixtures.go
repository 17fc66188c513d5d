package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"walletwise/internal/models"
	"walletwise/internal/money"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique provider id and email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithEmail(t, db, fmt.Sprintf("user%d@test.com", n))
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	n := nextID()
	user := &models.User{
		UserID: fmt.Sprintf("auth0|user%d", n),
		Name:   fmt.Sprintf("Test User %d", n),
		Email:  email,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction records a transaction of the given type, category and
// amount (in cents) dated at date.
func CreateTestTransaction(
	t *testing.T,
	db *gorm.DB,
	userID string,
	txType models.TransactionType,
	category string,
	amount money.Cents,
	date time.Time,
) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:        userID,
		TransactionID: fmt.Sprintf("TXN-%d", nextID()),
		Type:          txType,
		Description:   "test transaction",
		Amount:        amount,
		Category:      category,
		Date:          date,
		Account:       "Checking",
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a budget of 10000 cents for the given category,
// dated now.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category string) *models.Budget {
	t.Helper()
	return CreateTestBudgetWithAmount(t, db, userID, category, 10000, time.Now())
}

// CreateTestBudgetWithAmount creates a budget with the given amount and date.
func CreateTestBudgetWithAmount(t *testing.T, db *gorm.DB, userID, category string, amount money.Cents, date time.Time) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		BudgetID: fmt.Sprintf("BGT-%d", nextID()),
		Category: category,
		Amount:   amount,
		Date:     date,
	}
	if category == "Other" {
		budget.CustomCategory = fmt.Sprintf("Custom %d", nextID())
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestSavingsGoal creates a goal with the given target and amount
// saved so far (both in cents).
func CreateTestSavingsGoal(t *testing.T, db *gorm.DB, userID string, target, saved money.Cents) *models.SavingsGoal {
	t.Helper()

	n := nextID()
	goal := &models.SavingsGoal{
		UserID:        userID,
		SavingGoalID:  fmt.Sprintf("SVG-%d", n),
		GoalName:      fmt.Sprintf("Test Goal %d", n),
		TargetAmount:  target,
		InitialAmount: saved,
		Date:          time.Now(),
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test savings goal: %v", err)
	}
	return goal
}
