package services

import (
	"context"
	"time"

	"walletwise/internal/analytics"
	"walletwise/internal/models"
	"walletwise/internal/money"
	"walletwise/internal/pagination"
	"walletwise/internal/period"
)

// UserServicer defines the contract for user profile business logic.
type UserServicer interface {
	CreateUser(userID, name, email, phoneNumber string) (*models.User, error)
	ListUsers() ([]models.User, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
// Transactions are append-only.
type TransactionServicer interface {
	CreateTransaction(
		userID, transactionID string,
		transactionType models.TransactionType,
		description string,
		amount money.Cents,
		category string,
		date time.Time,
		account string,
	) (*models.Transaction, error)
	GetUserTransactions(userID string) ([]models.Transaction, error)
	GetTransactionHistory(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, budgetID, category, customCategory string, amount money.Cents, notes string, date time.Time) (*models.Budget, error)
	GetUserBudgets(userID string) ([]models.Budget, error)
	GetBudgetByID(budgetID string) (*models.Budget, error)
	UpdateBudget(budgetID string, amount *money.Cents, notes *string, date *time.Time) (*models.Budget, error)
	DeleteBudget(budgetID string) error
}

// GoalUpdate carries the optional goal fields that may be changed alongside
// an allocation. Zero values leave the stored field untouched.
type GoalUpdate struct {
	GoalName     string
	TargetAmount money.Cents
	Date         time.Time
}

// SavingsServicer defines the contract for savings goal business logic.
type SavingsServicer interface {
	CreateSavingsGoal(userID, savingGoalID, goalName string, targetAmount, initialAmount money.Cents, date time.Time) (*models.SavingsGoal, error)
	GetUserSavingsGoals(userID string) ([]models.SavingsGoal, error)
	GetSavingsGoalByID(savingGoalID string) (*models.SavingsGoal, error)
	AllocateFunds(savingGoalID string, amount money.Cents, update GoalUpdate) (*models.SavingsGoal, error)
	DeleteSavingsGoal(savingGoalID string) error
}

// Trends bundles the chart series for one period.
type Trends struct {
	Period   period.Period             `json:"period"`
	Window   period.Window             `json:"window"`
	Spending []analytics.SpendingPoint `json:"spending"`
	CashFlow []analytics.CashFlowPoint `json:"cashFlow"`
}

// AnalyticsServicer loads a user's records and reduces them into
// period-scoped metrics.
type AnalyticsServicer interface {
	GetBudgetSummary(ctx context.Context, userID string, ref time.Time, p period.Period) (*analytics.BudgetSummary, error)
	GetTrends(ctx context.Context, userID string, ref time.Time, p period.Period) (*Trends, error)
	GetDashboard(ctx context.Context, userID string, ref time.Time, p period.Period) (*analytics.Dashboard, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
