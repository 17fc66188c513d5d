// Package errors provides custom error types for the WalletWise API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError carrying the same code, so that
// errors.Is(err, ErrBudgetNotFound) holds for wrapped or re-messaged copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrInvalidPeriod  = &AppError{Code: "INVALID_PERIOD", Message: "Period must be one of week, month or year", StatusCode: http.StatusBadRequest}
	ErrInvalidDate    = &AppError{Code: "INVALID_DATE", Message: "Date is missing or malformed", StatusCode: http.StatusBadRequest}
)

// User errors.
var (
	ErrDuplicateUser  = &AppError{Code: "DUPLICATE_USER", Message: "A user with this id already exists", StatusCode: http.StatusConflict}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrInvalidCategory        = &AppError{Code: "INVALID_CATEGORY", Message: "Unsupported budget category", StatusCode: http.StatusBadRequest}
	ErrCustomCategoryRequired = &AppError{Code: "CUSTOM_CATEGORY_REQUIRED", Message: "Custom category is required for 'Other'", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
	ErrDuplicateTransaction   = &AppError{Code: "DUPLICATE_TRANSACTION", Message: "A transaction with this id already exists", StatusCode: http.StatusConflict}
)

// Budget errors.
var (
	ErrBudgetNotFound  = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrDuplicateBudget = &AppError{Code: "DUPLICATE_BUDGET", Message: "A budget for this category already exists", StatusCode: http.StatusConflict}
)

// Savings errors.
var (
	ErrSavingsGoalNotFound  = &AppError{Code: "SAVINGS_GOAL_NOT_FOUND", Message: "Saving goal not found", StatusCode: http.StatusNotFound}
	ErrDuplicateSavingsGoal = &AppError{Code: "DUPLICATE_SAVINGS_GOAL", Message: "A saving goal with this id already exists", StatusCode: http.StatusConflict}
	ErrInvalidAllocation    = &AppError{Code: "INVALID_ALLOCATION", Message: "Invalid allocation amount", StatusCode: http.StatusBadRequest}
)
