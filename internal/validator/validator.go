// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"walletwise/internal/category"
	"walletwise/internal/period"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom tags on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("budget_category", validateBudgetCategory)
	_ = v.RegisterValidation("period", validatePeriod)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

// validateBudgetCategory accepts any casing of the fixed budget categories.
func validateBudgetCategory(fl validator.FieldLevel) bool {
	return category.IsValid(fl.Field().String())
}

// validatePeriod accepts the same spellings as period.Parse, e.g. " Week ".
func validatePeriod(fl validator.FieldLevel) bool {
	_, err := period.Parse(fl.Field().String())
	return err == nil
}
