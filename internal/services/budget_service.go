package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"walletwise/internal/category"
	apperrors "walletwise/internal/errors"
	"walletwise/internal/models"
	"walletwise/internal/money"
	"walletwise/internal/uuid"
)

const maxNotesLength = 500

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a budget for one category. A user may hold only one
// budget per category; "Other" budgets are told apart by their custom label.
// Duplicates are rejected before anything is written.
func (s *budgetService) CreateBudget(
	userID, budgetID, rawCategory, customCategory string,
	amount money.Cents,
	notes string,
	date time.Time,
) (*models.Budget, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "userId is required")
	}

	cat, err := category.Parse(rawCategory)
	if err != nil {
		return nil, err
	}
	customCategory = strings.TrimSpace(customCategory)
	if cat == category.Other && customCategory == "" {
		return nil, apperrors.ErrCustomCategoryRequired
	}
	if cat != category.Other {
		customCategory = ""
	}

	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if len(notes) > maxNotesLength {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "notes must be at most 500 characters")
	}
	if date.IsZero() {
		date = time.Now()
	}

	key := category.Key(string(cat), customCategory)
	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category_key = ?", userID, key).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrDuplicateBudget,
			"A budget for "+category.Label(string(cat), customCategory)+" already exists")
	}

	if budgetID == "" {
		budgetID = uuid.NewPrefixed(uuid.PrefixBudget)
	}

	budget := &models.Budget{
		UserID:         userID,
		BudgetID:       budgetID,
		Category:       string(cat),
		CustomCategory: customCategory,
		Amount:         amount,
		Notes:          notes,
		Date:           date,
	}

	// The unique index still guards against a concurrent create slipping
	// past the pre-check.
	if err := s.db.Create(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateBudget
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns every budget for the user, oldest first.
func (s *budgetService) GetUserBudgets(userID string) ([]models.Budget, error) {
	budgets := []models.Budget{}
	if err := s.db.Where("user_id = ?", userID).Order("date ASC, created_at ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetByID returns a budget by its business ID.
func (s *budgetService) GetBudgetByID(budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("budget_id = ?", budgetID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget changes a budget's amount, notes or date. The category is
// fixed once created.
func (s *budgetService) UpdateBudget(budgetID string, amount *money.Cents, notes *string, date *time.Time) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if amount != nil {
		if *amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		updates["amount"] = *amount
	}
	if notes != nil {
		if len(*notes) > maxNotesLength {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "notes must be at most 500 characters")
		}
		updates["notes"] = *notes
	}
	if date != nil && !date.IsZero() {
		updates["date"] = *date
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetBudgetByID(budgetID)
}

// DeleteBudget permanently removes a budget so the category can be budgeted
// again.
func (s *budgetService) DeleteBudget(budgetID string) error {
	result := s.db.Unscoped().Where("budget_id = ?", budgetID).Delete(&models.Budget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}
