package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "walletwise/internal/errors"
	"walletwise/internal/models"
	"walletwise/internal/money"
	"walletwise/internal/uuid"
)

// savingsService handles savings goal business logic.
type savingsService struct {
	db *gorm.DB
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(db *gorm.DB) SavingsServicer {
	return &savingsService{db: db}
}

// CreateSavingsGoal creates a goal. initialAmount is what has already been
// saved towards it.
func (s *savingsService) CreateSavingsGoal(
	userID, savingGoalID, goalName string,
	targetAmount, initialAmount money.Cents,
	date time.Time,
) (*models.SavingsGoal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "userId is required")
	}
	goalName = strings.TrimSpace(goalName)
	if goalName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goalName is required")
	}
	if targetAmount < 0 || initialAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amounts must not be negative")
	}
	if date.IsZero() {
		date = time.Now()
	}
	if savingGoalID == "" {
		savingGoalID = uuid.NewPrefixed(uuid.PrefixSavingsGoal)
	}

	goal := &models.SavingsGoal{
		UserID:        userID,
		SavingGoalID:  savingGoalID,
		GoalName:      goalName,
		TargetAmount:  targetAmount,
		InitialAmount: initialAmount,
		Date:          date,
	}

	if err := s.db.Create(goal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateSavingsGoal
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserSavingsGoals returns every goal for the user, oldest first.
func (s *savingsService) GetUserSavingsGoals(userID string) ([]models.SavingsGoal, error) {
	goals := []models.SavingsGoal{}
	if err := s.db.Where("user_id = ?", userID).Order("date ASC, created_at ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// GetSavingsGoalByID returns a goal by its business ID.
func (s *savingsService) GetSavingsGoalByID(savingGoalID string) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := s.db.Where("saving_goal_id = ?", savingGoalID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSavingsGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// AllocateFunds adds amount to the goal's saved total. The increment is a
// single UPDATE so concurrent allocations never lose each other's writes.
// Allocations are strictly additive: allocating 100 twice adds 200.
func (s *savingsService) AllocateFunds(savingGoalID string, amount money.Cents, update GoalUpdate) (*models.SavingsGoal, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAllocation, "Allocation amount must be greater than zero")
	}
	if update.TargetAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "targetAmount must not be negative")
	}

	updates := map[string]interface{}{
		"initial_amount": gorm.Expr("initial_amount + ?", amount),
	}
	if name := strings.TrimSpace(update.GoalName); name != "" {
		updates["goal_name"] = name
	}
	if update.TargetAmount > 0 {
		updates["target_amount"] = update.TargetAmount
	}
	if !update.Date.IsZero() {
		updates["date"] = update.Date
	}

	var goal models.SavingsGoal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SavingsGoal{}).
			Where("saving_goal_id = ?", savingGoalID).
			Updates(updates)
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrSavingsGoalNotFound
		}

		if err := tx.Where("saving_goal_id = ?", savingGoalID).First(&goal).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

// DeleteSavingsGoal permanently removes a goal.
func (s *savingsService) DeleteSavingsGoal(savingGoalID string) error {
	result := s.db.Unscoped().Where("saving_goal_id = ?", savingGoalID).Delete(&models.SavingsGoal{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrSavingsGoalNotFound
	}
	return nil
}
