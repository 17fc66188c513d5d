package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "walletwise/internal/errors"
	"walletwise/internal/models"
	"walletwise/internal/money"
	"walletwise/internal/pagination"
	"walletwise/internal/uuid"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a new income or expense entry. The category may
// be any label; labels outside the budget categories are kept as custom
// categories.
func (s *transactionService) CreateTransaction(
	userID, transactionID string,
	transactionType models.TransactionType,
	description string,
	amount money.Cents,
	category string,
	date time.Time,
	account string,
) (*models.Transaction, error) {
	// Validate input
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "userId is required")
	}
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if strings.TrimSpace(category) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}
	if transactionID == "" {
		transactionID = uuid.NewPrefixed(uuid.PrefixTransaction)
	}

	tx := &models.Transaction{
		UserID:        userID,
		TransactionID: transactionID,
		Type:          transactionType,
		Description:   strings.TrimSpace(description),
		Amount:        amount,
		Category:      strings.TrimSpace(category),
		Date:          date,
		Account:       strings.TrimSpace(account),
	}

	if err := s.db.Create(tx).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateTransaction
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return tx, nil
}

// GetUserTransactions returns every transaction for the user, oldest first.
// An unknown user yields an empty list.
func (s *transactionService) GetUserTransactions(userID string) ([]models.Transaction, error) {
	txns := []models.Transaction{}
	if err := s.db.Where("user_id = ?", userID).Order("date ASC, created_at ASC").Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txns, nil
}

// GetTransactionHistory returns one page of the user's transactions, newest
// first.
func (s *transactionService) GetTransactionHistory(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&txns).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(txns, page.Page, page.PageSize, total)
	return &resp, nil
}
