package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "walletwise/internal/errors"
	"walletwise/internal/models"
	"walletwise/internal/money"
	"walletwise/internal/pagination"
	"walletwise/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		auditService:       auditService,
	}
}

// CreateTransactionRequest represents the request payload for recording a
// transaction. Category is free text: budget categories or any custom label.
// Amount is in dollars with at most two decimal places.
type CreateTransactionRequest struct {
	UserID        string                 `json:"userId" binding:"required"`
	TransactionID string                 `json:"transactionId"`
	Type          models.TransactionType `json:"type" binding:"required,transaction_type"`
	Description   string                 `json:"description" binding:"max=500"`
	Amount        *money.Cents           `json:"amount" binding:"required,gte=0" swaggertype:"number"`
	Category      string                 `json:"category" binding:"required,max=100"`
	Date          string                 `json:"date"`
	Account       string                 `json:"account" binding:"max=100"`
}

// CreateTransaction handles recording a new transaction.
// @Summary     Create a transaction
// @Description Record an income or expense
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate transaction id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.CreateTransaction(
		req.UserID, req.TransactionID, req.Type, req.Description, *req.Amount, req.Category, date, req.Account,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(req.UserID, "CREATE_TRANSACTION", "transaction", tx.TransactionID, c.ClientIP(),
		map[string]interface{}{"type": tx.Type, "amount": tx.Amount, "category": tx.Category})

	c.JSON(http.StatusCreated, tx)
}

// GetTransactions handles listing every transaction for a user.
// @Summary     List transactions
// @Description Get all transactions for a user, oldest first
// @Tags        transactions
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{userId} [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := pathParam(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	txns, err := h.transactionService.GetUserTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, txns)
}

// GetTransactionHistory handles paged transaction history.
// @Summary     Transaction history
// @Description Get one page of a user's transactions, newest first
// @Tags        transactions
// @Produce     json
// @Param       userId   path  string true  "User ID"
// @Param       page     query int    false "Page number (default 1)"
// @Param       pageSize query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Page of transactions"
// @Failure     400 {object} ErrorResponse "Invalid page"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{userId}/history [get]
func (h *TransactionHandler) GetTransactionHistory(c *gin.Context) {
	userID, err := pathParam(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.GetTransactionHistory(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
