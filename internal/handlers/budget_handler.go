package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "walletwise/internal/errors"
	"walletwise/internal/money"
	"walletwise/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
// Amounts are in dollars with at most two decimal places.
type CreateBudgetRequest struct {
	UserID         string       `json:"userId" binding:"required"`
	BudgetID       string       `json:"budgetId"`
	Category       string       `json:"category" binding:"required,budget_category"`
	CustomCategory string       `json:"customCategory" binding:"max=100"`
	Amount         *money.Cents `json:"amount" binding:"required,gte=0" swaggertype:"number"`
	Notes          string       `json:"notes" binding:"max=500"`
	Date           string       `json:"date"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Amount *money.Cents `json:"amount" binding:"omitempty,gte=0" swaggertype:"number"`
	Notes  *string      `json:"notes" binding:"omitempty,max=500"`
	Date   *string      `json:"date"`
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a budget for one category. A user may hold one budget per category.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Budget already exists for category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.CreateBudget(
		req.UserID, req.BudgetID, req.Category, req.CustomCategory, *req.Amount, req.Notes, date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(req.UserID, "CREATE_BUDGET", "budget", budget.BudgetID, c.ClientIP(),
		map[string]interface{}{"category": budget.Category, "customCategory": budget.CustomCategory, "amount": budget.Amount})

	c.JSON(http.StatusCreated, budget)
}

// GetBudgets handles listing every budget for a user.
// @Summary     List budgets
// @Description Get all budgets for a user
// @Tags        budgets
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {array} models.Budget "Budgets"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{userId} [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := pathParam(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// UpdateBudget handles updating a budget's amount, notes or date.
// @Summary     Update a budget
// @Description Update the amount, notes or date of a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       budgetId path string              true "Budget ID"
// @Param       request  body UpdateBudgetRequest true "Fields to update"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{budgetId} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	budgetID, err := pathParam(c, "budgetId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date *time.Time
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		date = &d
	}

	budget, err := h.budgetService.UpdateBudget(budgetID, req.Amount, req.Notes, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{}
	if req.Amount != nil {
		changes["amount"] = *req.Amount
	}
	if req.Notes != nil {
		changes["notes"] = *req.Notes
	}
	if date != nil {
		changes["date"] = *date
	}
	h.auditService.Log(budget.UserID, "UPDATE_BUDGET", "budget", budget.BudgetID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, budget)
}

// DeleteBudget handles deleting a budget.
// @Summary     Delete a budget
// @Description Permanently delete a budget
// @Tags        budgets
// @Produce     json
// @Param       budgetId path string true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{budgetId} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	budgetID, err := pathParam(c, "budgetId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(budget.UserID, "DELETE_BUDGET", "budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Budget deleted successfully"})
}
