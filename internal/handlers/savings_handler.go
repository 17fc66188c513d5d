package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "walletwise/internal/errors"
	"walletwise/internal/money"
	"walletwise/internal/services"
)

// SavingsHandler handles savings goal requests.
type SavingsHandler struct {
	savingsService services.SavingsServicer
	auditService   services.AuditServicer
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer, auditService services.AuditServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService, auditService: auditService}
}

// CreateSavingsGoalRequest represents the request payload for creating a goal.
// Amounts are in dollars. AllocationAmount is accepted for compatibility and
// ignored; funds are only allocated through the allocate endpoint.
type CreateSavingsGoalRequest struct {
	UserID           string          `json:"userId" binding:"required"`
	SavingGoalID     string          `json:"savingGoalId"`
	GoalName         string          `json:"goalName" binding:"required,max=100"`
	TargetAmount     *money.Cents    `json:"targetAmount" binding:"required,gte=0" swaggertype:"number"`
	InitialAmount    money.Cents     `json:"initialAmount" binding:"gte=0" swaggertype:"number"`
	AllocationAmount json.RawMessage `json:"allocationAmount" swaggertype:"number"`
	Date             string          `json:"date"`
}

// AllocateFundsRequest represents the request payload for allocating funds to
// a goal. AllocationAmount must be present, numeric and positive, in dollars
// with at most two decimal places.
type AllocateFundsRequest struct {
	AllocationAmount *money.Cents `json:"allocationAmount" binding:"required" swaggertype:"number"`
	GoalName         string       `json:"goalName" binding:"max=100"`
	TargetAmount     *money.Cents `json:"targetAmount" binding:"omitempty,gte=0" swaggertype:"number"`
	Date             string       `json:"date"`
}

// CreateSavingsGoal handles the creation of a new savings goal.
// @Summary     Create a savings goal
// @Description Create a savings goal with an optional amount already saved
// @Tags        savings
// @Accept      json
// @Produce     json
// @Param       request body CreateSavingsGoalRequest true "Goal details"
// @Success     201 {object} models.SavingsGoal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings [post]
func (h *SavingsHandler) CreateSavingsGoal(c *gin.Context) {
	var req CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.savingsService.CreateSavingsGoal(
		req.UserID, req.SavingGoalID, req.GoalName, *req.TargetAmount, req.InitialAmount, date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(req.UserID, "CREATE_SAVINGS_GOAL", "savings_goal", goal.SavingGoalID, c.ClientIP(),
		map[string]interface{}{"goalName": goal.GoalName, "targetAmount": goal.TargetAmount})

	c.JSON(http.StatusCreated, goal)
}

// GetSavingsGoals handles listing every goal for a user.
// @Summary     List savings goals
// @Description Get all savings goals for a user
// @Tags        savings
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {array} models.SavingsGoal "Goals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{userId} [get]
func (h *SavingsHandler) GetSavingsGoals(c *gin.Context) {
	userID, err := pathParam(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.savingsService.GetUserSavingsGoals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// AllocateFunds handles adding money to a goal.
// @Summary     Allocate funds to a goal
// @Description Add allocationAmount to the goal's saved total. Optionally rename the goal or change its target.
// @Tags        savings
// @Accept      json
// @Produce     json
// @Param       savingGoalId path string               true "Saving goal ID"
// @Param       request      body AllocateFundsRequest true "Allocation"
// @Success     200 {object} models.SavingsGoal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid allocation amount"
// @Failure     404 {object} ErrorResponse "Saving goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{savingGoalId} [put]
func (h *SavingsHandler) AllocateFunds(c *gin.Context) {
	goalID, err := pathParam(c, "savingGoalId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AllocateFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := "Invalid allocation amount"
		if errors.Is(err, money.ErrTooPrecise) {
			msg = "Allocation amount must have at most two decimal places"
		}
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidAllocation, msg))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	update := services.GoalUpdate{GoalName: req.GoalName, Date: date}
	if req.TargetAmount != nil {
		update.TargetAmount = *req.TargetAmount
	}

	goal, err := h.savingsService.AllocateFunds(goalID, *req.AllocationAmount, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(goal.UserID, "ALLOCATE_FUNDS", "savings_goal", goal.SavingGoalID, c.ClientIP(),
		map[string]interface{}{"allocationAmount": *req.AllocationAmount, "initialAmount": goal.InitialAmount})

	c.JSON(http.StatusOK, goal)
}

// DeleteSavingsGoal handles deleting a goal.
// @Summary     Delete a savings goal
// @Description Permanently delete a savings goal
// @Tags        savings
// @Produce     json
// @Param       savingGoalId path string true "Saving goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     404 {object} ErrorResponse "Saving goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/{savingGoalId} [delete]
func (h *SavingsHandler) DeleteSavingsGoal(c *gin.Context) {
	goalID, err := pathParam(c, "savingGoalId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.savingsService.GetSavingsGoalByID(goalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.savingsService.DeleteSavingsGoal(goalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(goal.UserID, "DELETE_SAVINGS_GOAL", "savings_goal", goalID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Saving goal deleted successfully"})
}
