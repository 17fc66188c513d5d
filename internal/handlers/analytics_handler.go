package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"walletwise/internal/services"
)

// AnalyticsHandler serves the period-scoped metrics behind the budget page,
// the trend charts and the dashboard.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetBudgetSummary handles the budget summary for one period.
// @Summary     Budget summary
// @Description Total budgeted, spent and remaining for the week, month or year containing date, with per-category progress and alerts
// @Tags        analytics
// @Produce     json
// @Param       userId path  string true  "User ID"
// @Param       period query string false "week, month or year (default month)"
// @Param       date   query string false "Reference date (default now)"
// @Success     200 {object} analytics.BudgetSummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid period or date"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{userId}/summary [get]
func (h *AnalyticsHandler) GetBudgetSummary(c *gin.Context) {
	userID, err := pathParam(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	ref, p, err := parseReference(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.GetBudgetSummary(c.Request.Context(), userID, ref, p)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetTrends handles the spending and cash flow chart series.
// @Summary     Spending trends
// @Description Spending per category and income vs expenses over the last 7 days, 6 months or 3 years
// @Tags        analytics
// @Produce     json
// @Param       userId path  string true  "User ID"
// @Param       period query string false "week, month or year (default month)"
// @Param       date   query string false "Reference date (default now)"
// @Success     200 {object} services.Trends "Chart series"
// @Failure     400 {object} ErrorResponse "Invalid period or date"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{userId}/trends [get]
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	userID, err := pathParam(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	ref, p, err := parseReference(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trends, err := h.analyticsService.GetTrends(c.Request.Context(), userID, ref, p)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// GetDashboard handles the overview page.
// @Summary     Dashboard
// @Description Budget summary, cash flow, category breakdown, trends and savings overview for one period
// @Tags        analytics
// @Produce     json
// @Param       userId path  string true  "User ID"
// @Param       period query string false "week, month or year (default month)"
// @Param       date   query string false "Reference date (default now)"
// @Success     200 {object} analytics.Dashboard "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid period or date"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/{userId} [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	userID, err := pathParam(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	ref, p, err := parseReference(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.analyticsService.GetDashboard(c.Request.Context(), userID, ref, p)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
