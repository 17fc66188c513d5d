package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"walletwise/internal/analytics"
	apperrors "walletwise/internal/errors"
	"walletwise/internal/models"
	"walletwise/internal/period"
)

// analyticsService loads a user's records and hands them to the pure
// aggregation functions in internal/analytics.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// records is everything the aggregations need for one user.
type records struct {
	budgets      []models.Budget
	transactions []models.Transaction
	goals        []models.SavingsGoal
}

// load fetches the requested collections concurrently. Filtering by period
// happens in memory so every figure is computed from the same snapshot.
func (s *analyticsService) load(ctx context.Context, userID string, withBudgets, withGoals bool) (*records, error) {
	r := &records{
		budgets:      []models.Budget{},
		transactions: []models.Transaction{},
		goals:        []models.SavingsGoal{},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(ctx).Where("user_id = ?", userID).Order("date ASC").Find(&r.transactions).Error
	})
	if withBudgets {
		g.Go(func() error {
			return s.db.WithContext(ctx).Where("user_id = ?", userID).Order("date ASC").Find(&r.budgets).Error
		})
	}
	if withGoals {
		g.Go(func() error {
			return s.db.WithContext(ctx).Where("user_id = ?", userID).Order("date ASC").Find(&r.goals).Error
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return r, nil
}

// GetBudgetSummary computes budgeted, spent and remaining totals for the
// period containing ref.
func (s *analyticsService) GetBudgetSummary(ctx context.Context, userID string, ref time.Time, p period.Period) (*analytics.BudgetSummary, error) {
	if !p.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}
	r, err := s.load(ctx, userID, true, false)
	if err != nil {
		return nil, err
	}

	summary := analytics.SummarizeBudgets(r.budgets, r.transactions, ref, p)
	return &summary, nil
}

// GetTrends builds the spending and cash flow chart series for the trend
// window of p.
func (s *analyticsService) GetTrends(ctx context.Context, userID string, ref time.Time, p period.Period) (*Trends, error) {
	if !p.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}
	r, err := s.load(ctx, userID, false, false)
	if err != nil {
		return nil, err
	}

	return &Trends{
		Period:   p,
		Window:   period.TrendWindow(ref, p),
		Spending: analytics.SpendingSeries(r.transactions, ref, p),
		CashFlow: analytics.CashFlowSeries(r.transactions, ref, p),
	}, nil
}

// GetDashboard computes every overview figure for the period containing ref.
func (s *analyticsService) GetDashboard(ctx context.Context, userID string, ref time.Time, p period.Period) (*analytics.Dashboard, error) {
	if !p.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}
	r, err := s.load(ctx, userID, true, true)
	if err != nil {
		return nil, err
	}

	d := analytics.BuildDashboard(r.budgets, r.transactions, r.goals, ref, p)
	return &d, nil
}
