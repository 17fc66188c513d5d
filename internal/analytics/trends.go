package analytics

import (
	"math"
	"sort"
	"time"

	"walletwise/internal/category"
	"walletwise/internal/models"
	"walletwise/internal/money"
	"walletwise/internal/period"
)

// SpendingPoint is one step of the spending-by-category trend chart. Totals
// always carries every chart bucket, zero-filled.
type SpendingPoint struct {
	Name   string                          `json:"name"`
	Start  time.Time                       `json:"start"`
	Totals map[category.Bucket]money.Cents `json:"totals"`
}

// CashFlowPoint is one step of the income-vs-expenses chart.
type CashFlowPoint struct {
	Name     string      `json:"name"`
	Start    time.Time   `json:"start"`
	Income   money.Cents `json:"income"`
	Expenses money.Cents `json:"expenses"`
}

// BucketTotal is one slice of the spending-by-category pie chart.
type BucketTotal struct {
	Name  category.Bucket `json:"name"`
	Value money.Cents     `json:"value"`
}

// CashFlow is income against expenses for one period.
type CashFlow struct {
	Period   period.Period `json:"period"`
	Window   period.Window `json:"window"`
	Income   money.Cents   `json:"income"`
	Expenses money.Cents   `json:"expenses"`
	Net      money.Cents   `json:"net"`
	// SavingsRate is Net as a percentage of Income, rounded to one decimal.
	// It is 0 when there is no income.
	SavingsRate float64 `json:"savingsRate"`
}

// SpendingSeries groups expenses inside the trend window for p into chart
// steps (weekdays, months or years) and the fixed chart buckets. Steps are
// returned oldest first.
func SpendingSeries(transactions []models.Transaction, ref time.Time, p period.Period) []SpendingPoint {
	slots := period.Slots(period.TrendWindow(ref, p), p)
	points := make([]SpendingPoint, len(slots))
	for i, s := range slots {
		points[i] = SpendingPoint{Name: s.Label, Start: s.Start, Totals: emptyBuckets()}
	}

	for _, t := range Expenses(transactions) {
		if i := slotIndex(slots, t.Date); i >= 0 {
			points[i].Totals[category.ChartBucket(t.Category)] += t.Amount
		}
	}
	return points
}

// CashFlowSeries sums income and expenses per chart step over the trend
// window for p.
func CashFlowSeries(transactions []models.Transaction, ref time.Time, p period.Period) []CashFlowPoint {
	slots := period.Slots(period.TrendWindow(ref, p), p)
	points := make([]CashFlowPoint, len(slots))
	for i, s := range slots {
		points[i] = CashFlowPoint{Name: s.Label, Start: s.Start}
	}

	for _, t := range transactions {
		i := slotIndex(slots, t.Date)
		if i < 0 {
			continue
		}
		if t.IsExpense() {
			points[i].Expenses += t.Amount
		} else {
			points[i].Income += t.Amount
		}
	}
	return points
}

// CategoryBreakdown totals in-period expenses per chart bucket, in legend
// order.
func CategoryBreakdown(transactions []models.Transaction, ref time.Time, p period.Period) []BucketTotal {
	totals := emptyBuckets()
	for _, t := range Expenses(period.Filter(transactions, period.Current(ref, p))) {
		totals[category.ChartBucket(t.Category)] += t.Amount
	}

	out := make([]BucketTotal, 0, len(category.Buckets))
	for _, b := range category.Buckets {
		out = append(out, BucketTotal{Name: b, Value: totals[b]})
	}
	return out
}

// SummarizeCashFlow reports income, expenses and net savings for the period
// containing ref.
func SummarizeCashFlow(transactions []models.Transaction, ref time.Time, p period.Period) CashFlow {
	w := period.Current(ref, p)
	in := period.Filter(transactions, w)

	cf := CashFlow{
		Period:   p,
		Window:   w,
		Income:   SumAmounts(Income(in)),
		Expenses: SumAmounts(Expenses(in)),
	}
	cf.Net = cf.Income - cf.Expenses
	if cf.Income > 0 {
		cf.SavingsRate = math.Round(float64(cf.Net)/float64(cf.Income)*1000) / 10
	}
	return cf
}

func emptyBuckets() map[category.Bucket]money.Cents {
	m := make(map[category.Bucket]money.Cents, len(category.Buckets))
	for _, b := range category.Buckets {
		m[b] = 0
	}
	return m
}

// slotIndex finds the slot containing t, or -1. Slots are contiguous and
// sorted, so the first slot ending at or after t is the only candidate.
func slotIndex(slots []period.Slot, t time.Time) int {
	i := sort.Search(len(slots), func(i int) bool { return !slots[i].End.Before(t) })
	if i < len(slots) && slots[i].Contains(t) {
		return i
	}
	return -1
}
