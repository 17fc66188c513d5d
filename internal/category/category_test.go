package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "walletwise/internal/errors"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Housing", Normalize("housing"))
	assert.Equal(t, "Food & dining", Normalize("  food & dining "))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "Épargne", Normalize("épargne"))
}

func TestParse(t *testing.T) {
	c, err := Parse("  fOOd &   dining ")
	require.NoError(t, err)
	assert.Equal(t, FoodAndDining, c)

	_, err = Parse("Groceries")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func TestAllHasFifteenCategories(t *testing.T) {
	assert.Len(t, All, 15)
	for _, c := range All {
		assert.True(t, IsValid(string(c)), "expected %q to be valid", c)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		category string
		custom   string
		want     string
	}{
		{"plain", "Housing", "", "housing"},
		{"case and space insensitive", " Food  &  Dining ", "", "food & dining"},
		{"custom ignored for enum values", "Travel", "Japan", "travel"},
		{"other with custom", "Other", " Pet Care ", "other:pet care"},
		{"other without custom", "other", "", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.category, tt.custom))
		})
	}
}

func TestTransactionKeyMatchesBudgetKey(t *testing.T) {
	assert.Equal(t, Key("Food & Dining", ""), TransactionKey("food & dining"))
	assert.Equal(t, Key("Other", "Pets"), TransactionKey("pets"))
	assert.Equal(t, "", TransactionKey("  "))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Pets", Label("Other", " Pets "))
	assert.Equal(t, "Housing", Label("housing", "ignored"))
}

func TestChartBucket(t *testing.T) {
	assert.Equal(t, BucketFood, ChartBucket("Food & Dining"))
	assert.Equal(t, BucketHousing, ChartBucket("housing"))
	assert.Equal(t, BucketOther, ChartBucket("Travel"))
	assert.Equal(t, BucketOther, ChartBucket("Pets"))
	assert.Equal(t, BucketOther, ChartBucket(""))
	assert.Equal(t, BucketOther, Buckets[len(Buckets)-1])
}
