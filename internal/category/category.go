// Package category holds the fixed budget category enumeration and the
// normalised key shared by budgets and transactions. Spend is matched to a
// budget by comparing keys, never the raw strings users typed.
package category

import (
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "walletwise/internal/errors"
)

// Category is one of the fixed budget categories.
type Category string

const (
	Housing          Category = "Housing"
	FoodAndDining    Category = "Food & Dining"
	Transportation   Category = "Transportation"
	Utilities        Category = "Utilities"
	Entertainment    Category = "Entertainment"
	Shopping         Category = "Shopping"
	HealthAndFitness Category = "Health & Fitness"
	PersonalCare     Category = "Personal Care"
	Education        Category = "Education"
	Travel           Category = "Travel"
	DebtPayments     Category = "Debt Payments"
	Savings          Category = "Savings"
	GiftsAndDonation Category = "Gifts & Donations"
	Subscriptions    Category = "Subscriptions"
	Other            Category = "Other"
)

// All lists the categories in display order.
var All = []Category{
	Housing, FoodAndDining, Transportation, Utilities, Entertainment,
	Shopping, HealthAndFitness, PersonalCare, Education, Travel,
	DebtPayments, Savings, GiftsAndDonation, Subscriptions, Other,
}

var byKey = func() map[string]Category {
	m := make(map[string]Category, len(All))
	for _, c := range All {
		m[fold(string(c))] = c
	}
	return m
}()

// Normalize trims s and upper-cases its first letter, leaving the rest as typed.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Parse resolves s to its canonical category, ignoring case and surrounding
// whitespace.
func Parse(s string) (Category, error) {
	c, ok := byKey[fold(s)]
	if !ok {
		return "", apperrors.WithMessage(apperrors.ErrInvalidCategory, "Unsupported budget category: "+strings.TrimSpace(s))
	}
	return c, nil
}

// IsValid reports whether s names one of the fixed categories.
func IsValid(s string) bool {
	_, ok := byKey[fold(s)]
	return ok
}

// Key returns the normalised matching key for a category. For Other the
// custom label is folded into the key, so "Other"/"Pets" and "Other"/"Gym"
// are distinct budgets.
func Key(category, custom string) string {
	k := fold(category)
	if k == fold(string(Other)) {
		if c := fold(custom); c != "" {
			return k + ":" + c
		}
	}
	return k
}

// TransactionKey returns the key a free-form transaction category is stored
// under. Custom transaction categories that match a budget's custom label
// count towards that budget's "Other" entry.
func TransactionKey(raw string) string {
	k := fold(raw)
	if _, ok := byKey[k]; ok || k == "" {
		return k
	}
	return fold(string(Other)) + ":" + k
}

// Label returns the human label for a budget: the custom name for Other.
func Label(category, custom string) string {
	if fold(category) == fold(string(Other)) && strings.TrimSpace(custom) != "" {
		return strings.TrimSpace(custom)
	}
	return Normalize(category)
}

func fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
