// Package money holds the Cents type used for every stored amount.
//
// Amounts are kept as whole cents so sums and differences are exact. On the
// wire they travel as decimal dollars: 25.5 in a request body is 2550 cents,
// and 2550 cents is written back as 25.5.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned for input that is not a decimal number.
	ErrInvalidAmount = errors.New("amount is not a valid number")
	// ErrTooPrecise is returned for amounts with fractions of a cent.
	ErrTooPrecise = errors.New("amount has more than 2 decimal places")
	// ErrOutOfRange is returned for amounts that do not fit in int64 cents.
	ErrOutOfRange = errors.New("amount is out of range")
)

var (
	minCents = decimal.NewFromInt(math.MinInt64)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// Cents is an amount of money in hundredths of a dollar.
type Cents int64

// FromDecimal converts a dollar amount to cents. Fractions of a cent and
// values beyond the int64 range are rejected rather than rounded or wrapped.
func FromDecimal(d decimal.Decimal) (Cents, error) {
	if !d.Equal(d.Truncate(2)) {
		return 0, ErrTooPrecise
	}
	cents := d.Shift(2)
	if cents.LessThan(minCents) || cents.GreaterThan(maxCents) {
		return 0, ErrOutOfRange
	}
	return Cents(cents.IntPart()), nil
}

// Parse reads a dollar string such as "25.50", "$1,200" or "-3".
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if neg {
		s = "-" + s
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d)
}

// Decimal returns the amount in dollars.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats the amount as dollars with two decimals, e.g. "-12.30".
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// MarshalJSON writes the amount as a plain JSON number of dollars.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.Decimal().String()), nil
}

// UnmarshalJSON accepts a JSON number of dollars. Strings are rejected; null
// leaves the value untouched.
func (c *Cents) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}
	if raw == "" || raw[0] == '"' {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	v, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
