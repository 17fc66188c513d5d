// Package uuid generates the identifiers used by WalletWise records.
package uuid

import (
	"strings"

	googleuuid "github.com/google/uuid"
)

// Business identifier prefixes, matching the ids clients have always generated.
const (
	PrefixBudget      = "BGT"
	PrefixTransaction = "TXN"
	PrefixSavingsGoal = "SVG"
	PrefixUser        = "USR"
)

// New generates a new UUIDv7. UUIDv7 is time-ordered and suitable for use as
// database primary keys.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the clock sequence cannot be read
		return googleuuid.New().String()
	}
	return id.String()
}

// NewPrefixed returns "<PREFIX>-<uuid>", e.g. "BGT-0190b5e2-...".
func NewPrefixed(prefix string) string {
	return strings.ToUpper(prefix) + "-" + New()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
