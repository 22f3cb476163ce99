package suite

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"goldtracker/internal/model"
)

// GetDateTime returns a time.Time object from a string.
// Example: GetDateTime("2025-11-07")
func GetDateTime(t *testing.T, incomingDateTime string) time.Time {
	t.Helper()

	dateTime, err := time.Parse(model.DateLayout, incomingDateTime)
	if err != nil {
		t.Fatalf("could not parse date time: %v", err)
	}
	return dateTime
}

// Decimal parses a decimal literal or fails the test.
func Decimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("could not parse decimal: %v", err)
	}
	return d
}
