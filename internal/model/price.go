package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO-8601 day layout used for price points.
const DateLayout = "2006-01-02"

// PricePoint describes a gold price on a calendar day.
// Price is always rounded to 2 fractional digits.
type PricePoint struct {
	Date  time.Time
	Price decimal.Decimal
}

// DateString returns the date in DateLayout.
func (p PricePoint) DateString() string {
	return p.Date.Format(DateLayout)
}

// PriceSeries is a run of consecutive days, oldest first.
type PriceSeries []PricePoint

// Last returns the newest point. The series must not be empty.
func (s PriceSeries) Last() PricePoint {
	return s[len(s)-1]
}

// Previous returns the point before the newest one. The series must have at least 2 points.
func (s PriceSeries) Previous() PricePoint {
	return s[len(s)-2]
}
