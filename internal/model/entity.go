package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// VolatilityClass selects the magnitude of the daily random perturbation.
type VolatilityClass string

const (
	International VolatilityClass = "international"
	Domestic      VolatilityClass = "domestic"
)

const (
	UnitInternational = "USD/盎司"
	UnitDomestic      = "元/克"
)

// Unit returns the display unit prices of the class are quoted in.
func (c VolatilityClass) Unit() string {
	if c == International {
		return UnitInternational
	}
	return UnitDomestic
}

// CurrencySymbol returns the symbol prices of the class are prefixed with.
func (c VolatilityClass) CurrencySymbol() string {
	if c == International {
		return "$"
	}
	return "¥"
}

// ParseVolatilityClass converts a config or query value into a VolatilityClass.
func ParseVolatilityClass(value string) (VolatilityClass, error) {
	switch VolatilityClass(value) {
	case International, Domestic:
		return VolatilityClass(value), nil
	default:
		return "", fmt.Errorf("unknown volatility class %q", value)
	}
}

// EntityKind tells the presentation layer which group an entity belongs to.
type EntityKind string

const (
	KindInternational EntityKind = "international"
	KindDomestic      EntityKind = "domestic"
	KindBank          EntityKind = "bank"
	KindShop          EntityKind = "shop"
)

// Trend is the direction of the day-over-day change.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// TrackedEntity is one priced subject with its generated history.
// CurrentPrice, PreviousPrice and Change are derived from Series and never set independently.
type TrackedEntity struct {
	Name            string
	Kind            EntityKind
	BasePrice       decimal.Decimal
	VolatilityClass VolatilityClass
	Series          PriceSeries
	CurrentPrice    decimal.Decimal
	PreviousPrice   decimal.Decimal
	Change          decimal.Decimal
}

// Trend returns TrendUp for a non-negative change, zero included.
func (that *TrackedEntity) Trend() Trend {
	if that.Change.IsNegative() {
		return TrendDown
	}
	return TrendUp
}

// Dashboard holds every tracked entity of a single build.
type Dashboard struct {
	InternationalGold TrackedEntity
	DomesticGold      TrackedEntity
	Banks             []TrackedEntity
	Shops             []TrackedEntity
	GeneratedAt       time.Time
}
