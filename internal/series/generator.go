package series

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"goldtracker/internal/model"
)

const (
	// MinDays is the shortest series that still has a previous point.
	MinDays = 2
	// MaxDays caps the history at ten years.
	MaxDays = 3650
)

var (
	ErrTooFewDays             = errors.New("series needs at least two days")
	ErrTooManyDays            = errors.New("series is longer than the supported history")
	ErrInvalidBasePrice       = errors.New("base price must be finite")
	ErrUnknownVolatilityClass = errors.New("unknown volatility class")
)

// Amplitude returns the width of the uniform daily perturbation for the class.
func Amplitude(class model.VolatilityClass) (float64, error) {
	switch class {
	case model.International:
		return 20, nil
	case model.Domestic:
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVolatilityClass, class)
	}
}

type Generator struct {
	random RandomSource
}

func NewGenerator(random RandomSource) *Generator {
	return &Generator{random: random}
}

// Generate builds a random walk of days points seeded at basePrice and ending on today.
// Each step adds (u - 0.5) * amplitude to the unrounded running price; emitted prices are rounded to 2 digits.
func (that *Generator) Generate(basePrice float64, days int, class model.VolatilityClass, today time.Time) (model.PriceSeries, error) {
	if days < MinDays {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewDays, days)
	}

	if days > MaxDays {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyDays, days, MaxDays)
	}

	if math.IsNaN(basePrice) || math.IsInf(basePrice, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBasePrice, basePrice)
	}

	amplitude, err := Amplitude(class)
	if err != nil {
		return nil, err
	}

	end := StartOfDay(today)
	currentPrice := basePrice

	points := make(model.PriceSeries, 0, days)
	for i := days - 1; i >= 0; i-- {
		currentPrice += (that.random.Float64() - 0.5) * amplitude

		points = append(points, model.PricePoint{
			Date:  end.AddDate(0, 0, -i),
			Price: decimal.NewFromFloat(currentPrice).Round(2),
		})
	}

	return points, nil
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
