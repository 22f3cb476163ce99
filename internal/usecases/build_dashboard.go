package usecases

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"goldtracker/internal/model"
)

const (
	DefaultDays = 30

	InternationalBasePrice = 2000
	DomesticBasePrice      = 600

	BankBasePrice = 605
	BankBaseStep  = 2
	ShopBasePrice = 615
	ShopBaseStep  = 3

	InternationalGoldName = "国际金价"
	DomesticGoldName      = "国内金价"
)

var (
	BankNames = []string{"中国工商银行", "中国农业银行", "中国银行", "中国建设银行", "交通银行"}
	ShopNames = []string{"周大福", "周生生", "老凤祥", "中国黄金", "萃华金店"}
)

var ErrSeriesTooShort = errors.New("series too short to derive a change")

type Generator interface {
	Generate(basePrice float64, days int, class model.VolatilityClass, today time.Time) (model.PriceSeries, error)
}

type BuildDashboardUsecase struct {
	logger    *slog.Logger
	generator Generator
	clock     func() time.Time
	days      int
}

func NewBuildDashboardUsecase(logger *slog.Logger, generator Generator, clock func() time.Time, days int) *BuildDashboardUsecase {
	return &BuildDashboardUsecase{logger: logger.With("component", "build_dashboard"), generator: generator, clock: clock, days: days}
}

// BuildDashboard generates all twelve series from scratch and derives their current figures.
func (that *BuildDashboardUsecase) BuildDashboard() (*model.Dashboard, error) {
	log := that.logger.With("method", "BuildDashboard")

	now := that.clock()
	dashboard := &model.Dashboard{GeneratedAt: now}

	var err error
	dashboard.InternationalGold, err = that.track(InternationalGoldName, model.KindInternational, InternationalBasePrice, model.International, now)
	if err != nil {
		return nil, err
	}

	dashboard.DomesticGold, err = that.track(DomesticGoldName, model.KindDomestic, DomesticBasePrice, model.Domestic, now)
	if err != nil {
		return nil, err
	}

	dashboard.Banks = make([]model.TrackedEntity, len(BankNames))
	for i, name := range BankNames {
		dashboard.Banks[i], err = that.track(name, model.KindBank, BankBasePrice+float64(i*BankBaseStep), model.Domestic, now)
		if err != nil {
			return nil, err
		}
	}

	dashboard.Shops = make([]model.TrackedEntity, len(ShopNames))
	for i, name := range ShopNames {
		dashboard.Shops[i], err = that.track(name, model.KindShop, ShopBasePrice+float64(i*ShopBaseStep), model.Domestic, now)
		if err != nil {
			return nil, err
		}
	}

	log.Debug("dashboard built",
		"days", that.days,
		"international", dashboard.InternationalGold.CurrentPrice.StringFixed(2),
		"domestic", dashboard.DomesticGold.CurrentPrice.StringFixed(2),
	)

	return dashboard, nil
}

func (that *BuildDashboardUsecase) track(name string, kind model.EntityKind, basePrice float64, class model.VolatilityClass, today time.Time) (model.TrackedEntity, error) {
	points, err := that.generator.Generate(basePrice, that.days, class, today)
	if err != nil {
		return model.TrackedEntity{}, fmt.Errorf("generate series for %s: %w", name, err)
	}

	return Derive(name, kind, basePrice, class, points)
}

// Derive fills the current, previous and change figures from the last two points of the series.
func Derive(name string, kind model.EntityKind, basePrice float64, class model.VolatilityClass, points model.PriceSeries) (model.TrackedEntity, error) {
	if len(points) < 2 {
		return model.TrackedEntity{}, fmt.Errorf("%w: %s has %d points", ErrSeriesTooShort, name, len(points))
	}

	current := points.Last().Price
	previous := points.Previous().Price

	return model.TrackedEntity{
		Name:            name,
		Kind:            kind,
		BasePrice:       decimal.NewFromFloat(basePrice),
		VolatilityClass: class,
		Series:          points,
		CurrentPrice:    current,
		PreviousPrice:   previous,
		Change:          current.Sub(previous).Round(2),
	}, nil
}
