package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"goldtracker/internal/model"
)

type PricePointResponse struct {
	Date  string      `json:"date"`
	Price json.Number `json:"price"`
}

type EntityResponse struct {
	Name            string               `json:"name"`
	Kind            model.EntityKind     `json:"kind"`
	BasePrice       json.Number          `json:"basePrice"`
	VolatilityClass string               `json:"volatilityClass"`
	CurrentPrice    json.Number          `json:"currentPrice"`
	PreviousPrice   json.Number          `json:"previousPrice"`
	Change          json.Number          `json:"change"`
	Trend           model.Trend          `json:"trend"`
	Unit            string               `json:"unit"`
	Series          []PricePointResponse `json:"series"`
}

type DashboardResponse struct {
	GeneratedAt       time.Time        `json:"generatedAt"`
	InternationalGold EntityResponse   `json:"internationalGold"`
	DomesticGold      EntityResponse   `json:"domesticGold"`
	Banks             []EntityResponse `json:"banks"`
	Shops             []EntityResponse `json:"shops"`
}

type SeriesResponse struct {
	Series []PricePointResponse `json:"series"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Builds int64  `json:"builds"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewDashboardResponse maps a dashboard build to its JSON shape.
func NewDashboardResponse(dashboard *model.Dashboard) *DashboardResponse {
	resp := &DashboardResponse{
		GeneratedAt:       dashboard.GeneratedAt,
		InternationalGold: newEntityResponse(&dashboard.InternationalGold),
		DomesticGold:      newEntityResponse(&dashboard.DomesticGold),
		Banks:             make([]EntityResponse, len(dashboard.Banks)),
		Shops:             make([]EntityResponse, len(dashboard.Shops)),
	}

	for i := range dashboard.Banks {
		resp.Banks[i] = newEntityResponse(&dashboard.Banks[i])
	}
	for i := range dashboard.Shops {
		resp.Shops[i] = newEntityResponse(&dashboard.Shops[i])
	}

	return resp
}

func newEntityResponse(entity *model.TrackedEntity) EntityResponse {
	return EntityResponse{
		Name:            entity.Name,
		Kind:            entity.Kind,
		BasePrice:       fixed(entity.BasePrice),
		VolatilityClass: string(entity.VolatilityClass),
		CurrentPrice:    fixed(entity.CurrentPrice),
		PreviousPrice:   fixed(entity.PreviousPrice),
		Change:          fixed(entity.Change),
		Trend:           entity.Trend(),
		Unit:            entity.VolatilityClass.Unit(),
		Series:          newSeriesResponse(entity.Series),
	}
}

func newSeriesResponse(points model.PriceSeries) []PricePointResponse {
	resp := make([]PricePointResponse, len(points))
	for i, p := range points {
		resp[i] = PricePointResponse{Date: p.DateString(), Price: fixed(p.Price)}
	}
	return resp
}

func fixed(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
