package analytics

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"cropplan/entities"
)

var hundred = decimal.NewFromInt(100)

type SimulationResult struct {
	CropName      string              `json:"crop_name"`
	Area          decimal.Decimal     `json:"area"`
	CycleDays     int                 `json:"cycle"`
	TotalCost     decimal.Decimal     `json:"total_cost"`
	TotalRevenue  decimal.Decimal     `json:"total_revenue"`
	Profit        decimal.Decimal     `json:"profit"`
	MarginPercent decimal.NullDecimal `json:"margin_percent"` // null when revenue is 0
	Warnings      []Warning           `json:"warnings,omitempty"`
	Error         string              `json:"error,omitempty"`
}

// MarginDefined reports whether MarginPercent carries a value.
func (r SimulationResult) MarginDefined() bool { return r.MarginPercent.Valid }

type Comparison struct {
	Area    decimal.Decimal    `json:"area"`
	Results []SimulationResult `json:"results"`
	Failed  int                `json:"failed"`
}

// ValidateArea rejects zero, negative and non-finite areas.
func ValidateArea(area float64) error {
	if math.IsNaN(area) || math.IsInf(area, 0) {
		return invalid("area", "must be a finite number")
	}
	if area <= 0 {
		return invalid("area", "must be > 0, got %v", area)
	}
	return nil
}

func ValidateProfile(p entities.CropSimulationProfile) error {
	check := func(field string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(field, "must be a finite number")
		}
		if v < 0 {
			return invalid(field, "must be >= 0, got %v", v)
		}
		return nil
	}
	if strings.TrimSpace(p.CropName) == "" {
		return invalid("crop_name", "is required")
	}
	if err := check("cost_per_hectare", p.CostPerHectare); err != nil {
		return err
	}
	if err := check("expected_yield", p.ExpectedYield); err != nil {
		return err
	}
	return check("current_price", p.CurrentPrice)
}

// Simulate computes cost, revenue, profit and margin of one profile over
// area hectares. The margin is left undefined, with a warning, when revenue
// is zero.
func Simulate(p entities.CropSimulationProfile, area float64) (SimulationResult, error) {
	if err := ValidateArea(area); err != nil {
		return SimulationResult{}, err
	}
	if err := ValidateProfile(p); err != nil {
		return SimulationResult{}, err
	}
	a := decimal.NewFromFloat(area)
	res := SimulationResult{CropName: p.CropName, Area: a, CycleDays: p.CycleDays}
	res.TotalCost = decimal.NewFromFloat(p.CostPerHectare).Mul(a)
	res.TotalRevenue = decimal.NewFromFloat(p.ExpectedYield).Mul(decimal.NewFromFloat(p.CurrentPrice)).Mul(a)
	res.Profit = res.TotalRevenue.Sub(res.TotalCost)
	if res.TotalRevenue.IsZero() {
		res.Warnings = append(res.Warnings, Warning{
			Code:    WarnUndefinedMargin,
			Message: "total revenue is zero; margin is undefined",
		})
		return res, nil
	}
	res.MarginPercent = decimal.NewNullDecimal(res.Profit.Div(res.TotalRevenue).Mul(hundred))
	return res, nil
}

// CompareAll simulates every profile at the same area. The output has one
// entry per profile, in input order; a profile that fails validation gets
// an entry carrying the error instead of aborting the batch.
func CompareAll(profiles []entities.CropSimulationProfile, area float64) (Comparison, error) {
	if len(profiles) == 0 {
		return Comparison{}, invalid("profiles", "at least one profile is required")
	}
	if err := ValidateArea(area); err != nil {
		return Comparison{}, err
	}
	cmp := Comparison{Area: decimal.NewFromFloat(area), Results: make([]SimulationResult, 0, len(profiles))}
	for _, p := range profiles {
		res, err := Simulate(p, area)
		if err != nil {
			cmp.Failed++
			res = SimulationResult{CropName: p.CropName, Area: cmp.Area, CycleDays: p.CycleDays, Error: err.Error()}
		}
		cmp.Results = append(cmp.Results, res)
	}
	return cmp, nil
}
