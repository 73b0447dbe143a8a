package analytics

import (
	"strings"

	"cropplan/entities"
)

// StatusFilter is a CropStatus or "all".
type StatusFilter string

const AllStatuses StatusFilter = "all"

func (f StatusFilter) Match(s entities.CropStatus) bool {
	return f == "" || f == AllStatuses || entities.CropStatus(f) == s
}

func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(AllStatuses) {
		return AllStatuses, nil
	}
	if !entities.CropStatus(s).Valid() {
		return "", invalid("status", "unknown status %q", s)
	}
	return StatusFilter(s), nil
}

type PlanSummary struct {
	Count           int                         `json:"count"`
	TotalAreaHa     float64                     `json:"total_area"`
	AverageCostHa   float64                     `json:"average_cost_per_hectare"`
	TotalInvestment float64                     `json:"total_investment"`
	ByStatus        map[entities.CropStatus]int `json:"by_status"`
}

func FilterPlans(plans []entities.CropPlan, f StatusFilter) []entities.CropPlan {
	out := make([]entities.CropPlan, 0, len(plans))
	for _, p := range plans {
		if f.Match(p.Status) {
			out = append(out, p)
		}
	}
	return out
}

// SummarizePlans totals the plans matching f. ByStatus always counts the
// whole input so the caller can render every status badge.
func SummarizePlans(plans []entities.CropPlan, f StatusFilter) PlanSummary {
	sum := PlanSummary{ByStatus: map[entities.CropStatus]int{
		entities.StatusPlanning:  0,
		entities.StatusActive:    0,
		entities.StatusCompleted: 0,
	}}
	for _, p := range plans {
		sum.ByStatus[p.Status]++
	}
	costs := 0.0
	for _, p := range FilterPlans(plans, f) {
		sum.Count++
		sum.TotalAreaHa += p.PlannedAreaHa
		sum.TotalInvestment += p.Investment()
		costs += p.CostPerHectare
	}
	if sum.Count > 0 {
		sum.AverageCostHa = costs / float64(sum.Count)
	}
	return sum
}

// ValidatePlan checks the user supplied fields of a new plan. Dates are
// checked by the CycleCalculator.
func ValidatePlan(p entities.CropPlan) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return invalid("name", "is required")
	case strings.TrimSpace(p.Field) == "":
		return invalid("field", "is required")
	case p.PlannedAreaHa <= 0:
		return invalid("planned_area", "must be > 0, got %v", p.PlannedAreaHa)
	case p.ExpectedYield < 0:
		return invalid("expected_yield", "must be >= 0, got %v", p.ExpectedYield)
	case p.CostPerHectare < 0:
		return invalid("cost_per_hectare", "must be >= 0, got %v", p.CostPerHectare)
	case p.Status != "" && !p.Status.Valid():
		return invalid("status", "unknown status %q", p.Status)
	}
	return nil
}

// CanTransition allows only forward moves along planning -> active ->
// completed. Staying put is allowed.
func CanTransition(from, to entities.CropStatus) error {
	if !to.Valid() {
		return invalid("status", "unknown status %q", to)
	}
	if to.Rank() < from.Rank() {
		return invalid("status", "cannot move from %s back to %s", from, to)
	}
	return nil
}
