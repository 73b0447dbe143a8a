package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropplan/entities"
)

func TestSummarizePlans(t *testing.T) {
	plans := []entities.CropPlan{
		{Name: "Soja", PlannedAreaHa: 120, CostPerHectare: 3800, Status: entities.StatusPlanning},
		{Name: "Milho", PlannedAreaHa: 80, CostPerHectare: 4200, Status: entities.StatusPlanning},
		{Name: "Soja", PlannedAreaHa: 100, CostPerHectare: 3600, Status: entities.StatusActive},
	}

	all := SummarizePlans(plans, AllStatuses)
	assert.Equal(t, 3, all.Count)
	assert.Equal(t, 300.0, all.TotalAreaHa)
	assert.InDelta(t, 3866.67, all.AverageCostHa, 0.01)
	assert.Equal(t, 456000.0+336000+360000, all.TotalInvestment)

	active := SummarizePlans(plans, StatusFilter(entities.StatusActive))
	assert.Equal(t, 1, active.Count)
	assert.Equal(t, 360000.0, active.TotalInvestment)
	assert.Equal(t, 2, active.ByStatus[entities.StatusPlanning])

	none := SummarizePlans(plans, StatusFilter(entities.StatusCompleted))
	assert.Equal(t, 0.0, none.AverageCostHa)
	assert.Equal(t, 0, none.ByStatus[entities.StatusCompleted])
}

func TestParseStatusFilter(t *testing.T) {
	f, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, AllStatuses, f)
	f, err = ParseStatusFilter("Active")
	require.NoError(t, err)
	assert.True(t, f.Match(entities.StatusActive))
	assert.False(t, f.Match(entities.StatusPlanning))
	_, err = ParseStatusFilter("harvested")
	assert.True(t, IsValidation(err))
}

func TestValidatePlan(t *testing.T) {
	ok := entities.CropPlan{Name: "Soja", Field: "Talhão 1", PlannedAreaHa: 10}
	assert.NoError(t, ValidatePlan(ok))

	bad := []entities.CropPlan{
		{Field: "Talhão 1", PlannedAreaHa: 10},
		{Name: "Soja", PlannedAreaHa: 10},
		{Name: "Soja", Field: "T", PlannedAreaHa: 0},
		{Name: "Soja", Field: "T", PlannedAreaHa: 1, ExpectedYield: -1},
		{Name: "Soja", Field: "T", PlannedAreaHa: 1, CostPerHectare: -1},
		{Name: "Soja", Field: "T", PlannedAreaHa: 1, Status: "harvested"},
	}
	for i, p := range bad {
		assert.True(t, IsValidation(ValidatePlan(p)), "case %d", i)
	}
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(entities.StatusPlanning, entities.StatusActive))
	assert.NoError(t, CanTransition(entities.StatusActive, entities.StatusCompleted))
	assert.NoError(t, CanTransition(entities.StatusPlanning, entities.StatusCompleted))
	assert.NoError(t, CanTransition(entities.StatusActive, entities.StatusActive))
	assert.Error(t, CanTransition(entities.StatusCompleted, entities.StatusActive))
	assert.Error(t, CanTransition(entities.StatusActive, entities.StatusPlanning))
	assert.Error(t, CanTransition(entities.StatusActive, "archived"))
}
