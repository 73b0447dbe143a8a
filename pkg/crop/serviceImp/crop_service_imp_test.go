package serviceImp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cropplan/database"
	"cropplan/entities"
	"cropplan/pkg/analytics"
	"cropplan/pkg/crop/repositoryImp"
	"cropplan/pkg/crop/service"
)

func newSvc(t *testing.T, o analytics.Ordering) service.CropService {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "crop.db"))
	require.NoError(t, err)
	return NewCropService(repositoryImp.New(db), analytics.NewCycleCalculator(o), zerolog.Nop())
}

func sojaPlan() service.NewPlan {
	return service.NewPlan{
		Name: "Soja", Variety: "BMX Potência", PlannedAreaHa: 120, ExpectedYield: 62, CostPerHectare: 3800,
		PlantingDate: "2025-10-15", HarvestDate: "2026-02-10", Field: "Talhão 1, 2 e 3",
	}
}

func TestCreateComputesCycleAndDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t, analytics.OrderingStrict)

	p, err := svc.Create(ctx, sojaPlan())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 118, p.CycleDays)
	assert.Equal(t, entities.StatusPlanning, p.Status)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 118, got.CycleDays)
	assert.Equal(t, "Talhão 1, 2 e 3", got.Field)
}

func TestCreateRejectsInvalidPlans(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t, analytics.OrderingStrict)

	cases := map[string]func(*service.NewPlan){
		"name":          func(p *service.NewPlan) { p.Name = " " },
		"planned_area":  func(p *service.NewPlan) { p.PlannedAreaHa = 0 },
		"field":         func(p *service.NewPlan) { p.Field = "" },
		"planting_date": func(p *service.NewPlan) { p.PlantingDate = "" },
		"harvest_date":  func(p *service.NewPlan) { p.HarvestDate = "2025-01-01" },
	}
	for field, mutate := range cases {
		in := sojaPlan()
		mutate(&in)
		_, err := svc.Create(ctx, in)
		var ve *analytics.ValidationError
		require.ErrorAs(t, err, &ve, field)
		assert.Equal(t, field, ve.Field)
	}
	all, err := svc.List(ctx, analytics.AllStatuses)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLenientOrderingAcceptsSwappedDates(t *testing.T) {
	svc := newSvc(t, analytics.OrderingLenient)
	in := sojaPlan()
	in.PlantingDate, in.HarvestDate = in.HarvestDate, in.PlantingDate
	p, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 118, p.CycleDays)
}

func TestUpdateDatesRecomputesCycle(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t, analytics.OrderingStrict)
	p, err := svc.Create(ctx, sojaPlan())
	require.NoError(t, err)

	p, err = svc.UpdateDates(ctx, p.ID, "2025-10-15", "2025-10-25")
	require.NoError(t, err)
	assert.Equal(t, 10, p.CycleDays)

	_, err = svc.UpdateDates(ctx, p.ID, "2025-10-15", "nope")
	assert.True(t, analytics.IsValidation(err))
	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.CycleDays)

	_, err = svc.UpdateDates(ctx, "missing", "2025-10-15", "2025-10-25")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTransitionIsForwardOnly(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t, analytics.OrderingStrict)
	p, err := svc.Create(ctx, sojaPlan())
	require.NoError(t, err)

	p, err = svc.Transition(ctx, p.ID, entities.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusActive, p.Status)

	_, err = svc.Transition(ctx, p.ID, entities.StatusPlanning)
	assert.True(t, analytics.IsValidation(err))

	p, err = svc.Transition(ctx, p.ID, entities.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, p.Status)
}

func TestListAndSummaryFilterByStatus(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t, analytics.OrderingStrict)
	a, err := svc.Create(ctx, sojaPlan())
	require.NoError(t, err)
	milho := sojaPlan()
	milho.Name, milho.PlannedAreaHa, milho.CostPerHectare = "Milho", 80, 4200
	b, err := svc.Create(ctx, milho)
	require.NoError(t, err)
	_, err = svc.Transition(ctx, b.ID, entities.StatusActive)
	require.NoError(t, err)

	all, err := svc.List(ctx, analytics.AllStatuses)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)

	planning, err := svc.List(ctx, analytics.StatusFilter(entities.StatusPlanning))
	require.NoError(t, err)
	require.Len(t, planning, 1)
	assert.Equal(t, "Soja", planning[0].Name)

	sum, err := svc.Summary(ctx, analytics.AllStatuses)
	require.NoError(t, err)
	assert.Equal(t, 200.0, sum.TotalAreaHa)
	assert.Equal(t, 4000.0, sum.AverageCostHa)
	assert.Equal(t, 120*3800.0+80*4200.0, sum.TotalInvestment)
	assert.Equal(t, 1, sum.ByStatus[entities.StatusActive])
}

func TestDeleteNotImplemented(t *testing.T) {
	svc := newSvc(t, analytics.OrderingStrict)
	assert.ErrorIs(t, svc.Delete(context.Background(), "1"), analytics.ErrNotImplemented)
}

func TestCycleLabel(t *testing.T) {
	svc := newSvc(t, analytics.OrderingStrict)
	l, err := svc.CycleLabel("Soja Verão", "")
	require.NoError(t, err)
	assert.Equal(t, "Soja Verão - 2025/2026", l.Label)

	l, err = svc.CycleLabel("Milho", "2026/2027")
	require.NoError(t, err)
	assert.Equal(t, "2026/2027", l.Season)

	_, err = svc.CycleLabel("  ", "2026/2027")
	assert.True(t, analytics.IsValidation(err))
}
