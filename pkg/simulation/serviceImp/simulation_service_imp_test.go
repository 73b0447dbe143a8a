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
	"cropplan/pkg/seed"
	"cropplan/pkg/simulation/repositoryImp"
	"cropplan/pkg/simulation/service"
)

func newSvc(t *testing.T) service.SimulationService {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "sim.db"))
	require.NoError(t, err)
	svc := NewSimulationService(repositoryImp.New(db), 50, zerolog.Nop())
	for _, p := range seed.Profiles() {
		_, err := svc.UpsertProfile(context.Background(), p)
		require.NoError(t, err)
	}
	return svc
}

func area(v float64) *float64 { return &v }

func TestSimulateUsesDefaultArea(t *testing.T) {
	svc := newSvc(t)
	res, err := svc.Simulate(context.Background(), "Soja", nil)
	require.NoError(t, err)
	assert.Equal(t, "50", res.Area.String())
	assert.Equal(t, "321500", res.Profit.String())

	res, err = svc.Simulate(context.Background(), "Soja", area(10))
	require.NoError(t, err)
	assert.Equal(t, "38000", res.TotalCost.String())
}

func TestSimulateErrors(t *testing.T) {
	svc := newSvc(t)
	_, err := svc.Simulate(context.Background(), "Soja", area(0))
	assert.True(t, analytics.IsValidation(err))
	_, err = svc.Simulate(context.Background(), "Arroz", nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpsertKeepsOrderAndUpdates(t *testing.T) {
	svc := newSvc(t)
	ctx := context.Background()
	_, err := svc.UpsertProfile(ctx, entities.CropSimulationProfile{CropName: "Soja", CostPerHectare: 3800, ExpectedYield: 62, CurrentPrice: 0})
	require.NoError(t, err)

	ps, err := svc.Profiles(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 5)
	assert.Equal(t, "Soja", ps[0].CropName)
	assert.Equal(t, 0.0, ps[0].CurrentPrice)

	res, err := svc.Simulate(ctx, "Soja", nil)
	require.NoError(t, err)
	assert.False(t, res.MarginDefined())

	_, err = svc.UpsertProfile(ctx, entities.CropSimulationProfile{CropName: "Soja", CostPerHectare: -1})
	assert.True(t, analytics.IsValidation(err))
}

func TestCompareStoredAndNamed(t *testing.T) {
	svc := newSvc(t)
	ctx := context.Background()

	cmp, err := svc.Compare(ctx, nil)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 5)
	assert.Equal(t, "Soja", cmp.Results[0].CropName)
	assert.Equal(t, "Feijão", cmp.Results[4].CropName)

	cmp, err = svc.Compare(ctx, area(10), "Milho", "Arroz", "Soja")
	require.NoError(t, err)
	require.Len(t, cmp.Results, 3)
	assert.Equal(t, "Milho", cmp.Results[0].CropName)
	assert.Contains(t, cmp.Results[1].Error, "unknown crop")
	assert.Equal(t, 1, cmp.Failed)
	assert.Equal(t, "Soja", cmp.Results[2].CropName)

	_, err = svc.Compare(ctx, area(-1))
	assert.True(t, analytics.IsValidation(err))
}

func TestCompareInlineProfiles(t *testing.T) {
	svc := newSvc(t)
	cmp, err := svc.CompareProfiles([]entities.CropSimulationProfile{
		{CropName: "A", CostPerHectare: 100, ExpectedYield: 10, CurrentPrice: 20},
		{CropName: "B", CostPerHectare: -5},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp.Failed)
	assert.Equal(t, "5000", cmp.Results[0].TotalCost.String())
}
