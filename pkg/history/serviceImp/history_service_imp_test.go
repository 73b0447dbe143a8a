package serviceImp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropplan/database"
	"cropplan/pkg/analytics"
	"cropplan/pkg/history/repositoryImp"
	"cropplan/pkg/history/service"
)

func seeded(t *testing.T) service.HistoryService {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	svc := NewHistoryService(repositoryImp.New(db), zerolog.Nop())
	rows := []service.NewRecord{
		{FieldID: "field1", FieldName: "Talhão 1", CropName: "Soja", Season: "2023/2024", YieldPerHectare: 62, TotalYield: 2480},
		{FieldID: "field1", FieldName: "Talhão 1", CropName: "Milho", Season: "2023/2024", YieldPerHectare: 140, TotalYield: 5600},
		{FieldID: "field2", FieldName: "Talhão 2", CropName: "Soja", Season: "2023/2024", YieldPerHectare: 58, TotalYield: 1740},
		{FieldID: "field2", FieldName: "Talhão 2", CropName: "Soja", Season: "2022/2023", YieldPerHectare: 65, TotalYield: 1950},
		{FieldID: "field2", FieldName: "Talhão 2", CropName: "Milho", Season: "2022/2023", YieldPerHectare: 135, TotalYield: 4050},
	}
	for _, r := range rows {
		_, err := svc.Create(context.Background(), r)
		require.NoError(t, err)
	}
	return svc
}

func TestHistoryListKeepsInsertionOrder(t *testing.T) {
	svc := seeded(t)
	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, 62.0, all[0].YieldPerHectare)
	assert.Equal(t, 135.0, all[4].YieldPerHectare)

	f2, err := svc.List(context.Background(), "field2")
	require.NoError(t, err)
	assert.Len(t, f2, 3)
}

func TestHistoryAggregateByCrop(t *testing.T) {
	svc := seeded(t)
	rep, err := svc.Aggregate(context.Background(), analytics.AggregateOptions{By: analytics.ByCrop})
	require.NoError(t, err)
	require.Len(t, rep.Groups, 2)
	soja := rep.Groups[0]
	assert.Equal(t, "Soja", soja.Key)
	assert.InDelta(t, 61.6667, soja.Stats.AverageYield, 1e-4)
	assert.Equal(t, "2022/2023", soja.Stats.MaxSeason)
	assert.Equal(t, 6170.0, soja.Stats.TotalYield)
}

func TestHistoryCreateValidates(t *testing.T) {
	svc := seeded(t)
	_, err := svc.Create(context.Background(), service.NewRecord{FieldID: "f", CropName: "Soja", YieldPerHectare: -1})
	assert.True(t, analytics.IsValidation(err))
	_, err = svc.Create(context.Background(), service.NewRecord{FieldID: "f", CropName: "Soja", HarvestDate: "31/12/2024"})
	assert.True(t, analytics.IsValidation(err))
}

func TestHistoryFields(t *testing.T) {
	svc := seeded(t)
	fields, err := svc.Fields(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []service.FieldOption{{ID: "field1", Name: "Talhão 1"}, {ID: "field2", Name: "Talhão 2"}}, fields)
}
