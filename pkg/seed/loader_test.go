package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadProfilesCSVWithAliases(t *testing.T) {
	p := writeFile(t, "profiles.csv", "\uFEFFCultura,Custo,Produtividade,Preço,Ciclo\n"+
		"Soja,3800,62,165,120\n"+
		"Milho,4200,145,\"75,5\",125\n"+
		",1,1,1,1\n"+
		"Trigo,abc,50,90,130\n")
	got, skipped, err := LoadProfiles(p)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Soja", got[0].CropName)
	assert.Equal(t, 120, got[0].CycleDays)
	assert.Equal(t, 75.5, got[1].CurrentPrice)
	require.Len(t, skipped, 2)
	assert.Equal(t, 4, skipped[0].Row)
	assert.Equal(t, 5, skipped[1].Row)
}

func TestLoadProfilesMissingColumns(t *testing.T) {
	p := writeFile(t, "profiles.csv", "crop,cost\nSoja,1\n")
	_, _, err := LoadProfiles(p)
	assert.ErrorContains(t, err, "missing required columns")
}

func TestLoadProfilesXLSX(t *testing.T) {
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	rows := [][]any{
		{"crop_name", "cost_per_hectare", "expected_yield", "current_price", "cycle"},
		{"Algodão", 6500, 320, 198, 160},
		{"Feijão", 4500, 30, 280, 90},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, x.SetSheetRow(sheet, cell, &r))
	}
	p := filepath.Join(t.TempDir(), "profiles.xlsx")
	require.NoError(t, x.SaveAs(p))

	got, skipped, err := LoadProfiles(p)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, got, 2)
	assert.Equal(t, "Algodão", got[0].CropName)
	assert.Equal(t, 6500.0, got[0].CostPerHectare)
	assert.Equal(t, 90, got[1].CycleDays)
}

func TestLoadProfilesYAML(t *testing.T) {
	p := writeFile(t, "profiles.yaml", `
profiles:
  - crop_name: Soja
    cost_per_hectare: 3800
    expected_yield: 62
    current_price: 165
    cycle: 120
  - crop_name: Ruim
    cost_per_hectare: -1
`)
	got, skipped, err := LoadProfiles(p)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 165.0, got[0].CurrentPrice)
	require.Len(t, skipped, 1)
	assert.Equal(t, 2, skipped[0].Row)
}

func TestLoadHistoryCSV(t *testing.T) {
	p := writeFile(t, "history.csv", "id,field_id,field_name,crop_name,season,yield_per_hectare,total_yield,planting_date,harvest_date\n"+
		"1,field1,Talhão 1,Soja,2023/2024,62,2480,2023-10-15,2024-02-10\n"+
		"2,field1,Talhão 1,Milho,2023/2024,-1,0,,\n"+
		"3,field2,Talhão 2,Soja,2022/2023,65,1950,2022-10-01,not-a-date\n"+
		"4,field2,Talhão 2,Soja,2022/2023,x,1950,,\n"+
		"5,field2,Talhão 2,Milho,2022/2023,135,4050,,\n"+
		"6,field2,Talhão 2,Milho,2021/2022,NaN,4050,,\n"+
		"5,field2,Talhão 2,Milho,2021/2022,130,3900,,\n")
	got, skipped, err := LoadHistory(p)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, 2024, got[0].HarvestDate.Year())
	assert.Equal(t, "5", got[1].ID)

	rows := map[int]bool{}
	for _, s := range skipped {
		rows[s.Row] = true
	}
	assert.Equal(t, map[int]bool{3: true, 4: true, 5: true, 7: true, 8: true}, rows)
}

func TestLoadHistoryYAML(t *testing.T) {
	p := writeFile(t, "history.yml", `
history:
  - id: a
    field_id: f1
    crop_name: Trigo
    season: "2021"
    yield_per_hectare: 50
  - id: b
    crop_name: Trigo
    yield_per_hectare: 40
`)
	got, skipped, err := LoadHistory(p)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
	require.Len(t, skipped, 1)
	assert.Equal(t, 2, skipped[0].Row)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	p := writeFile(t, "profiles.txt", "x")
	_, _, err := LoadProfiles(p)
	assert.ErrorContains(t, err, "unsupported")
}

func TestDefaultsAreValid(t *testing.T) {
	assert.Len(t, History(), 5)
	assert.Len(t, Profiles(), 5)
	assert.NotEmpty(t, CropPlans())
	for _, p := range Plots() {
		assert.NotEmpty(t, p.Coordinates, p.ID)
	}
}

func TestLoadHistoryGeneratesMissingIDs(t *testing.T) {
	p := writeFile(t, "history.csv", "field_id,crop_name,yield_per_hectare\n"+
		"T1,Soja,60\n"+
		"T1,Soja,62\n")
	got, skipped, err := LoadHistory(p)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, got, 2)
	assert.NotEmpty(t, got[0].ID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestParseNumSeparators(t *testing.T) {
	for in, want := range map[string]float64{
		"75,5":    75.5,
		"1.234,5": 1234.5,
		"1,234.5": 1234.5,
		"3800":    3800,
		"":        0,
	} {
		got, err := parseNum("v", in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseNum("v", "abc")
	assert.ErrorContains(t, err, "not a number")
}
