package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"cropplan/entities"
	"cropplan/pkg/analytics"
)

// RowError reports a seed row that was skipped. Row is 1-based and counts
// the header.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func (e RowError) String() string { return fmt.Sprintf("row %d: %s", e.Row, e.Reason) }

// table is a header plus rows, whatever file it came from.
type table struct {
	head []string
	rows [][]string
	cols map[string]int
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func newTable(all [][]string) (*table, error) {
	if len(all) == 0 {
		return nil, errors.New("empty sheet: header row missing")
	}
	t := &table{head: all[0], rows: all[1:], cols: map[string]int{}}
	for i, h := range t.head {
		t.cols[norm(h)] = i
	}
	return t, nil
}

// col finds the first header matching any alias, -1 if none does.
func (t *table) col(aliases ...string) int {
	for _, a := range aliases {
		if i, ok := t.cols[norm(a)]; ok {
			return i
		}
	}
	return -1
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func readTable(path string) (*table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		cr := csv.NewReader(f)
		cr.FieldsPerRecord = -1
		var all [][]string
		for {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			all = append(all, rec)
		}
		return newTable(all)
	case ".xlsx":
		x, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer x.Close()
		sheets := x.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", path)
		}
		all, err := x.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return newTable(all)
	}
	return nil, fmt.Errorf("unsupported seed file %q", path)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func parseNum(field, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	// pt-BR spreadsheets write 1.234,5; the last separator is the decimal one
	if comma := strings.LastIndex(s, ","); comma >= 0 {
		if comma > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %q", field, s)
	}
	return v, nil
}

type profileYAML struct {
	CropName       string  `yaml:"crop_name"`
	CostPerHectare float64 `yaml:"cost_per_hectare"`
	ExpectedYield  float64 `yaml:"expected_yield"`
	CurrentPrice   float64 `yaml:"current_price"`
	Cycle          int     `yaml:"cycle"`
}

// LoadProfiles reads simulation profiles from a CSV, XLSX or YAML file.
// Invalid rows are skipped and reported.
func LoadProfiles(path string) ([]entities.CropSimulationProfile, []RowError, error) {
	var out []entities.CropSimulationProfile
	var skipped []RowError
	seen := map[string]int{}
	keep := func(row int, p entities.CropSimulationProfile) {
		if err := analytics.ValidateProfile(p); err != nil {
			skipped = append(skipped, RowError{Row: row, Reason: err.Error()})
			return
		}
		if prev, dup := seen[p.CropName]; dup {
			skipped = append(skipped, RowError{Row: row, Reason: fmt.Sprintf("crop %q already defined on row %d", p.CropName, prev)})
			return
		}
		seen[p.CropName] = row
		out = append(out, p)
	}

	if isYAML(path) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		var doc struct {
			Profiles []profileYAML `yaml:"profiles"`
		}
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for i, p := range doc.Profiles {
			keep(i+1, entities.CropSimulationProfile{
				CropName: strings.TrimSpace(p.CropName), CostPerHectare: p.CostPerHectare,
				ExpectedYield: p.ExpectedYield, CurrentPrice: p.CurrentPrice, CycleDays: p.Cycle,
			})
		}
		return out, skipped, nil
	}

	t, err := readTable(path)
	if err != nil {
		return nil, nil, err
	}
	cName := t.col("crop_name", "crop", "cultura", "name")
	cCost := t.col("cost_per_hectare", "cost", "custo", "costha")
	cYield := t.col("expected_yield", "yield", "produtividade")
	cPrice := t.col("current_price", "price", "preco", "preço")
	cCycle := t.col("cycle", "cycle_days", "ciclo")
	if cName == -1 || cCost == -1 || cYield == -1 || cPrice == -1 {
		return nil, nil, fmt.Errorf("%s missing required columns. Found headers: %v\nNeed at least: crop_name, cost_per_hectare, expected_yield, current_price", path, t.head)
	}
	for i, rec := range t.rows {
		row := i + 2
		p := entities.CropSimulationProfile{CropName: cell(rec, cName)}
		var errs []error
		var e error
		p.CostPerHectare, e = parseNum("cost_per_hectare", cell(rec, cCost))
		errs = append(errs, e)
		p.ExpectedYield, e = parseNum("expected_yield", cell(rec, cYield))
		errs = append(errs, e)
		p.CurrentPrice, e = parseNum("current_price", cell(rec, cPrice))
		errs = append(errs, e)
		if c := cell(rec, cCycle); c != "" {
			n, err := strconv.Atoi(c)
			if err != nil {
				errs = append(errs, fmt.Errorf("cycle: not an integer: %q", c))
			}
			p.CycleDays = n
		}
		if err := errors.Join(errs...); err != nil {
			skipped = append(skipped, RowError{Row: row, Reason: err.Error()})
			continue
		}
		keep(row, p)
	}
	return out, skipped, nil
}

type historyYAML struct {
	ID              string  `yaml:"id"`
	FieldID         string  `yaml:"field_id"`
	FieldName       string  `yaml:"field_name"`
	CropName        string  `yaml:"crop_name"`
	Variety         string  `yaml:"variety"`
	Season          string  `yaml:"season"`
	YieldPerHectare float64 `yaml:"yield_per_hectare"`
	TotalYield      float64 `yaml:"total_yield"`
	PlantingDate    string  `yaml:"planting_date"`
	HarvestDate     string  `yaml:"harvest_date"`
	Notes           string  `yaml:"notes"`
}

func (h historyYAML) record() (entities.HistoryRecord, error) {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	r := entities.HistoryRecord{
		ID: h.ID, FieldID: strings.TrimSpace(h.FieldID), FieldName: h.FieldName, CropName: strings.TrimSpace(h.CropName),
		Variety: h.Variety, Season: h.Season, YieldPerHectare: h.YieldPerHectare, TotalYield: h.TotalYield, Notes: h.Notes,
	}
	var errs []error
	if h.PlantingDate != "" {
		d, err := analytics.ParseDate("planting_date", h.PlantingDate)
		errs = append(errs, err)
		r.PlantingDate = d
	}
	if h.HarvestDate != "" {
		d, err := analytics.ParseDate("harvest_date", h.HarvestDate)
		errs = append(errs, err)
		r.HarvestDate = d
	}
	if err := errors.Join(errs...); err != nil {
		return r, err
	}
	return r, analytics.ValidateHistoryRecord(r)
}

// LoadHistory reads harvest history from a CSV, XLSX or YAML file. Invalid
// rows are skipped and reported.
func LoadHistory(path string) ([]entities.HistoryRecord, []RowError, error) {
	var rows []historyYAML
	first := 1

	if isYAML(path) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		var doc struct {
			History []historyYAML `yaml:"history"`
		}
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", path, err)
		}
		rows = doc.History
	} else {
		t, err := readTable(path)
		if err != nil {
			return nil, nil, err
		}
		cField := t.col("field_id", "fieldid", "talhao_id")
		cCrop := t.col("crop_name", "crop", "cultura")
		cYield := t.col("yield_per_hectare", "yield", "produtividade")
		if cField == -1 || cCrop == -1 || cYield == -1 {
			return nil, nil, fmt.Errorf("%s missing required columns. Found headers: %v\nNeed at least: field_id, crop_name, yield_per_hectare", path, t.head)
		}
		cID := t.col("id")
		cName := t.col("field_name", "talhao")
		cVar := t.col("variety", "variedade")
		cSeason := t.col("season", "safra")
		cTotal := t.col("total_yield", "total")
		cPlant := t.col("planting_date", "plantio")
		cHarv := t.col("harvest_date", "colheita")
		cNotes := t.col("notes", "observacoes")
		first = 2
		var skipped []RowError
		for i, rec := range t.rows {
			y, err1 := parseNum("yield_per_hectare", cell(rec, cYield))
			tot, err2 := parseNum("total_yield", cell(rec, cTotal))
			if err := errors.Join(err1, err2); err != nil {
				skipped = append(skipped, RowError{Row: i + first, Reason: err.Error()})
				rows = append(rows, historyYAML{}) // placeholder keeps row numbers aligned
				continue
			}
			rows = append(rows, historyYAML{
				ID: cell(rec, cID), FieldID: cell(rec, cField), FieldName: cell(rec, cName), CropName: cell(rec, cCrop),
				Variety: cell(rec, cVar), Season: cell(rec, cSeason), YieldPerHectare: y, TotalYield: tot,
				PlantingDate: cell(rec, cPlant), HarvestDate: cell(rec, cHarv), Notes: cell(rec, cNotes),
			})
		}
		out, more := buildHistory(rows, first, skipped)
		return out, more, nil
	}
	out, skipped := buildHistory(rows, first, nil)
	return out, skipped, nil
}

func buildHistory(rows []historyYAML, first int, skipped []RowError) ([]entities.HistoryRecord, []RowError) {
	bad := map[int]bool{}
	for _, s := range skipped {
		bad[s.Row] = true
	}
	seen := map[string]int{}
	out := make([]entities.HistoryRecord, 0, len(rows))
	for i, h := range rows {
		row := i + first
		if bad[row] {
			continue
		}
		r, err := h.record()
		if err != nil {
			skipped = append(skipped, RowError{Row: row, Reason: err.Error()})
			continue
		}
		if prev, dup := seen[r.ID]; dup {
			skipped = append(skipped, RowError{Row: row, Reason: fmt.Sprintf("id %q already used on row %d", r.ID, prev)})
			continue
		}
		seen[r.ID] = row
		out = append(out, r)
	}
	return out, skipped
}
