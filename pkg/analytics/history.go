package analytics

import (
	"math"
	"strings"

	"cropplan/entities"
)

type GroupBy string

const (
	ByField GroupBy = "field"
	ByCrop  GroupBy = "crop"
)

// AllFields disables the field filter.
const AllFields = "all"

// Group is one entry of an ordered mapping key -> records. Records keep
// their input order.
type Group struct {
	Key     string                   `json:"key"`
	Label   string                   `json:"label"`
	Records []entities.HistoryRecord `json:"records"`
}

type SeasonYield struct {
	Season   string  `json:"season"`
	CropName string  `json:"crop_name"`
	Yield    float64 `json:"yield_per_hectare"`
}

type YieldStats struct {
	Count        int           `json:"count"`
	AverageYield float64       `json:"average_yield"`
	MaxYield     float64       `json:"max_yield"`
	MinYield     float64       `json:"min_yield"`
	MaxSeason    string        `json:"max_season"`
	MinSeason    string        `json:"min_season"`
	TotalYield   float64       `json:"total_yield"`
	FirstSeason  string        `json:"first_season"`
	LastSeason   string        `json:"last_season"`
	Series       []SeasonYield `json:"series"`
	Warnings     []Warning     `json:"warnings,omitempty"`
}

type GroupStats struct {
	Group
	Stats YieldStats `json:"stats"`
}

// RecordIssue describes a record left out of a batch.
type RecordIssue struct {
	Index    int    `json:"index"`
	RecordID string `json:"record_id"`
	Reason   string `json:"reason"`
}

type AggregateOptions struct {
	FieldID string // "" or AllFields for every field
	By      GroupBy
}

type HistoryReport struct {
	By      GroupBy       `json:"by"`
	FieldID string        `json:"field_id"`
	Records int           `json:"records"`
	Groups  []GroupStats  `json:"groups"`
	Skipped []RecordIssue `json:"skipped,omitempty"`
}

// GroupByField groups on FieldID, never on the display name. Groups come
// out in order of first appearance.
func GroupByField(records []entities.HistoryRecord) []Group {
	return groupBy(records,
		func(r entities.HistoryRecord) string { return r.FieldID },
		func(r entities.HistoryRecord) string {
			if r.FieldName != "" {
				return r.FieldName
			}
			return r.FieldID
		})
}

// GroupByCrop groups on CropName in order of first appearance.
func GroupByCrop(records []entities.HistoryRecord) []Group {
	name := func(r entities.HistoryRecord) string { return r.CropName }
	return groupBy(records, name, name)
}

func groupBy(records []entities.HistoryRecord, key, label func(entities.HistoryRecord) string) []Group {
	idx := map[string]int{}
	var out []Group
	for _, r := range records {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, Group{Key: k, Label: label(r)})
		}
		out[i].Records = append(out[i].Records, r)
	}
	return out
}

// Lookup returns the records stored under key.
func Lookup(groups []Group, key string) ([]entities.HistoryRecord, bool) {
	for _, g := range groups {
		if g.Key == key {
			return g.Records, true
		}
	}
	return nil, false
}

// Flatten concatenates the groups back into one slice.
func Flatten(groups []Group) []entities.HistoryRecord {
	var out []entities.HistoryRecord
	for _, g := range groups {
		out = append(out, g.Records...)
	}
	return out
}

// FilterByField keeps the records of one field. An empty id or AllFields
// keeps everything.
func FilterByField(records []entities.HistoryRecord, fieldID string) []entities.HistoryRecord {
	fieldID = strings.TrimSpace(fieldID)
	if fieldID == "" || fieldID == AllFields {
		return records
	}
	out := make([]entities.HistoryRecord, 0, len(records))
	for _, r := range records {
		if r.FieldID == fieldID {
			out = append(out, r)
		}
	}
	return out
}

// Summarize computes the yield statistics of one group. Ties on the
// extremal yield resolve to the first record in group order.
func Summarize(records []entities.HistoryRecord) YieldStats {
	st := YieldStats{Count: len(records)}
	if len(records) == 0 {
		st.Warnings = []Warning{{Code: WarnEmptyGroup, Message: "no records in group"}}
		return st
	}
	sum := 0.0
	st.MaxYield, st.MinYield = records[0].YieldPerHectare, records[0].YieldPerHectare
	st.MaxSeason, st.MinSeason = records[0].Season, records[0].Season
	st.Series = make([]SeasonYield, 0, len(records))
	for _, r := range records {
		y := r.YieldPerHectare
		sum += y
		st.TotalYield += r.TotalYield
		if y > st.MaxYield {
			st.MaxYield, st.MaxSeason = y, r.Season
		}
		if y < st.MinYield {
			st.MinYield, st.MinSeason = y, r.Season
		}
		st.Series = append(st.Series, SeasonYield{Season: r.Season, CropName: r.CropName, Yield: y})
	}
	st.AverageYield = sum / float64(len(records))
	st.FirstSeason = records[0].Season
	st.LastSeason = records[len(records)-1].Season
	return st
}

// ValidateHistoryRecord checks the invariants of a stored harvest record.
func ValidateHistoryRecord(r entities.HistoryRecord) error {
	switch {
	case strings.TrimSpace(r.FieldID) == "":
		return invalid("field_id", "is required")
	case strings.TrimSpace(r.CropName) == "":
		return invalid("crop_name", "is required")
	case math.IsNaN(r.YieldPerHectare) || math.IsInf(r.YieldPerHectare, 0):
		return invalid("yield_per_hectare", "must be a finite number")
	case math.IsNaN(r.TotalYield) || math.IsInf(r.TotalYield, 0):
		return invalid("total_yield", "must be a finite number")
	case r.YieldPerHectare < 0:
		return invalid("yield_per_hectare", "must be >= 0, got %v", r.YieldPerHectare)
	case r.TotalYield < 0:
		return invalid("total_yield", "must be >= 0, got %v", r.TotalYield)
	}
	return nil
}

// Aggregate validates, filters, groups and summarizes in that order. Bad
// records are skipped and reported; they never abort the batch.
func Aggregate(records []entities.HistoryRecord, opts AggregateOptions) (HistoryReport, error) {
	by := opts.By
	if by == "" {
		by = ByField
	}
	if by != ByField && by != ByCrop {
		return HistoryReport{}, invalid("by", "must be %q or %q", ByField, ByCrop)
	}
	rep := HistoryReport{By: by, FieldID: opts.FieldID}
	if rep.FieldID == "" {
		rep.FieldID = AllFields
	}

	clean := make([]entities.HistoryRecord, 0, len(records))
	for i, r := range records {
		if err := ValidateHistoryRecord(r); err != nil {
			rep.Skipped = append(rep.Skipped, RecordIssue{Index: i, RecordID: r.ID, Reason: err.Error()})
			continue
		}
		clean = append(clean, r)
	}
	clean = FilterByField(clean, opts.FieldID)
	rep.Records = len(clean)

	var groups []Group
	if by == ByCrop {
		groups = GroupByCrop(clean)
	} else {
		groups = GroupByField(clean)
	}
	rep.Groups = make([]GroupStats, 0, len(groups))
	for _, g := range groups {
		rep.Groups = append(rep.Groups, GroupStats{Group: g, Stats: Summarize(g.Records)})
	}
	return rep, nil
}
