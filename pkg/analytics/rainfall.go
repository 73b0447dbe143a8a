package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"cropplan/entities"
)

type RainPeriod string

const (
	PeriodWeek  RainPeriod = "week"
	PeriodMonth RainPeriod = "month"
	PeriodYear  RainPeriod = "year"
	PeriodAll   RainPeriod = "all"
)

func ParseRainPeriod(s string) (RainPeriod, error) {
	switch p := RainPeriod(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodAll, nil
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return p, nil
	}
	return "", invalid("period", "unknown period %q", s)
}

type RainFilter struct {
	Period   RainPeriod
	Location string // "" or "all" for every location
	Now      time.Time
}

// Since returns the inclusive lower bound of the period: 7 or 30 days back,
// or January 1st of Now's year. The zero time means no bound.
func (f RainFilter) Since() time.Time {
	switch f.Period {
	case PeriodWeek:
		return f.Now.AddDate(0, 0, -7)
	case PeriodMonth:
		return f.Now.AddDate(0, 0, -30)
	case PeriodYear:
		return time.Date(f.Now.Year(), 1, 1, 0, 0, 0, 0, f.Now.Location())
	}
	return time.Time{}
}

type LocationShare struct {
	Location string  `json:"location"`
	TotalMM  float64 `json:"total"`
	Percent  int     `json:"percent"`
}

type RainSummary struct {
	Count      int                   `json:"count"`
	TotalMM    float64               `json:"total"`
	AverageMM  float64               `json:"average"`
	MaxMM      float64               `json:"max"`
	YearToDate float64               `json:"year_to_date"`
	ByLocation []LocationShare       `json:"by_location"`
	Records    []entities.RainRecord `json:"records"`
	Warnings   []Warning             `json:"warnings,omitempty"`
}

// FilterRain applies the period and location filters and sorts newest
// first.
func FilterRain(records []entities.RainRecord, f RainFilter) []entities.RainRecord {
	since := f.Since()
	loc := strings.TrimSpace(f.Location)
	out := make([]entities.RainRecord, 0, len(records))
	for _, r := range records {
		if !since.IsZero() && r.Date.Before(since) {
			continue
		}
		if loc != "" && loc != "all" && r.Location != loc {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// SummarizeRain totals the filtered records. Year-to-date and the
// per-location shares are computed over all records, as the dashboard
// cards are.
func SummarizeRain(records []entities.RainRecord, f RainFilter) RainSummary {
	if f.Now.IsZero() {
		f.Now = time.Now()
	}
	sel := FilterRain(records, f)
	sum := RainSummary{Count: len(sel), Records: sel}
	for _, r := range sel {
		sum.TotalMM += r.AmountMM
		if r.AmountMM > sum.MaxMM {
			sum.MaxMM = r.AmountMM
		}
	}
	if sum.Count > 0 {
		sum.AverageMM = sum.TotalMM / float64(sum.Count)
	} else {
		sum.Warnings = append(sum.Warnings, Warning{Code: WarnEmptyGroup, Message: "no rain records in range"})
	}

	grand := 0.0
	idx := map[string]int{}
	for _, r := range records {
		if r.Date.Year() == f.Now.Year() {
			sum.YearToDate += r.AmountMM
		}
		grand += r.AmountMM
		i, ok := idx[r.Location]
		if !ok {
			i = len(sum.ByLocation)
			idx[r.Location] = i
			sum.ByLocation = append(sum.ByLocation, LocationShare{Location: r.Location})
		}
		sum.ByLocation[i].TotalMM += r.AmountMM
	}
	if grand > 0 {
		for i := range sum.ByLocation {
			sum.ByLocation[i].Percent = int(math.Round(sum.ByLocation[i].TotalMM / grand * 100))
		}
	}
	return sum
}

func ValidateRainRecord(r entities.RainRecord) error {
	switch {
	case r.Date.IsZero():
		return invalid("date", "is required")
	case strings.TrimSpace(r.Location) == "":
		return invalid("location", "is required")
	case r.AmountMM < 0 || math.IsNaN(r.AmountMM):
		return invalid("amount", "must be >= 0")
	}
	return nil
}
