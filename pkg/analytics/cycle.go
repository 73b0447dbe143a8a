package analytics

import (
	"math"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Ordering selects how a harvest date earlier than the planting date is
// treated.
type Ordering string

const (
	// OrderingStrict rejects harvest < planting.
	OrderingStrict Ordering = "strict"
	// OrderingLenient takes the absolute difference, as the original
	// planning form did for swapped entries.
	OrderingLenient Ordering = "lenient"
)

// ParseOrdering maps a config value onto an Ordering, defaulting to strict.
func ParseOrdering(s string) Ordering {
	if strings.EqualFold(strings.TrimSpace(s), string(OrderingLenient)) {
		return OrderingLenient
	}
	return OrderingStrict
}

// ComputeCycleDays returns ceil(|harvest - planting|) in whole days. Any
// partial day counts as a full one; exact multiples of 24h are not rounded
// up. The result does not depend on argument order.
func ComputeCycleDays(planting, harvest time.Time) int {
	d := harvest.Sub(planting)
	if d < 0 {
		d = -d
	}
	days := d / day
	if d%day != 0 {
		days++
	}
	if days > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(days)
}

// ParseDate accepts a calendar date (read as UTC midnight) or an RFC3339
// timestamp.
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, invalid(field, "date is required")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, invalid(field, "unparseable date %q", s)
}

type CycleCalculator struct {
	Ordering Ordering
}

func NewCycleCalculator(o Ordering) CycleCalculator { return CycleCalculator{Ordering: o} }

// Between applies the ordering policy to already parsed dates.
func (c CycleCalculator) Between(planting, harvest time.Time) (int, error) {
	if planting.IsZero() {
		return 0, invalid("planting_date", "date is required")
	}
	if harvest.IsZero() {
		return 0, invalid("harvest_date", "date is required")
	}
	if c.Ordering != OrderingLenient && harvest.Before(planting) {
		return 0, invalid("harvest_date", "harvest %s is before planting %s",
			harvest.Format(DateLayout), planting.Format(DateLayout))
	}
	return ComputeCycleDays(planting, harvest), nil
}

// Days parses both inputs and returns the cycle length.
func (c CycleCalculator) Days(planting, harvest string) (int, error) {
	p, err := ParseDate("planting_date", planting)
	if err != nil {
		return 0, err
	}
	h, err := ParseDate("harvest_date", harvest)
	if err != nil {
		return 0, err
	}
	return c.Between(p, h)
}
