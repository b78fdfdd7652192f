package filter

import (
	"github.com/vburojevic/errlens/internal/domain"
)

// DateRange keeps lines whose leading YYYY-MM-DD date falls inside an
// inclusive range. Lines without a well-formed date are dropped.
type DateRange struct {
	rng domain.PeriodRange
}

// NewDateRange creates a date filter for r
func NewDateRange(r domain.PeriodRange) *DateRange {
	return &DateRange{rng: r}
}

// Match returns true if the line's date is within [start, end]
func (f *DateRange) Match(line *domain.LogLine) bool {
	d := line.Date()
	if !domain.IsISODate(d) {
		return false
	}
	return f.rng.Contains(d)
}
