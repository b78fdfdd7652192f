// Package aggregate groups filtered error lines by signature and by day.
package aggregate

import (
	"github.com/vburojevic/errlens/internal/domain"
	"github.com/vburojevic/errlens/internal/signature"
)

// DeriveFunc maps an error line to its signature
type DeriveFunc func(line string) string

// Aggregator counts error lines per signature and per day
type Aggregator struct {
	derive DeriveFunc
}

// New creates an aggregator. A nil derive uses signature.Derive.
func New(derive DeriveFunc) *Aggregator {
	if derive == nil {
		derive = signature.Derive
	}
	return &Aggregator{derive: derive}
}

// Run aggregates lines in a single forward pass. Lines are expected to be
// already filtered to error level and the requested period.
func (a *Aggregator) Run(lines []domain.LogLine) *domain.Aggregation {
	agg := &domain.Aggregation{
		BySignature: domain.NewCounts(),
		ByDay:       domain.NewDayMap(),
	}
	if len(lines) == 0 {
		return agg
	}

	for _, line := range lines {
		day := line.Date()
		sig := a.derive(line.Raw)

		agg.BySignature.Inc(sig)
		d := agg.ByDay.Day(day)
		d.Total++
		d.Signatures.Inc(sig)
	}

	agg.Total = len(lines)
	agg.First = lines[0].Raw
	agg.Last = lines[len(lines)-1].Raw
	agg.Days = agg.ByDay.SortedDates()
	agg.BySignature.SortByCountDesc()

	return agg
}

// Run aggregates lines with the default signature deriver
func Run(lines []domain.LogLine) *domain.Aggregation {
	return New(nil).Run(lines)
}
