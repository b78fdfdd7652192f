package filter

import (
	"github.com/vburojevic/errlens/internal/domain"
)

// Filter determines if a log line should be included
type Filter interface {
	// Match returns true if the line passes the filter
	Match(line *domain.LogLine) bool
}

// Chain combines multiple filters (all must pass)
type Chain struct {
	filters []Filter
}

// NewChain creates a filter chain from multiple filters
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Match returns true only if all filters pass
func (c *Chain) Match(line *domain.LogLine) bool {
	for _, f := range c.filters {
		if !f.Match(line) {
			return false
		}
	}
	return true
}

// ForRange returns the standard error-log chain: non-blank, error level,
// well-formed leading date inside r
func ForRange(r domain.PeriodRange) *Chain {
	return NewChain(NonBlank{}, ErrorLevel{}, NewDateRange(r))
}

// Lines returns the lines that pass f, in their original order
func Lines(lines []domain.LogLine, f Filter) []domain.LogLine {
	var kept []domain.LogLine
	for i := range lines {
		if f.Match(&lines[i]) {
			kept = append(kept, lines[i])
		}
	}
	return kept
}
