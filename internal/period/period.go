// Package period turns symbolic period tokens into inclusive UTC date ranges.
package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/vburojevic/errlens/internal/domain"
)

// InvalidPeriodError is returned for tokens other than today, week or month
type InvalidPeriodError struct {
	Token string
}

func (e *InvalidPeriodError) Error() string {
	names := make([]string, len(domain.ValidPeriods))
	for i, p := range domain.ValidPeriods {
		names[i] = string(p)
	}
	return fmt.Sprintf("Invalid period %q. Use: %s", e.Token, strings.Join(names, " | "))
}

// Parse lowercases a period token and validates it. Whitespace is kept, so
// " week" is rejected. An empty token means today.
func Parse(token string) (domain.Period, error) {
	t := strings.ToLower(token)
	if t == "" {
		return domain.PeriodToday, nil
	}
	for _, p := range domain.ValidPeriods {
		if t == string(p) {
			return p, nil
		}
	}
	return "", &InvalidPeriodError{Token: t}
}

// Resolve returns the inclusive range of p ending on the UTC calendar date of now
func Resolve(p domain.Period, now time.Time) domain.PeriodRange {
	u := now.UTC()
	end := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(p.Days() - 1))
	return domain.PeriodRange{Period: p, Start: start, End: end}
}

// Resolver resolves periods against a clock
type Resolver struct {
	clk clock.Clock
}

// NewResolver creates a resolver. A nil clock uses the wall clock.
func NewResolver(clk clock.Clock) *Resolver {
	if clk == nil {
		clk = clock.New()
	}
	return &Resolver{clk: clk}
}

// Resolve parses token and anchors it on the clock's current date
func (r *Resolver) Resolve(token string) (domain.PeriodRange, error) {
	p, err := Parse(token)
	if err != nil {
		return domain.PeriodRange{}, err
	}
	return Resolve(p, r.clk.Now()), nil
}
