package output

import (
	"github.com/vburojevic/errlens/internal/domain"
)

// NoErrorsMessage is reported when no error lines fall in the period
const NoErrorsMessage = "No errors"

// Report is the JSON document printed for one run. When no errors matched,
// only period, start, end, total and message are set.
type Report struct {
	Period      string         `json:"period"`
	Start       string         `json:"start"`
	End         string         `json:"end"`
	Total       int            `json:"total"`
	Days        []string       `json:"days,omitempty"`
	First       string         `json:"first,omitempty"`
	Last        string         `json:"last,omitempty"`
	BySignature *domain.Counts `json:"bySignature,omitempty"`
	ByDay       *domain.DayMap `json:"byDay,omitempty"`
	Message     string         `json:"message,omitempty"`

	// Only set when the signature store is enabled
	NewSignatures []string `json:"newSignatures,omitempty"`
}

// BuildReport turns an aggregation over r into the report shape
func BuildReport(r domain.PeriodRange, agg *domain.Aggregation) *Report {
	rep := &Report{
		Period: string(r.Period),
		Start:  r.StartISO(),
		End:    r.EndISO(),
	}
	if agg == nil || agg.Total == 0 {
		rep.Message = NoErrorsMessage
		return rep
	}

	rep.Total = agg.Total
	rep.Days = agg.Days
	rep.First = agg.First
	rep.Last = agg.Last
	rep.BySignature = agg.BySignature
	rep.ByDay = agg.ByDay
	return rep
}

// IsEmpty reports whether the report has the minimal no-errors shape
func (r *Report) IsEmpty() bool {
	return r.Total == 0
}
