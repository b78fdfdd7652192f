package domain

import "time"

// Period is a symbolic trailing date window
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ValidPeriods lists the accepted period tokens in display order
var ValidPeriods = []Period{PeriodToday, PeriodWeek, PeriodMonth}

// Days returns the window length in calendar days
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		// Fixed 30-day trailing window, not a calendar month.
		return 30
	default:
		return 1
	}
}

// ISODate is the layout used for calendar dates throughout the report
const ISODate = "2006-01-02"

// PeriodRange is an inclusive range of UTC calendar dates
type PeriodRange struct {
	Period Period
	Start  time.Time
	End    time.Time
}

// StartISO returns the start date as YYYY-MM-DD
func (r PeriodRange) StartISO() string { return r.Start.Format(ISODate) }

// EndISO returns the end date as YYYY-MM-DD
func (r PeriodRange) EndISO() string { return r.End.Format(ISODate) }

// Contains reports whether an ISO date string falls inside the range.
// ISO dates order correctly as strings, so plain comparison is enough.
func (r PeriodRange) Contains(date string) bool {
	return date >= r.StartISO() && date <= r.EndISO()
}
