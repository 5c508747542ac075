package domain

import (
	"fmt"
	"time"
)

// DateRange is an inclusive reporting window of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses a YYYY-MM-DD pair and validates start <= end.
func NewDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse start date: %w", err)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse end date: %w", err)
	}
	if e.Before(s) {
		return DateRange{}, fmt.Errorf("start date %s after end date %s", start, end)
	}
	return DateRange{Start: s, End: e}, nil
}

// LastDays returns the range covering the n days ending today (UTC).
func LastDays(n int) DateRange {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	return DateRange{Start: end.AddDate(0, 0, -(n - 1)), End: end}
}

// StartString returns the start date formatted as YYYY-MM-DD.
func (r DateRange) StartString() string { return r.Start.Format("2006-01-02") }

// EndString returns the end date formatted as YYYY-MM-DD.
func (r DateRange) EndString() string { return r.End.Format("2006-01-02") }
