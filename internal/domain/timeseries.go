package domain

import "sort"

// TimeSeriesPoint is one calendar day of account-level performance.
// A series holds at most one point per date and is sorted ascending by date.
type TimeSeriesPoint struct {
	Date                  string  `json:"date"` // YYYY-MM-DD
	Impressions           int64   `json:"impressions"`
	Clicks                int64   `json:"clicks"`
	CostMicros            int64   `json:"cost_micros"`
	Conversions           float64 `json:"conversions"`
	ConversionValueMicros float64 `json:"conversion_value_micros"`
}

// SortTimeSeries orders points ascending by date in place.
// Dates are YYYY-MM-DD so lexicographic order is chronological order.
func SortTimeSeries(points []TimeSeriesPoint) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
}
