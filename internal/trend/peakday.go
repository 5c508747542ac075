// Package trend derives day-of-week and acquisition trends from the
// normalized account time series.
package trend

import (
	"sort"
	"time"

	"ads-insights-lab/internal/domain"
	"ads-insights-lab/internal/money"
)

// weekdays in render order. Callers draw a fixed 7-column chart, so the
// output always contains every weekday even for an empty series.
var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// PeakDays aggregates the series by weekday and returns all seven days
// sorted descending by conversions. Per-day spend is preserved so callers
// can re-sort by spend without recomputing.
func PeakDays(series []domain.TimeSeriesPoint) ([]domain.PeakDay, error) {
	convByDay := make(map[string]float64, 7)
	microsByDay := make(map[string]int64, 7)

	for _, p := range series {
		d, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			continue // malformed provider date, skip the point
		}
		day := d.Weekday().String()
		convByDay[day] += p.Conversions
		microsByDay[day] += p.CostMicros
	}

	out := make([]domain.PeakDay, 0, len(weekdays))
	for _, day := range weekdays {
		spend, err := money.ToCurrency(microsByDay[day])
		if err != nil {
			return nil, err
		}
		out = append(out, domain.PeakDay{
			Day:         day,
			Conversions: convByDay[day],
			Spend:       spend,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Conversions > out[j].Conversions
	})
	return out, nil
}
