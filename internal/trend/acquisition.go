package trend

import "ads-insights-lab/internal/domain"

const acquisitionWindowDays = 14

// Acquisition compares conversions in the trailing 14-day window against
// the 14 days immediately preceding it. The verdict is increasing only
// when recent exceeds prior by strictly more than 10%, decreasing only
// when it falls strictly below 90% of prior, stable otherwise.
//
// Series shorter than 28 points are compared on whatever partial windows
// exist; there is no insufficient-data special case.
func Acquisition(series []domain.TimeSeriesPoint) domain.AcquisitionTrend {
	recentStart := len(series) - acquisitionWindowDays
	if recentStart < 0 {
		recentStart = 0
	}
	priorStart := recentStart - acquisitionWindowDays
	if priorStart < 0 {
		priorStart = 0
	}

	var recent, prior float64
	for _, p := range series[recentStart:] {
		recent += p.Conversions
	}
	for _, p := range series[priorStart:recentStart] {
		prior += p.Conversions
	}

	return Verdict(recent, prior)
}

// Verdict applies the threshold comparison to two window totals.
func Verdict(recent, prior float64) domain.AcquisitionTrend {
	switch {
	case recent > prior*1.1:
		return domain.TrendIncreasing
	case recent < prior*0.9:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}
