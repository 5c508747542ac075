package insights

import (
	"fmt"

	"ads-insights-lab/internal/classify"
	"ads-insights-lab/internal/domain"
	"ads-insights-lab/internal/trend"
)

// DemoInsights returns the fixed synthetic dataset served when live data
// cannot be obtained. It is deterministic: the same struct is produced on
// every call, and the derived sections (totals, peak days, trend) are
// computed through the same functions as the real pipeline so the demo
// stays internally consistent.
func DemoInsights() *domain.RestaurantInsights {
	series := demoSeries()
	actions := demoActions()

	// Fixture data is non-negative by construction, so the normalization
	// error paths are unreachable here.
	peakDays, _ := trend.PeakDays(series)
	t, _ := computeTotals(demoCampaigns())
	topCampaigns, _ := rankCampaigns(demoCampaigns())
	hotspots, _ := rankGeo(demoGeo())
	topKeywords, bySpend, _ := rankKeywords(demoKeywords())

	return &domain.RestaurantInsights{
		TotalSpend:            t.Spend,
		TotalConversions:      t.Conversions,
		AverageOrderValue:     t.AverageOrderValue,
		ConversionsByType:     classify.CountByCategory(actions),
		CostPerConversion:     t.CostPerConversion,
		ConversionActions:     actions,
		PeakDays:              peakDays,
		AcquisitionTrend:      trend.Acquisition(series),
		TopCampaigns:          topCampaigns,
		GeographicHotspots:    hotspots,
		SeasonalTrends:        series,
		TopKeywords:           topKeywords,
		KeywordsRankedBySpend: bySpend,
		CallInteractions:      demoCalls(),
		Demo:                  true,
	}
}

func demoCampaigns() []domain.RawCampaign {
	return []domain.RawCampaign{
		{
			ID: "demo-1", Name: "Weekend Brunch Special", Channel: domain.ChannelSearch,
			Status: domain.StatusEnabled, Impressions: 18200, Clicks: 940,
			CostMicros: 412_500_000, Conversions: 58, ConversionValueMicros: 2_610_000_000,
			CTR: 5.16, CPC: 0.44, CPA: 7.11, ROAS: 6.33,
		},
		{
			ID: "demo-2", Name: "Dinner Reservations", Channel: domain.ChannelPerformanceMax,
			Status: domain.StatusEnabled, Impressions: 25600, Clicks: 1210,
			CostMicros: 587_300_000, Conversions: 41, ConversionValueMicros: 1_980_000_000,
			CTR: 4.73, CPC: 0.49, CPA: 14.32, ROAS: 3.37,
		},
		{
			ID: "demo-3", Name: "Local Takeout Push", Channel: domain.ChannelLocal,
			Status: domain.StatusPaused, Impressions: 7400, Clicks: 380,
			CostMicros: 149_900_000, Conversions: 12, ConversionValueMicros: 420_000_000,
			CTR: 5.14, CPC: 0.39, CPA: 12.49, ROAS: 2.80,
		},
	}
}

func demoKeywords() []domain.RawKeyword {
	return []domain.RawKeyword{
		{ID: "demo-k1", Text: "restaurant near me", MatchType: "BROAD", CampaignName: "Weekend Brunch Special", Impressions: 6100, Clicks: 410, CostMicros: 155_800_000, Conversions: 21, QualityScore: 8},
		{ID: "demo-k2", Text: "brunch reservations", MatchType: "PHRASE", CampaignName: "Weekend Brunch Special", Impressions: 2900, Clicks: 240, CostMicros: 98_400_000, Conversions: 14, QualityScore: 9},
		{ID: "demo-k3", Text: "takeout pizza", MatchType: "EXACT", CampaignName: "Local Takeout Push", Impressions: 1800, Clicks: 150, CostMicros: 61_200_000, Conversions: 6, QualityScore: 7},
	}
}

func demoGeo() []domain.RawGeo {
	return []domain.RawGeo{
		{LocationName: "Downtown", LocationType: "CITY_REGION", Impressions: 12400, Clicks: 680, CostMicros: 301_000_000, Conversions: 44},
		{LocationName: "Riverside", LocationType: "CITY_REGION", Impressions: 8300, Clicks: 390, CostMicros: 187_600_000, Conversions: 27},
		{LocationName: "University District", LocationType: "CITY_REGION", Impressions: 5200, Clicks: 290, CostMicros: 122_900_000, Conversions: 19},
	}
}

func demoActions() []domain.ConversionAction {
	return []domain.ConversionAction{
		{Name: "Phone Calls from Ads", Type: 11, Conversions: 47, ConversionValue: 2115},
		{Name: "Online Order Page", Type: 3, Conversions: 38, ConversionValue: 1710},
		{Name: "Directions Requests", Type: 18, Conversions: 21},
		{Name: "Menu Downloads", Type: 99, Conversions: 5},
	}
}

func demoCalls() []domain.CallInteraction {
	return []domain.CallInteraction{
		{CampaignName: "Weekend Brunch Special", PhoneCalls: 31, PhoneImpressions: 520, PhoneThroughRate: 5.96, CallType: "MANUALLY_DIALED"},
		{CampaignName: "Dinner Reservations", PhoneCalls: 16, PhoneImpressions: 410, PhoneThroughRate: 3.90, CallType: "MANUALLY_DIALED"},
	}
}

// demoSeries produces 28 days ending 2025-06-28 with a gentle upward
// drift so the acquisition verdict reads increasing.
func demoSeries() []domain.TimeSeriesPoint {
	series := make([]domain.TimeSeriesPoint, 0, 28)
	for i := 0; i < 28; i++ {
		series = append(series, domain.TimeSeriesPoint{
			Date:                  fmt.Sprintf("2025-06-%02d", i+1),
			Impressions:           int64(1500 + 25*i),
			Clicks:                int64(70 + 2*i),
			CostMicros:            int64(38_000_000 + 500_000*i),
			Conversions:           float64(3 + i/7),
			ConversionValueMicros: float64(160_000_000 + 4_000_000*i),
		})
	}
	return series
}
