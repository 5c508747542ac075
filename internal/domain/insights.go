package domain

// AcquisitionTrend is the verdict of comparing the two trailing
// acquisition windows.
type AcquisitionTrend string

const (
	TrendIncreasing AcquisitionTrend = "increasing"
	TrendDecreasing AcquisitionTrend = "decreasing"
	TrendStable     AcquisitionTrend = "stable"
)

// PeakDay is aggregated performance for one weekday across the window.
type PeakDay struct {
	Day         string  `json:"day"` // Monday..Sunday
	Conversions float64 `json:"conversions"`
	Spend       float64 `json:"spend"`
}

// TopCampaign is one entry of the top-performing-campaigns list.
type TopCampaign struct {
	Name        string  `json:"name"`
	Channel     string  `json:"channel"`
	Spend       float64 `json:"spend"`
	Conversions float64 `json:"conversions"`
	CPA         float64 `json:"cpa"`
	ROAS        float64 `json:"roas"`
}

// GeoHotspot is one entry of the geographic-hotspots list.
type GeoHotspot struct {
	Location    string  `json:"location"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions float64 `json:"conversions"`
}

// TopKeyword is one entry of the top-keywords list.
type TopKeyword struct {
	Text        string  `json:"text"`
	MatchType   string  `json:"matchType"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions float64 `json:"conversions"`
}

// CategoryCounts holds conversion totals per business category.
type CategoryCounts struct {
	PhoneCall  float64 `json:"phoneCall"`
	Website    float64 `json:"website"`
	Directions float64 `json:"directions"`
}

// ConfigurationStatus explains why a fallback path was taken.
type ConfigurationStatus struct {
	Issue   string `json:"issue"`
	Message string `json:"message"`
}

// RestaurantInsights is the consolidated business summary returned to the
// caller. It is assembled fresh per invocation and never persisted by the
// assembler itself.
type RestaurantInsights struct {
	TotalSpend            float64              `json:"totalSpend"`
	TotalConversions      float64              `json:"totalConversions"`
	AverageOrderValue     float64              `json:"averageOrderValue"`
	ConversionsByType     CategoryCounts       `json:"conversionsByType"`
	CostPerConversion     float64              `json:"costPerConversion"`
	ConversionActions     []ConversionAction   `json:"conversionActions"`
	PeakDays              []PeakDay            `json:"peakDays"`
	AcquisitionTrend      AcquisitionTrend     `json:"acquisitionTrend"`
	TopCampaigns          []TopCampaign        `json:"topPerformingCampaigns"`
	GeographicHotspots    []GeoHotspot         `json:"geographicHotspots"`
	SeasonalTrends        []TimeSeriesPoint    `json:"seasonalTrends"`
	TopKeywords           []TopKeyword         `json:"topKeywords"`
	KeywordsRankedBySpend bool                 `json:"keywordsRankedBySpend"`
	CallInteractions      []CallInteraction    `json:"callInteractions"`
	Demo                  bool                 `json:"demo"`
	ConfigurationStatus   *ConfigurationStatus `json:"configurationStatus,omitempty"`
}
