package domain

// RawGeo is a geographic performance row as reported upstream.
type RawGeo struct {
	LocationName string  `json:"location_name"`
	LocationType string  `json:"location_type"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	CostMicros   int64   `json:"cost_micros"`
	Conversions  float64 `json:"conversions"`
	CTR          float64 `json:"ctr"`
	CPC          float64 `json:"cpc"`
}
