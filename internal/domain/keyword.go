package domain

// RawKeyword is a keyword-level performance row as reported upstream.
type RawKeyword struct {
	ID           string  `json:"id"`
	Text         string  `json:"text"`
	MatchType    string  `json:"match_type"`
	CampaignName string  `json:"campaign_name"`
	AdGroupName  string  `json:"ad_group_name"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	CostMicros   int64   `json:"cost_micros"`
	Conversions  float64 `json:"conversions"`
	CTR          float64 `json:"ctr"`
	CPC          float64 `json:"cpc"`
	QualityScore int     `json:"quality_score"` // 1-10, 0 when not reported
}
