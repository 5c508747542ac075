package domain

// CallInteraction is a call-reporting row for a campaign or ad group.
// PhoneThroughRate arrives as either a fraction (0-1) or a percentage
// (0-100) depending on the source; consumers must normalize it to a
// percentage before use.
type CallInteraction struct {
	CampaignName     string  `json:"campaign_name"`
	AdGroupName      string  `json:"ad_group_name"`
	PhoneCalls       int64   `json:"phone_calls"`
	PhoneImpressions int64   `json:"phone_impressions"`
	PhoneThroughRate float64 `json:"phone_through_rate"`
	CallType         string  `json:"call_type"`
}

// NormalizePhoneThroughRate converts a source-dependent rate to a percentage.
// Values at or below 1 are treated as fractions.
func NormalizePhoneThroughRate(rate float64) float64 {
	if rate <= 1 {
		return rate * 100
	}
	return rate
}
