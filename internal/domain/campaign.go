package domain

// ChannelType identifies the advertising channel a campaign runs on.
type ChannelType string

const (
	ChannelSearch         ChannelType = "SEARCH"
	ChannelDisplay        ChannelType = "DISPLAY"
	ChannelShopping       ChannelType = "SHOPPING"
	ChannelVideo          ChannelType = "VIDEO"
	ChannelPerformanceMax ChannelType = "PERFORMANCE_MAX"
	ChannelLocal          ChannelType = "LOCAL"
	ChannelSmart          ChannelType = "SMART"
	ChannelUnknown        ChannelType = "UNKNOWN"
)

// CampaignStatus is the serving state reported by the platform.
type CampaignStatus string

const (
	StatusEnabled CampaignStatus = "ENABLED"
	StatusPaused  CampaignStatus = "PAUSED"
	StatusRemoved CampaignStatus = "REMOVED"
	StatusEnded   CampaignStatus = "ENDED"
	StatusUnknown CampaignStatus = "UNKNOWN"
)

// RawCampaign is a campaign-level performance row as reported upstream.
// Monetary fields are in micros (1e6 micros = 1 currency unit).
type RawCampaign struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Channel               ChannelType    `json:"channel"`
	Status                CampaignStatus `json:"status"`
	StartDate             string         `json:"start_date"` // YYYY-MM-DD
	EndDate               string         `json:"end_date"`   // YYYY-MM-DD, may be empty
	Impressions           int64          `json:"impressions"`
	Clicks                int64          `json:"clicks"`
	CostMicros            int64          `json:"cost_micros"`
	Conversions           float64        `json:"conversions"`
	ConversionValueMicros float64        `json:"conversion_value_micros"`
	CTR                   float64        `json:"ctr"`
	CPC                   float64        `json:"cpc"`
	CPA                   float64        `json:"cpa"`
	ROAS                  float64        `json:"roas"`
}
