package domain

// ConversionCategory is the business-level grouping of a conversion action.
type ConversionCategory string

const (
	CategoryPhoneCall  ConversionCategory = "PHONE_CALL"
	CategoryWebsite    ConversionCategory = "WEBSITE"
	CategoryDirections ConversionCategory = "DIRECTIONS"
	CategoryOther      ConversionCategory = "OTHER"
)

// ConversionAction is a vendor-recorded outcome attributed to an ad.
// Type is the vendor-defined numeric category code; it is not portable
// across platforms, which is why classification also matches on Name.
type ConversionAction struct {
	Name                   string  `json:"name"`
	Type                   int     `json:"type"`
	Conversions            float64 `json:"conversions"`
	ConversionValue        float64 `json:"conversion_value"`
	ViewThroughConversions int64   `json:"view_through_conversions"`
}
