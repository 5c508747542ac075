// Package sources defines the provider-side fetch capabilities consumed
// by the pipeline. Each record type has its own source so providers can
// fail independently; retry and timeout policy belongs to the adapter
// implementations, never to the callers.
package sources

import (
	"context"

	"ads-insights-lab/internal/domain"
)

// CampaignSource provides campaign performance rows for a date range.
type CampaignSource interface {
	FetchCampaigns(ctx context.Context, accountID string, r domain.DateRange) ([]domain.RawCampaign, error)
}

// KeywordSource provides keyword performance rows for a date range.
type KeywordSource interface {
	FetchKeywords(ctx context.Context, accountID string, r domain.DateRange) ([]domain.RawKeyword, error)
}

// GeoSource provides geographic performance rows for a date range.
type GeoSource interface {
	FetchGeo(ctx context.Context, accountID string, r domain.DateRange) ([]domain.RawGeo, error)
}

// TimeseriesSource provides the daily account series for a date range.
// Rows may be unordered; consumers enforce ascending date order.
type TimeseriesSource interface {
	FetchTimeseries(ctx context.Context, accountID string, r domain.DateRange) ([]domain.TimeSeriesPoint, error)
}

// ConversionActionSource provides conversion-action rows for a date range.
type ConversionActionSource interface {
	FetchConversionActions(ctx context.Context, accountID string, r domain.DateRange) ([]domain.ConversionAction, error)
}

// CallSource provides call-interaction rows for a date range.
type CallSource interface {
	FetchCalls(ctx context.Context, accountID string, r domain.DateRange) ([]domain.CallInteraction, error)
}

// Provider bundles the six capabilities a reporting backend must offer.
type Provider interface {
	CampaignSource
	KeywordSource
	GeoSource
	TimeseriesSource
	ConversionActionSource
	CallSource
}
