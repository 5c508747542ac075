// Package stub provides a fixed in-memory reporting provider for tests
// and fixtures. Per-source errors can be injected to exercise partial
// failure paths.
package stub

import (
	"context"

	"ads-insights-lab/internal/domain"
)

// Provider returns fixed rows per record type. A non-nil error on a field
// makes the matching fetch fail. Implements sources.Provider.
type Provider struct {
	Campaigns  []domain.RawCampaign
	Keywords   []domain.RawKeyword
	Geo        []domain.RawGeo
	Timeseries []domain.TimeSeriesPoint
	Actions    []domain.ConversionAction
	Calls      []domain.CallInteraction

	CampaignsErr  error
	KeywordsErr   error
	GeoErr        error
	TimeseriesErr error
	ActionsErr    error
	CallsErr      error
}

// FetchCampaigns returns copies of the configured campaign rows.
func (p *Provider) FetchCampaigns(_ context.Context, _ string, _ domain.DateRange) ([]domain.RawCampaign, error) {
	if p.CampaignsErr != nil {
		return nil, p.CampaignsErr
	}
	return append([]domain.RawCampaign(nil), p.Campaigns...), nil
}

// FetchKeywords returns copies of the configured keyword rows.
func (p *Provider) FetchKeywords(_ context.Context, _ string, _ domain.DateRange) ([]domain.RawKeyword, error) {
	if p.KeywordsErr != nil {
		return nil, p.KeywordsErr
	}
	return append([]domain.RawKeyword(nil), p.Keywords...), nil
}

// FetchGeo returns copies of the configured geo rows.
func (p *Provider) FetchGeo(_ context.Context, _ string, _ domain.DateRange) ([]domain.RawGeo, error) {
	if p.GeoErr != nil {
		return nil, p.GeoErr
	}
	return append([]domain.RawGeo(nil), p.Geo...), nil
}

// FetchTimeseries returns copies of the configured series points.
func (p *Provider) FetchTimeseries(_ context.Context, _ string, _ domain.DateRange) ([]domain.TimeSeriesPoint, error) {
	if p.TimeseriesErr != nil {
		return nil, p.TimeseriesErr
	}
	return append([]domain.TimeSeriesPoint(nil), p.Timeseries...), nil
}

// FetchConversionActions returns copies of the configured action rows.
func (p *Provider) FetchConversionActions(_ context.Context, _ string, _ domain.DateRange) ([]domain.ConversionAction, error) {
	if p.ActionsErr != nil {
		return nil, p.ActionsErr
	}
	return append([]domain.ConversionAction(nil), p.Actions...), nil
}

// FetchCalls returns copies of the configured call rows.
func (p *Provider) FetchCalls(_ context.Context, _ string, _ domain.DateRange) ([]domain.CallInteraction, error) {
	if p.CallsErr != nil {
		return nil, p.CallsErr
	}
	return append([]domain.CallInteraction(nil), p.Calls...), nil
}
