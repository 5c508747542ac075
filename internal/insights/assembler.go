// Package insights composes fetch, normalization, classification, trend
// and ranking output into the final business summary.
//
// Per invocation the assembler moves through one of two one-directional
// paths: configured → fetching → assembling → real, or any failure of
// the configuration/assembly steps → demo fallback. Individual source
// failures are not failures of the pipeline; they produce a real result
// with empty sub-lists.
package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ads-insights-lab/internal/classify"
	"ads-insights-lab/internal/domain"
	"ads-insights-lab/internal/fetch"
	"ads-insights-lab/internal/logging"
	"ads-insights-lab/internal/money"
	"ads-insights-lab/internal/observability"
	"ads-insights-lab/internal/ranking"
	"ads-insights-lab/internal/trend"
)

// Configuration issues reported in the output diagnostic.
const (
	IssueNotConfigured  = "not_configured"
	IssueMissingAccount = "missing_account"
	IssueAssemblyFailed = "assembly_failed"
	IssuePartialData    = "partial_data"
)

// List caps for the ranked output sections.
const (
	topCampaignsLimit = 5
	topKeywordsLimit  = 10
	geoHotspotsLimit  = 10
)

// ErrNotConfigured marks a query without provider credentials. It is
// absorbed into the demo fallback, never returned to callers.
var ErrNotConfigured = errors.New("insights: provider not configured")

// AccountQuery is the input contract for one computation.
type AccountQuery struct {
	AccountID  string
	Range      domain.DateRange
	Configured bool
}

// Assembler runs the full pipeline for one account and window.
type Assembler struct {
	orchestrator *fetch.Orchestrator
	log          *logging.Logger
	metrics      *observability.Metrics
}

// Options configures an Assembler. Metrics may be nil.
type Options struct {
	Orchestrator *fetch.Orchestrator
	Logger       *logging.Logger
	Metrics      *observability.Metrics
}

// New creates an Assembler.
func New(opts Options) *Assembler {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Assembler{
		orchestrator: opts.Orchestrator,
		log:          log,
		metrics:      opts.Metrics,
	}
}

// Compute produces the insights summary for one account and range.
// It never returns an error for upstream unavailability: unconfigured
// accounts and assembly failures yield the demo dataset with a
// configuration diagnostic, and per-source failures yield real output
// with empty sub-lists. The returned error is reserved for programmer
// mistakes and is nil in every ordinary path.
func (a *Assembler) Compute(ctx context.Context, q AccountQuery) (*domain.RestaurantInsights, error) {
	start := time.Now()
	defer func() {
		if a.metrics != nil {
			a.metrics.AssemblySeconds.Observe(time.Since(start).Seconds())
		}
	}()

	if !q.Configured {
		a.log.WithField("account", q.AccountID).Info("provider not configured, serving demo data")
		return a.demo(IssueNotConfigured, "advertising provider credentials are not configured"), nil
	}
	if q.AccountID == "" {
		a.log.Info("no account id resolvable, serving demo data")
		return a.demo(IssueMissingAccount, "no account or property id could be resolved"), nil
	}

	batch := a.orchestrator.Fetch(ctx, q.AccountID, q.Range)

	result, err := a.assemble(batch)
	if err != nil {
		a.log.WithError(err).Error("assembly failed, serving demo data")
		return a.demo(IssueAssemblyFailed, fmt.Sprintf("failed to assemble insights: %v", err)), nil
	}

	if len(batch.Diagnostics) > 0 {
		failed := make([]string, 0, len(batch.Diagnostics))
		for _, d := range batch.Diagnostics {
			failed = append(failed, d.Source)
		}
		result.ConfigurationStatus = &domain.ConfigurationStatus{
			Issue:   IssuePartialData,
			Message: "some data sources were unavailable: " + strings.Join(failed, ", "),
		}
	}

	if a.metrics != nil {
		a.metrics.InsightsComputed.WithLabelValues("real").Inc()
	}
	return result, nil
}

// assemble builds the real result from whatever rows arrived.
func (a *Assembler) assemble(batch *fetch.Batch) (*domain.RestaurantInsights, error) {
	t, err := computeTotals(batch.Campaigns)
	if err != nil {
		return nil, fmt.Errorf("totals: %w", err)
	}

	peakDays, err := trend.PeakDays(batch.Timeseries)
	if err != nil {
		return nil, fmt.Errorf("peak days: %w", err)
	}

	topCampaigns, err := rankCampaigns(batch.Campaigns)
	if err != nil {
		return nil, fmt.Errorf("rank campaigns: %w", err)
	}

	hotspots, err := rankGeo(batch.Geo)
	if err != nil {
		return nil, fmt.Errorf("rank geo: %w", err)
	}

	topKeywords, bySpend, err := rankKeywords(batch.Keywords)
	if err != nil {
		return nil, fmt.Errorf("rank keywords: %w", err)
	}

	calls := make([]domain.CallInteraction, 0, len(batch.Calls))
	for _, c := range batch.Calls {
		c.PhoneThroughRate = domain.NormalizePhoneThroughRate(c.PhoneThroughRate)
		calls = append(calls, c)
	}

	return &domain.RestaurantInsights{
		TotalSpend:            t.Spend,
		TotalConversions:      t.Conversions,
		AverageOrderValue:     t.AverageOrderValue,
		ConversionsByType:     classify.CountByCategory(batch.Actions),
		CostPerConversion:     t.CostPerConversion,
		ConversionActions:     batch.Actions,
		PeakDays:              peakDays,
		AcquisitionTrend:      trend.Acquisition(batch.Timeseries),
		TopCampaigns:          topCampaigns,
		GeographicHotspots:    hotspots,
		SeasonalTrends:        batch.Timeseries,
		TopKeywords:           topKeywords,
		KeywordsRankedBySpend: bySpend,
		CallInteractions:      calls,
		Demo:                  false,
	}, nil
}

func rankCampaigns(campaigns []domain.RawCampaign) ([]domain.TopCampaign, error) {
	ranked, _ := ranking.SelectTop(campaigns, topCampaignsLimit, ranking.Keys[domain.RawCampaign]{
		Primary:   func(c domain.RawCampaign) float64 { return c.Conversions },
		Secondary: func(c domain.RawCampaign) float64 { return float64(c.CostMicros) },
		Label:     func(c domain.RawCampaign) string { return c.Name },
	})

	out := make([]domain.TopCampaign, 0, len(ranked))
	for _, c := range ranked {
		spend, err := money.ToCurrency(c.CostMicros)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.TopCampaign{
			Name:        c.Name,
			Channel:     string(c.Channel),
			Spend:       spend,
			Conversions: c.Conversions,
			CPA:         c.CPA,
			ROAS:        c.ROAS,
		})
	}
	return out, nil
}

func rankGeo(geo []domain.RawGeo) ([]domain.GeoHotspot, error) {
	ranked, _ := ranking.SelectTop(geo, geoHotspotsLimit, ranking.Keys[domain.RawGeo]{
		Primary:   func(g domain.RawGeo) float64 { return g.Conversions },
		Secondary: func(g domain.RawGeo) float64 { return float64(g.CostMicros) },
		Label:     func(g domain.RawGeo) string { return g.LocationName },
	})

	out := make([]domain.GeoHotspot, 0, len(ranked))
	for _, g := range ranked {
		spend, err := money.ToCurrency(g.CostMicros)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.GeoHotspot{
			Location:    g.LocationName,
			Impressions: g.Impressions,
			Clicks:      g.Clicks,
			Spend:       spend,
			Conversions: g.Conversions,
		})
	}
	return out, nil
}

func rankKeywords(keywords []domain.RawKeyword) ([]domain.TopKeyword, bool, error) {
	ranked, usedSecondary := ranking.SelectTop(keywords, topKeywordsLimit, ranking.Keys[domain.RawKeyword]{
		Primary:   func(k domain.RawKeyword) float64 { return k.Conversions },
		Secondary: func(k domain.RawKeyword) float64 { return float64(k.CostMicros) },
		Label:     func(k domain.RawKeyword) string { return k.Text },
	})

	out := make([]domain.TopKeyword, 0, len(ranked))
	for _, k := range ranked {
		spend, err := money.ToCurrency(k.CostMicros)
		if err != nil {
			return nil, false, err
		}
		out = append(out, domain.TopKeyword{
			Text:        k.Text,
			MatchType:   k.MatchType,
			Clicks:      k.Clicks,
			Spend:       spend,
			Conversions: k.Conversions,
		})
	}
	return out, usedSecondary, nil
}

// demo returns the synthetic dataset with a diagnostic and counts the
// fallback in metrics.
func (a *Assembler) demo(issue, message string) *domain.RestaurantInsights {
	if a.metrics != nil {
		a.metrics.InsightsComputed.WithLabelValues("demo").Inc()
	}
	d := DemoInsights()
	d.ConfigurationStatus = &domain.ConfigurationStatus{Issue: issue, Message: message}
	return d
}
