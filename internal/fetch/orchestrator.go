// Package fetch runs the six independent data-source queries for one
// reporting window. Sources fail independently: a failure never aborts
// or blocks the others, and the join waits for all six to settle.
package fetch

import (
	"context"
	"sync"
	"time"

	"ads-insights-lab/internal/domain"
	"ads-insights-lab/internal/logging"
	"ads-insights-lab/internal/observability"
	"ads-insights-lab/internal/sources"
)

// Source names used in diagnostics and metrics labels.
const (
	SourceCampaigns         = "campaigns"
	SourceKeywords          = "keywords"
	SourceGeo               = "geo"
	SourceTimeseries        = "timeseries"
	SourceConversionActions = "conversion_actions"
	SourceCalls             = "calls"
)

// Diagnostic records one failed source. Failures are a side channel, not
// an error: downstream consumers see an empty row set instead.
type Diagnostic struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// Batch holds whatever rows arrived, with empty slices standing in for
// failed sources, plus one diagnostic per failure.
type Batch struct {
	Campaigns   []domain.RawCampaign
	Keywords    []domain.RawKeyword
	Geo         []domain.RawGeo
	Timeseries  []domain.TimeSeriesPoint
	Actions     []domain.ConversionAction
	Calls       []domain.CallInteraction
	Diagnostics []Diagnostic
}

// Failed reports whether the named source failed in this batch.
func (b *Batch) Failed(source string) bool {
	for _, d := range b.Diagnostics {
		if d.Source == source {
			return true
		}
	}
	return false
}

// Orchestrator issues the per-source fetches concurrently.
type Orchestrator struct {
	provider sources.Provider
	log      *logging.Logger
	metrics  *observability.Metrics
}

// Options configures an Orchestrator. Metrics may be nil.
type Options struct {
	Provider sources.Provider
	Logger   *logging.Logger
	Metrics  *observability.Metrics
}

// New creates an Orchestrator.
func New(opts Options) *Orchestrator {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Orchestrator{
		provider: opts.Provider,
		log:      log,
		metrics:  opts.Metrics,
	}
}

// result is the tagged outcome of one source fetch.
type result[T any] struct {
	rows []T
	err  error
}

// Fetch runs all six source queries concurrently and returns once every
// one has settled. Context cancellation propagates to all in-flight
// fetches; a cancelled fetch surfaces as that source's failure.
func (o *Orchestrator) Fetch(ctx context.Context, accountID string, r domain.DateRange) *Batch {
	var (
		wg         sync.WaitGroup
		campaigns  result[domain.RawCampaign]
		keywords   result[domain.RawKeyword]
		geo        result[domain.RawGeo]
		timeseries result[domain.TimeSeriesPoint]
		actions    result[domain.ConversionAction]
		calls      result[domain.CallInteraction]
	)

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() {
		campaigns.rows, campaigns.err = timedFetch(o, SourceCampaigns, func() ([]domain.RawCampaign, error) {
			return o.provider.FetchCampaigns(ctx, accountID, r)
		})
	})
	run(func() {
		keywords.rows, keywords.err = timedFetch(o, SourceKeywords, func() ([]domain.RawKeyword, error) {
			return o.provider.FetchKeywords(ctx, accountID, r)
		})
	})
	run(func() {
		geo.rows, geo.err = timedFetch(o, SourceGeo, func() ([]domain.RawGeo, error) {
			return o.provider.FetchGeo(ctx, accountID, r)
		})
	})
	run(func() {
		timeseries.rows, timeseries.err = timedFetch(o, SourceTimeseries, func() ([]domain.TimeSeriesPoint, error) {
			return o.provider.FetchTimeseries(ctx, accountID, r)
		})
	})
	run(func() {
		actions.rows, actions.err = timedFetch(o, SourceConversionActions, func() ([]domain.ConversionAction, error) {
			return o.provider.FetchConversionActions(ctx, accountID, r)
		})
	})
	run(func() {
		calls.rows, calls.err = timedFetch(o, SourceCalls, func() ([]domain.CallInteraction, error) {
			return o.provider.FetchCalls(ctx, accountID, r)
		})
	})

	wg.Wait()

	batch := &Batch{}
	batch.Campaigns = settle(o, SourceCampaigns, campaigns, batch)
	batch.Keywords = settle(o, SourceKeywords, keywords, batch)
	batch.Geo = settle(o, SourceGeo, geo, batch)
	batch.Timeseries = settle(o, SourceTimeseries, timeseries, batch)
	batch.Actions = settle(o, SourceConversionActions, actions, batch)
	batch.Calls = settle(o, SourceCalls, calls, batch)

	domain.SortTimeSeries(batch.Timeseries)
	return batch
}

// timedFetch wraps one fetch with metrics bookkeeping.
func timedFetch[T any](o *Orchestrator, source string, fn func() ([]T, error)) ([]T, error) {
	start := time.Now()
	rows, err := fn()
	if o.metrics != nil {
		o.metrics.SourceFetches.WithLabelValues(source).Inc()
		o.metrics.SourceFetchSeconds.WithLabelValues(source).Observe(time.Since(start).Seconds())
		if err != nil {
			o.metrics.SourceFailures.WithLabelValues(source).Inc()
		}
	}
	return rows, err
}

// settle maps a tagged result to rows-or-empty and records a diagnostic
// for a failed source.
func settle[T any](o *Orchestrator, source string, res result[T], batch *Batch) []T {
	if res.err != nil {
		o.log.WithField("source", source).WithField("reason", res.err.Error()).
			Warn("source fetch failed, continuing with empty rows")
		batch.Diagnostics = append(batch.Diagnostics, Diagnostic{Source: source, Reason: res.err.Error()})
		return nil
	}
	if res.rows == nil {
		return []T{}
	}
	return res.rows
}
