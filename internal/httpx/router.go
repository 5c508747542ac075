// Package httpx exposes the insights pipeline over HTTP.
package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"ads-insights-lab/internal/config"
	"ads-insights-lab/internal/domain"
	"ads-insights-lab/internal/insights"
	"ads-insights-lab/internal/logging"
	"ads-insights-lab/internal/money"
	"ads-insights-lab/internal/observability"
	"ads-insights-lab/internal/storage"
)

// Options wires the router's dependencies. Snapshots, DailyMetrics and
// Metrics may be nil; persistence and instrumentation are then skipped.
type Options struct {
	Logger    *logging.Logger
	Assembler *insights.Assembler
	Config    config.Config
	Metrics   *observability.Metrics
	Registry  *prometheus.Registry

	Snapshots    storage.SnapshotStore
	DailyMetrics storage.DailyMetricsStore
}

type router struct {
	log          *logging.Logger
	assembler    *insights.Assembler
	cfg          config.Config
	metrics      *observability.Metrics
	snapshots    storage.SnapshotStore
	dailyMetrics storage.DailyMetricsStore
}

// NewRouter builds the HTTP handler for the insights service.
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	rt := &router{
		log:          log,
		assembler:    opts.Assembler,
		cfg:          opts.Config,
		metrics:      opts.Metrics,
		snapshots:    opts.Snapshots,
		dailyMetrics: opts.DailyMetrics,
	}

	mux := chi.NewRouter()
	mux.Use(requestID)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })

	mux.Get("/insights", rt.handleInsights)

	if opts.Registry != nil {
		mux.Handle("/metrics", observability.Handler(opts.Registry))
	}

	return mux
}

// requestID ensures every request carries an X-Request-ID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (rt *router) handleInsights(w http.ResponseWriter, r *http.Request) {
	log := rt.log.WithRequest(r)

	account := r.URL.Query().Get("account")
	if account == "" {
		account = rt.cfg.AccountID
	}

	dateRange, err := rt.parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := rt.assembler.Compute(r.Context(), insights.AccountQuery{
		AccountID:  account,
		Range:      dateRange,
		Configured: rt.cfg.Configured(),
	})
	if err != nil {
		log.WithError(err).Error("insights computation failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !result.Demo {
		rt.persist(r.Context(), account, dateRange, result)
	}

	writeJSON(w, result)
}

// parseRange reads from/to query params, falling back to the configured
// trailing window when absent.
func (rt *router) parseRange(r *http.Request) (domain.DateRange, error) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" && to == "" {
		return domain.LastDays(rt.cfg.InsightsDays), nil
	}
	return domain.NewDateRange(from, to)
}

// persist archives a real computation. Failures are logged and never
// surfaced to the caller; history is best effort.
func (rt *router) persist(ctx context.Context, account string, r domain.DateRange, result *domain.RestaurantInsights) {
	if rt.snapshots != nil {
		snap := &storage.Snapshot{
			AccountID:  account,
			RangeStart: r.StartString(),
			RangeEnd:   r.EndString(),
			ComputedAt: time.Now().UTC(),
			Insights:   *result,
		}
		if err := rt.snapshots.Insert(ctx, snap); err != nil {
			rt.log.WithError(err).Warn("failed to store insights snapshot")
		} else if rt.metrics != nil {
			rt.metrics.SnapshotsStored.Inc()
		}
	}

	if rt.dailyMetrics != nil && len(result.SeasonalTrends) > 0 {
		rows, err := dailyRows(account, result.SeasonalTrends)
		if err != nil {
			rt.log.WithError(err).Warn("failed to build daily metric rows")
			return
		}
		if err := rt.dailyMetrics.InsertBulk(ctx, rows); err != nil {
			rt.log.WithError(err).Warn("failed to archive daily metrics")
		} else if rt.metrics != nil {
			rt.metrics.DailyMetricsArchived.Add(float64(len(rows)))
		}
	}
}

// dailyRows converts the normalized time series into archive rows.
func dailyRows(account string, series []domain.TimeSeriesPoint) ([]*storage.DailyMetricRow, error) {
	rows := make([]*storage.DailyMetricRow, 0, len(series))
	for _, p := range series {
		spend, err := money.ToCurrency(p.CostMicros)
		if err != nil {
			return nil, err
		}
		rows = append(rows, &storage.DailyMetricRow{
			AccountID:   account,
			Date:        p.Date,
			Impressions: p.Impressions,
			Clicks:      p.Clicks,
			Spend:       spend,
			Conversions: p.Conversions,
		})
	}
	return rows, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
