package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ads-insights-lab/internal/config"
	"ads-insights-lab/internal/fetch"
	"ads-insights-lab/internal/httpx"
	"ads-insights-lab/internal/insights"
	"ads-insights-lab/internal/logging"
	"ads-insights-lab/internal/observability"
	"ads-insights-lab/internal/sources/httpapi"
	"ads-insights-lab/internal/storage"
	chstore "ads-insights-lab/internal/storage/clickhouse"
	"ads-insights-lab/internal/storage/migrations"
	pgstore "ads-insights-lab/internal/storage/postgres"
)

func main() {
	_ = godotenv.Load()

	log := logging.New()
	cfg := config.FromEnv()
	metrics, registry := observability.NewMetrics("")

	provider := httpapi.New(cfg.SourceBaseURL,
		httpapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)
	orchestrator := fetch.New(fetch.Options{
		Provider: provider,
		Logger:   log,
		Metrics:  metrics,
	})
	assembler := insights.New(insights.Options{
		Orchestrator: orchestrator,
		Logger:       log,
		Metrics:      metrics,
	})

	ctx := context.Background()

	var snapshots storage.SnapshotStore
	if cfg.PostgresDSN != "" {
		pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			log.WithError(err).Fatal("postgres connection failed")
		}
		defer pool.Close()
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			log.WithError(err).Fatal("postgres migrations failed")
		}
		snapshots = pgstore.NewSnapshotStore(pool)
		log.Info("snapshot persistence enabled")
	}

	var dailyMetrics storage.DailyMetricsStore
	if cfg.ClickhouseDSN != "" {
		conn, err := migrations.RunClickhouseMigrations(ctx, cfg.ClickhouseDSN)
		if err != nil {
			log.WithError(err).Fatal("clickhouse migrations failed")
		}
		defer conn.Close()
		dailyMetrics = chstore.NewDailyMetricsStore(conn)
		log.Info("daily metrics archive enabled")
	}

	router := httpx.NewRouter(httpx.Options{
		Logger:       log,
		Assembler:    assembler,
		Config:       cfg,
		Metrics:      metrics,
		Registry:     registry,
		Snapshots:    snapshots,
		DailyMetrics: dailyMetrics,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithField("port", cfg.Port).Info("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Error("server error")
		os.Exit(1)
	}
}
