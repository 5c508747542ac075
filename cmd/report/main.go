package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"ads-insights-lab/internal/config"
	"ads-insights-lab/internal/domain"
	"ads-insights-lab/internal/fetch"
	"ads-insights-lab/internal/insights"
	"ads-insights-lab/internal/logging"
	"ads-insights-lab/internal/money"
	"ads-insights-lab/internal/reporting"
	"ads-insights-lab/internal/sources/httpapi"
	"ads-insights-lab/internal/storage"
	chstore "ads-insights-lab/internal/storage/clickhouse"
	"ads-insights-lab/internal/storage/migrations"
	pgstore "ads-insights-lab/internal/storage/postgres"
)

func main() {
	_ = godotenv.Load()

	outputDir := flag.String("output-dir", "reports", "Output directory for generated files")
	account := flag.String("account", "", "Account ID (defaults to ADS_ACCOUNT_ID)")
	from := flag.String("from", "", "Range start YYYY-MM-DD (defaults to trailing window)")
	to := flag.String("to", "", "Range end YYYY-MM-DD")
	useFixtures := flag.Bool("use-fixtures", false, "Render the built-in demo dataset instead of fetching")
	flag.Parse()

	log := logging.New()
	cfg := config.FromEnv()
	if *account == "" {
		*account = cfg.AccountID
	}

	ctx := context.Background()

	dateRange, err := resolveRange(cfg, *from, *to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := &reporting.Report{
		AccountID:   *account,
		RangeStart:  dateRange.StartString(),
		RangeEnd:    dateRange.EndString(),
		GeneratedAt: time.Now().UTC(),
	}

	if *useFixtures {
		// Fixed clock keeps fixture output byte-stable across runs.
		report.GeneratedAt = time.Date(2025, 6, 28, 12, 0, 0, 0, time.UTC)
		report.Insights = *insights.DemoInsights()
	} else {
		result, err := computeLive(ctx, log, cfg, *account, dateRange)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing insights: %v\n", err)
			os.Exit(1)
		}
		report.Insights = *result

		if !result.Demo {
			if err := persist(ctx, log, cfg, *account, dateRange, result); err != nil {
				fmt.Fprintf(os.Stderr, "Error persisting results: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if err := writeFiles(*outputDir, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Insights report generated successfully:")
	fmt.Printf("  - %s/REPORT.md\n", *outputDir)
	fmt.Printf("  - %s/TOP_CAMPAIGNS.csv\n", *outputDir)
	fmt.Printf("  - %s/TOP_KEYWORDS.csv\n", *outputDir)
}

// resolveRange applies the trailing default window unless both ends are given.
func resolveRange(cfg config.Config, from, to string) (domain.DateRange, error) {
	if from == "" && to == "" {
		return domain.LastDays(cfg.InsightsDays), nil
	}
	return domain.NewDateRange(from, to)
}

// computeLive runs the full pipeline against the configured provider.
func computeLive(ctx context.Context, log *logging.Logger, cfg config.Config, account string, r domain.DateRange) (*domain.RestaurantInsights, error) {
	provider := httpapi.New(cfg.SourceBaseURL,
		httpapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)
	orchestrator := fetch.New(fetch.Options{Provider: provider, Logger: log})
	assembler := insights.New(insights.Options{Orchestrator: orchestrator, Logger: log})

	return assembler.Compute(ctx, insights.AccountQuery{
		AccountID:  account,
		Range:      r,
		Configured: cfg.Configured(),
	})
}

// persist stores the snapshot and daily archive for any DSN that is set.
func persist(ctx context.Context, log *logging.Logger, cfg config.Config, account string, r domain.DateRange, result *domain.RestaurantInsights) error {
	if cfg.PostgresDSN != "" {
		pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer pool.Close()
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			return fmt.Errorf("postgres migrations: %w", err)
		}

		snap := &storage.Snapshot{
			AccountID:  account,
			RangeStart: r.StartString(),
			RangeEnd:   r.EndString(),
			ComputedAt: time.Now().UTC(),
			Insights:   *result,
		}
		if err := pgstore.NewSnapshotStore(pool).Insert(ctx, snap); err != nil {
			return fmt.Errorf("store snapshot: %w", err)
		}
		log.Info("snapshot stored")
	}

	if cfg.ClickhouseDSN != "" && len(result.SeasonalTrends) > 0 {
		conn, err := migrations.RunClickhouseMigrations(ctx, cfg.ClickhouseDSN)
		if err != nil {
			return fmt.Errorf("clickhouse migrations: %w", err)
		}
		defer conn.Close()

		rows := make([]*storage.DailyMetricRow, 0, len(result.SeasonalTrends))
		for _, p := range result.SeasonalTrends {
			spend, err := money.ToCurrency(p.CostMicros)
			if err != nil {
				return fmt.Errorf("normalize daily spend: %w", err)
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
		if err := chstore.NewDailyMetricsStore(conn).InsertBulk(ctx, rows); err != nil {
			return fmt.Errorf("archive daily metrics: %w", err)
		}
		log.WithField("rows", len(rows)).Info("daily metrics archived")
	}

	return nil
}

// writeFiles renders and writes all output documents.
func writeFiles(dir string, report *reporting.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := map[string]string{
		"REPORT.md":         reporting.RenderMarkdown(report),
		"TOP_CAMPAIGNS.csv": reporting.RenderCampaignsCSV(report.Insights.TopCampaigns),
		"TOP_KEYWORDS.csv":  reporting.RenderKeywordsCSV(report.Insights.TopKeywords),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
