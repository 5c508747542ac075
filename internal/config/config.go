// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings for the server and the report CLI.
type Config struct {
	SourceBaseURL string // advertising data API base URL; empty means not configured
	AccountID     string
	Port          string
	HTTPTimeout   time.Duration
	InsightsDays  int // trailing window length for the default date range
	PostgresDSN   string
	ClickhouseDSN string
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() Config {
	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	days := 28
	if v := os.Getenv("INSIGHTS_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	return Config{
		SourceBaseURL: os.Getenv("ADS_API_URL"),
		AccountID:     os.Getenv("ADS_ACCOUNT_ID"),
		Port:          envOr("PORT", "8080"),
		HTTPTimeout:   to,
		InsightsDays:  days,
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		ClickhouseDSN: os.Getenv("CLICKHOUSE_DSN"),
	}
}

// Configured reports whether an advertising data source is set up.
func (c Config) Configured() bool {
	return c.SourceBaseURL != ""
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
