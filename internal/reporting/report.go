// Package reporting renders computed insights as Markdown and CSV documents.
package reporting

import (
	"time"

	"ads-insights-lab/internal/domain"
)

// Report wraps one computed insights result with its metadata.
type Report struct {
	// Metadata
	AccountID   string
	RangeStart  string // YYYY-MM-DD
	RangeEnd    string // YYYY-MM-DD
	GeneratedAt time.Time

	Insights domain.RestaurantInsights
}
