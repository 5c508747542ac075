package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder
	ins := r.Insights

	// Header
	sb.WriteString("# Business Insights Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Account: %s | Range: %s to %s\n\n", r.AccountID, r.RangeStart, r.RangeEnd))

	if ins.Demo {
		sb.WriteString("**Demo data.**")
		if ins.ConfigurationStatus != nil {
			sb.WriteString(fmt.Sprintf(" %s: %s", ins.ConfigurationStatus.Issue, ins.ConfigurationStatus.Message))
		}
		sb.WriteString("\n\n")
	} else if ins.ConfigurationStatus != nil {
		sb.WriteString(fmt.Sprintf("**Note:** %s: %s\n\n",
			ins.ConfigurationStatus.Issue, ins.ConfigurationStatus.Message))
	}

	// Totals
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Spend | %.2f |\n", ins.TotalSpend))
	sb.WriteString(fmt.Sprintf("| Total Conversions | %.1f |\n", ins.TotalConversions))
	sb.WriteString(fmt.Sprintf("| Average Order Value | %.2f |\n", ins.AverageOrderValue))
	sb.WriteString(fmt.Sprintf("| Cost Per Conversion | %.2f |\n", ins.CostPerConversion))
	sb.WriteString(fmt.Sprintf("| Acquisition Trend | %s |\n", ins.AcquisitionTrend))
	sb.WriteString("\n")

	// Conversion categories
	sb.WriteString("## Conversions By Type\n\n")
	sb.WriteString("| Category | Conversions |\n")
	sb.WriteString("|----------|-------------|\n")
	sb.WriteString(fmt.Sprintf("| Phone Calls | %.1f |\n", ins.ConversionsByType.PhoneCall))
	sb.WriteString(fmt.Sprintf("| Website | %.1f |\n", ins.ConversionsByType.Website))
	sb.WriteString(fmt.Sprintf("| Directions | %.1f |\n", ins.ConversionsByType.Directions))
	sb.WriteString("\n")

	// Peak days
	sb.WriteString("## Peak Days\n\n")
	if len(ins.PeakDays) > 0 {
		sb.WriteString("| Day | Conversions | Spend |\n")
		sb.WriteString("|-----|-------------|-------|\n")
		for _, d := range ins.PeakDays {
			sb.WriteString(fmt.Sprintf("| %s | %.1f | %.2f |\n", d.Day, d.Conversions, d.Spend))
		}
	} else {
		sb.WriteString("No peak day data available.\n")
	}
	sb.WriteString("\n")

	// Top campaigns
	sb.WriteString("## Top Performing Campaigns\n\n")
	if len(ins.TopCampaigns) > 0 {
		sb.WriteString("| Campaign | Conversions | Spend |\n")
		sb.WriteString("|----------|-------------|-------|\n")
		for _, c := range ins.TopCampaigns {
			sb.WriteString(fmt.Sprintf("| %s | %.1f | %.2f |\n", c.Name, c.Conversions, c.Spend))
		}
	} else {
		sb.WriteString("No campaign data available.\n")
	}
	sb.WriteString("\n")

	// Geographic hotspots
	sb.WriteString("## Geographic Hotspots\n\n")
	if len(ins.GeographicHotspots) > 0 {
		sb.WriteString("| Location | Conversions | Spend |\n")
		sb.WriteString("|----------|-------------|-------|\n")
		for _, g := range ins.GeographicHotspots {
			sb.WriteString(fmt.Sprintf("| %s | %.1f | %.2f |\n", g.Location, g.Conversions, g.Spend))
		}
	} else {
		sb.WriteString("No geographic data available.\n")
	}
	sb.WriteString("\n")

	// Top keywords
	sb.WriteString("## Top Keywords\n\n")
	if len(ins.TopKeywords) > 0 {
		if ins.KeywordsRankedBySpend {
			sb.WriteString("Ranked by spend (no keyword recorded conversions).\n\n")
		}
		sb.WriteString("| Keyword | Conversions | Spend |\n")
		sb.WriteString("|---------|-------------|-------|\n")
		for _, k := range ins.TopKeywords {
			sb.WriteString(fmt.Sprintf("| %s | %.1f | %.2f |\n", k.Text, k.Conversions, k.Spend))
		}
	} else {
		sb.WriteString("No keyword data available.\n")
	}
	sb.WriteString("\n")

	// Call interactions
	sb.WriteString("## Call Interactions\n\n")
	if len(ins.CallInteractions) > 0 {
		sb.WriteString("| Campaign | Phone Calls | Phone Impressions | Phone-Through Rate % |\n")
		sb.WriteString("|----------|-------------|-------------------|----------------------|\n")
		for _, c := range ins.CallInteractions {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.2f |\n",
				c.CampaignName, c.PhoneCalls, c.PhoneImpressions, c.PhoneThroughRate))
		}
	} else {
		sb.WriteString("No call interaction data available.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
