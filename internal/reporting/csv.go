package reporting

import (
	"fmt"
	"strings"

	"ads-insights-lab/internal/domain"
)

// RenderCampaignsCSV renders the top campaigns table as CSV string.
func RenderCampaignsCSV(campaigns []domain.TopCampaign) string {
	var sb strings.Builder

	sb.WriteString("name,channel,spend,conversions,cpa,roas\n")

	for _, c := range campaigns {
		sb.WriteString(fmt.Sprintf("%s,%s,%.2f,%.2f,%.2f,%.2f\n",
			csvField(c.Name),
			c.Channel,
			c.Spend,
			c.Conversions,
			c.CPA,
			c.ROAS,
		))
	}

	return sb.String()
}

// RenderKeywordsCSV renders the top keywords table as CSV string.
func RenderKeywordsCSV(keywords []domain.TopKeyword) string {
	var sb strings.Builder

	sb.WriteString("text,match_type,clicks,spend,conversions\n")

	for _, k := range keywords {
		sb.WriteString(fmt.Sprintf("%s,%s,%d,%.2f,%.2f\n",
			csvField(k.Text),
			k.MatchType,
			k.Clicks,
			k.Spend,
			k.Conversions,
		))
	}

	return sb.String()
}

// csvField quotes a value when it contains a comma or quote.
func csvField(v string) string {
	if strings.ContainsAny(v, ",\"\n") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}
