package insights

import (
	"ads-insights-lab/internal/domain"
	"ads-insights-lab/internal/money"
)

// totals are the account-wide monetary figures. Campaign rows are the
// source of truth; the time series must agree with them because both go
// through the same normalization, which is what makes the cross-check in
// the tests meaningful.
type totals struct {
	Spend             float64
	Conversions       float64
	ConversionValue   float64
	AverageOrderValue float64
	CostPerConversion float64
}

func computeTotals(campaigns []domain.RawCampaign) (totals, error) {
	spend, err := money.SumCostMicros(campaigns, func(c domain.RawCampaign) int64 {
		return c.CostMicros
	})
	if err != nil {
		return totals{}, err
	}

	conversions := money.SumConversions(campaigns, func(c domain.RawCampaign) float64 {
		return c.Conversions
	})

	var valueMicros float64
	for _, c := range campaigns {
		valueMicros += c.ConversionValueMicros
	}
	value, err := money.ValueToCurrency(valueMicros)
	if err != nil {
		return totals{}, err
	}

	t := totals{
		Spend:           spend,
		Conversions:     conversions,
		ConversionValue: value,
	}
	if conversions > 0 {
		t.AverageOrderValue = money.Round2(value / conversions)
		t.CostPerConversion = money.Round2(spend / conversions)
	}
	return t, nil
}
