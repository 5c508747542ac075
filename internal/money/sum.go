package money

// SumCostMicros totals micro amounts selected from a slice of records and
// converts the total once, avoiding per-row rounding drift.
func SumCostMicros[T any](rows []T, cost func(T) int64) (float64, error) {
	var total int64
	for _, r := range rows {
		c := cost(r)
		if c < 0 {
			return 0, ErrInvalidAmount
		}
		total += c
	}
	return ToCurrency(total)
}

// SumConversions totals a float metric selected from a slice of records.
func SumConversions[T any](rows []T, conv func(T) float64) float64 {
	var total float64
	for _, r := range rows {
		total += conv(r)
	}
	return total
}
