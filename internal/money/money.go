// Package money converts platform micro-amounts to decimal currency.
// It is the single place in the codebase allowed to divide by 1e6; every
// dollar figure in the output must come through here so that totals
// computed from different sources cannot drift.
package money

import (
	"errors"
	"math"
)

// ErrInvalidAmount indicates a negative micro amount, which is a caller
// bug rather than an upstream data condition.
var ErrInvalidAmount = errors.New("money: negative micro amount")

const microsPerUnit = 1_000_000

// ToCurrency converts integer micros to currency rounded half-up to
// 2 decimal places.
func ToCurrency(micros int64) (float64, error) {
	if micros < 0 {
		return 0, ErrInvalidAmount
	}
	return round2(float64(micros) / microsPerUnit), nil
}

// ValueToCurrency converts a fractional micro amount (conversion values
// arrive as floats upstream) to currency rounded half-up to 2 decimals.
func ValueToCurrency(micros float64) (float64, error) {
	if micros < 0 {
		return 0, ErrInvalidAmount
	}
	return round2(micros / microsPerUnit), nil
}

// Round2 rounds a currency amount half-up to 2 decimal places.
// Exposed so derived figures (cost per conversion, average order value)
// use the same rounding rule as normalized amounts.
func Round2(v float64) float64 { return round2(v) }

func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
