// Package ranking selects top-N entities with a two-tier metric fallback.
//
// Some campaign types (keyword-less, AI-driven targeting) legitimately
// report zero attributable conversions per keyword while still spending
// budget. Ranking by the outcome metric alone would then produce an empty
// list, so the selector degrades to a secondary metric over the full set
// and reports which tier produced the result.
package ranking

import "sort"

// Keys supplies the ranking metrics and a deterministic tiebreak label
// for one entity type.
type Keys[T any] struct {
	Primary   func(T) float64 // outcome metric, e.g. conversions
	Secondary func(T) float64 // fallback metric, e.g. spend
	Label     func(T) string  // stable tiebreak, e.g. entity name
}

// SelectTop returns up to n entities ranked descending by the primary
// metric when any entity has a positive primary value; otherwise it ranks
// the full set by the secondary metric and reports usedSecondary=true so
// the caller can label the list accurately.
func SelectTop[T any](entities []T, n int, keys Keys[T]) (ranked []T, usedSecondary bool) {
	if n <= 0 {
		return nil, false
	}

	var withPrimary []T
	for _, e := range entities {
		if keys.Primary(e) > 0 {
			withPrimary = append(withPrimary, e)
		}
	}

	metric := keys.Primary
	pool := withPrimary
	if len(withPrimary) == 0 {
		metric = keys.Secondary
		pool = entities
		usedSecondary = true
	}

	ranked = make([]T, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		mi, mj := metric(ranked[i]), metric(ranked[j])
		if mi != mj {
			return mi > mj
		}
		return keys.Label(ranked[i]) < keys.Label(ranked[j])
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, usedSecondary
}
