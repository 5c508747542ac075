// Package classify maps conversion actions to business categories.
//
// Upstream platforms expose only free-text action names and vendor-specific
// numeric codes, so classification is an ordered rule chain rather than a
// lookup table. Rule order is part of the contract: the first matching rule
// wins and downstream totals assume the categories are mutually exclusive.
package classify

import (
	"strings"

	"ads-insights-lab/internal/domain"
)

// Vendor category codes observed in provider payloads.
const (
	vendorCodePhoneCall = 11
	vendorCodeWebsite   = 3
	vendorCodeLead      = 2
)

type rule struct {
	match    func(domain.ConversionAction) bool
	category domain.ConversionCategory
}

// rules is evaluated top to bottom; order must not be changed without
// revisiting every consumer of the per-category totals.
var rules = []rule{
	{
		match: func(a domain.ConversionAction) bool {
			return nameContains(a, "call") || a.Type == vendorCodePhoneCall
		},
		category: domain.CategoryPhoneCall,
	},
	{
		match: func(a domain.ConversionAction) bool {
			return nameContains(a, "page", "email", "form") ||
				a.Type == vendorCodeWebsite || a.Type == vendorCodeLead
		},
		category: domain.CategoryWebsite,
	},
	{
		match: func(a domain.ConversionAction) bool {
			return nameContains(a, "direction", "map", "location")
		},
		category: domain.CategoryDirections,
	},
}

// Classify returns the business category for a conversion action.
// Exactly one category is returned for any input.
func Classify(action domain.ConversionAction) domain.ConversionCategory {
	for _, r := range rules {
		if r.match(action) {
			return r.category
		}
	}
	return domain.CategoryOther
}

// CountByCategory sums conversions per category across a set of actions.
func CountByCategory(actions []domain.ConversionAction) domain.CategoryCounts {
	var counts domain.CategoryCounts
	for _, a := range actions {
		switch Classify(a) {
		case domain.CategoryPhoneCall:
			counts.PhoneCall += a.Conversions
		case domain.CategoryWebsite:
			counts.Website += a.Conversions
		case domain.CategoryDirections:
			counts.Directions += a.Conversions
		}
	}
	return counts
}

func nameContains(a domain.ConversionAction, substrs ...string) bool {
	name := strings.ToLower(a.Name)
	for _, s := range substrs {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}
