package classify

import (
	"testing"

	"ads-insights-lab/internal/domain"
)

func TestClassify_SpecExamples(t *testing.T) {
	cases := []struct {
		name   string
		action domain.ConversionAction
		want   domain.ConversionCategory
	}{
		{"phone call by name", domain.ConversionAction{Name: "Phone Calls from Ads", Type: 11}, domain.CategoryPhoneCall},
		{"website page", domain.ConversionAction{Name: "Thank You Page", Type: 3}, domain.CategoryWebsite},
		{"directions", domain.ConversionAction{Name: "Directions Requests", Type: 18}, domain.CategoryDirections},
		{"email is website", domain.ConversionAction{Name: "Email Contact", Type: 2}, domain.CategoryWebsite},
		{"phone by vendor code only", domain.ConversionAction{Name: "Store Interaction", Type: 11}, domain.CategoryPhoneCall},
		{"map lookup", domain.ConversionAction{Name: "Map Views", Type: 99}, domain.CategoryDirections},
		{"unmatched", domain.ConversionAction{Name: "Store Visit", Type: 99}, domain.CategoryOther},
		{"case insensitive", domain.ConversionAction{Name: "CALL NOW BUTTON", Type: 0}, domain.CategoryPhoneCall},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.action)
			if got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.action.Name, got, tc.want)
			}
		})
	}
}

// An action matching several rules takes the first matching rule only.
// "Email Directions Signup" hits the website rule before the directions
// rule; this ordering is load-bearing for per-category totals.
func TestClassify_FirstRuleWins(t *testing.T) {
	got := Classify(domain.ConversionAction{Name: "Email Directions Signup"})
	if got != domain.CategoryWebsite {
		t.Errorf("expected WEBSITE, got %s", got)
	}

	// "call" outranks everything
	got = Classify(domain.ConversionAction{Name: "Call for Directions"})
	if got != domain.CategoryPhoneCall {
		t.Errorf("expected PHONE_CALL, got %s", got)
	}
}

func TestCountByCategory(t *testing.T) {
	actions := []domain.ConversionAction{
		{Name: "Phone Calls", Type: 11, Conversions: 10},
		{Name: "Contact Form", Type: 3, Conversions: 4},
		{Name: "Directions Requests", Conversions: 6.5},
		{Name: "Store Visit", Type: 99, Conversions: 2},
	}

	counts := CountByCategory(actions)
	if counts.PhoneCall != 10 {
		t.Errorf("expected 10 phone call conversions, got %f", counts.PhoneCall)
	}
	if counts.Website != 4 {
		t.Errorf("expected 4 website conversions, got %f", counts.Website)
	}
	if counts.Directions != 6.5 {
		t.Errorf("expected 6.5 directions conversions, got %f", counts.Directions)
	}
}
