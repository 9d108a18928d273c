package model

import "testing"

// TestImpactIsValid tests the IsValid method of Impact.
func TestImpactIsValid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		impact   Impact
		expected bool
	}{
		{ImpactHigh, true},
		{ImpactMedium, true},
		{ImpactLow, true},
		{Impact("High"), false},
		{Impact("critical"), false},
		{Impact(""), false},
		{Impact(" high"), false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(string(tc.impact), func(t *testing.T) {
			t.Parallel()
			if tc.impact.IsValid() != tc.expected {
				t.Errorf("Impact(%q).IsValid() = %v, expected %v", tc.impact, tc.impact.IsValid(), tc.expected)
			}
		})
	}
}

// TestImpactWeight tests that impact weights order high > medium > low > unknown.
func TestImpactWeight(t *testing.T) {
	t.Parallel()

	if ImpactHigh.Weight() <= ImpactMedium.Weight() {
		t.Error("expected high weight > medium weight")
	}
	if ImpactMedium.Weight() <= ImpactLow.Weight() {
		t.Error("expected medium weight > low weight")
	}
	if ImpactLow.Weight() <= Impact("bogus").Weight() {
		t.Error("expected low weight > unknown weight")
	}
}

// TestParseImpact tests lenient impact parsing.
func TestParseImpact(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Impact
		ok       bool
	}{
		{"canonical high", "high", ImpactHigh, true},
		{"canonical medium", "medium", ImpactMedium, true},
		{"canonical low", "low", ImpactLow, true},
		{"uppercase", "HIGH", ImpactHigh, true},
		{"mixed case", "Medium", ImpactMedium, true},
		{"surrounding whitespace", "  low ", ImpactLow, true},
		{"unknown value", "critical", Impact("critical"), false},
		{"empty", "", Impact(""), false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseImpact(tc.input)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("ParseImpact(%q) = (%q, %v), expected (%q, %v)", tc.input, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

// TestImpactsOrder tests that the Impacts slice is ordered by descending weight.
func TestImpactsOrder(t *testing.T) {
	t.Parallel()

	for i := 1; i < len(Impacts); i++ {
		if Impacts[i-1].Weight() <= Impacts[i].Weight() {
			t.Errorf("expected Impacts[%d] (%s) to outweigh Impacts[%d] (%s)", i-1, Impacts[i-1], i, Impacts[i])
		}
	}
}
