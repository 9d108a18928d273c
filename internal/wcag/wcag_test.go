package wcag

import "testing"

// TestIsWellFormed tests the criterion identifier pattern.
func TestIsWellFormed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		id       string
		expected bool
	}{
		{"1.1.1", true},
		{"1.4.13", true},
		{"4.1.2", true},
		{"9.9.9", true}, // well-formed even though unknown
		{"1.1", false},  // guideline, not criterion
		{"1", false},
		{"1.1.1.1", false},
		{"1.1.a", false},
		{"1..1", false},
		{"", false},
		{"WCAG 1.1.1", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.id, func(t *testing.T) {
			t.Parallel()
			if IsWellFormed(tc.id) != tc.expected {
				t.Errorf("IsWellFormed(%q) = %v, expected %v", tc.id, IsWellFormed(tc.id), tc.expected)
			}
		})
	}
}

// TestLookup tests registry lookups.
func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("known criterion", func(t *testing.T) {
		t.Parallel()

		c, ok := Lookup("1.1.1")
		if !ok {
			t.Fatal("expected 1.1.1 to be known")
		}
		if c.Name != "Non-text Content" {
			t.Errorf("unexpected name: %q", c.Name)
		}
		if c.Level != LevelA {
			t.Errorf("unexpected level: %q", c.Level)
		}
	})

	t.Run("unknown criterion", func(t *testing.T) {
		t.Parallel()

		if _, ok := Lookup("9.9.9"); ok {
			t.Error("expected 9.9.9 to be unknown")
		}
		if Known("9.9.9") {
			t.Error("expected Known to be false for 9.9.9")
		}
	})
}

// TestName tests display name rendering.
func TestName(t *testing.T) {
	t.Parallel()

	if got := Name("4.1.2"); got != "4.1.2 Name, Role, Value" {
		t.Errorf("Name(4.1.2) = %q", got)
	}
	if got := Name("9.9.9"); got != "9.9.9" {
		t.Errorf("expected bare identifier for unknown criterion, got %q", got)
	}
}

// TestPrinciple tests principle derivation from the leading digit.
func TestPrinciple(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		id       string
		expected string
	}{
		{"1.1.1", "Perceivable"},
		{"2.4.7", "Operable"},
		{"3.3.2", "Understandable"},
		{"4.1.2", "Robust"},
		{"5.1.1", "Principle 5"},
		{"bogus", ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.id, func(t *testing.T) {
			t.Parallel()
			if got := Principle(tc.id); got != tc.expected {
				t.Errorf("Principle(%q) = %q, expected %q", tc.id, got, tc.expected)
			}
		})
	}
}

// TestAllSorted tests numeric ordering of the full registry.
func TestAllSorted(t *testing.T) {
	t.Parallel()

	criteria := All()
	if len(criteria) == 0 {
		t.Fatal("expected non-empty registry")
	}

	for i := 1; i < len(criteria); i++ {
		if !Less(criteria[i-1].ID, criteria[i].ID) {
			t.Errorf("registry not sorted: %q before %q", criteria[i-1].ID, criteria[i].ID)
		}
	}
}

// TestLessNumericOrdering tests that identifiers compare by numeric
// components rather than lexically.
func TestLessNumericOrdering(t *testing.T) {
	t.Parallel()

	if !Less("1.4.9", "1.4.10") {
		t.Error("expected 1.4.9 < 1.4.10")
	}
	if Less("2.4.10", "2.4.9") {
		t.Error("expected 2.4.10 > 2.4.9")
	}
	if !Less("1.4.13", "2.1.1") {
		t.Error("expected 1.4.13 < 2.1.1")
	}
}

// TestRegistryConsistency tests that every registry entry's key matches
// its ID and is well-formed.
func TestRegistryConsistency(t *testing.T) {
	t.Parallel()

	for id, c := range registry {
		if id != c.ID {
			t.Errorf("registry key %q does not match criterion ID %q", id, c.ID)
		}
		if !IsWellFormed(id) {
			t.Errorf("registry contains malformed identifier %q", id)
		}
		if c.Name == "" {
			t.Errorf("criterion %q has no name", id)
		}
		switch c.Level {
		case LevelA, LevelAA, LevelAAA:
		default:
			t.Errorf("criterion %q has invalid level %q", id, c.Level)
		}
	}
}
