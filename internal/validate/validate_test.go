package validate

import (
	"testing"

	"github.com/bobdodd/a11ydoc/internal/model"
)

// cleanDoc returns a record that passes validation with no findings.
func cleanDoc() *model.TestDocumentation {
	return &model.TestDocumentation{
		TestName:    "Image Accessibility Analysis",
		Description: "Evaluates images for proper alternative text.",
		Version:     "1.1.0",
		Date:        "2025-03-19",
		DataSchema: map[string]string{
			"pageFlags": "Boolean flags indicating presence of key issues",
			"details":   "Detailed per-image results",
		},
		Tests: []model.TestEntry{
			{
				ID:           "image-alt-presence",
				Name:         "Alternative Text Presence",
				Description:  "Checks whether all non-decorative images have an alt attribute.",
				Impact:       model.ImpactHigh,
				WCAGCriteria: []string{"1.1.1"},
				HowToFix:     "Add an alt attribute to all meaningful images.",
				ResultsFields: map[string]string{
					"pageFlags.hasImagesWithoutAlt": "Indicates if any images are missing alt attributes",
				},
			},
		},
	}
}

// findRule returns the findings raised for a specific rule.
func findRule(findings []model.Finding, rule string) []model.Finding {
	var matched []model.Finding
	for _, f := range findings {
		if f.Rule == rule {
			matched = append(matched, f)
		}
	}
	return matched
}

// TestValidateCleanRecord tests that a conforming record produces no findings.
func TestValidateCleanRecord(t *testing.T) {
	t.Parallel()

	findings := New().Validate(cleanDoc())
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %d: %v", len(findings), findings)
	}
}

// TestValidateIdentityFields tests record-level identity checks.
func TestValidateIdentityFields(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(*model.TestDocumentation)
		rule     string
		severity model.Severity
	}{
		{
			name:     "missing test name",
			mutate:   func(d *model.TestDocumentation) { d.TestName = "" },
			rule:     model.RuleNameMissing,
			severity: model.SeverityError,
		},
		{
			name:     "whitespace test name",
			mutate:   func(d *model.TestDocumentation) { d.TestName = "   " },
			rule:     model.RuleNameMissing,
			severity: model.SeverityError,
		},
		{
			name:     "missing description",
			mutate:   func(d *model.TestDocumentation) { d.Description = "" },
			rule:     model.RuleDescriptionMissing,
			severity: model.SeverityWarning,
		},
		{
			name:     "missing version",
			mutate:   func(d *model.TestDocumentation) { d.Version = "" },
			rule:     model.RuleVersionMissing,
			severity: model.SeverityError,
		},
		{
			name:     "malformed version",
			mutate:   func(d *model.TestDocumentation) { d.Version = "v1.1.0-beta" },
			rule:     model.RuleVersionMalformed,
			severity: model.SeverityWarning,
		},
		{
			name:     "missing date",
			mutate:   func(d *model.TestDocumentation) { d.Date = "" },
			rule:     model.RuleDateMissing,
			severity: model.SeverityError,
		},
		{
			name:     "malformed date",
			mutate:   func(d *model.TestDocumentation) { d.Date = "03/19/2025" },
			rule:     model.RuleDateMalformed,
			severity: model.SeverityWarning,
		},
		{
			name:     "impossible date",
			mutate:   func(d *model.TestDocumentation) { d.Date = "2025-13-45" },
			rule:     model.RuleDateMalformed,
			severity: model.SeverityWarning,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := cleanDoc()
			tc.mutate(doc)

			matched := findRule(New().Validate(doc), tc.rule)
			if len(matched) != 1 {
				t.Fatalf("expected 1 finding for %s, got %d", tc.rule, len(matched))
			}
			if matched[0].Severity != tc.severity {
				t.Errorf("severity = %v, expected %v", matched[0].Severity, tc.severity)
			}
		})
	}
}

// TestValidateTestEntries tests sub-test level checks.
func TestValidateTestEntries(t *testing.T) {
	t.Parallel()

	t.Run("empty tests", func(t *testing.T) {
		t.Parallel()

		doc := cleanDoc()
		doc.Tests = nil

		matched := findRule(New().Validate(doc), model.RuleTestsEmpty)
		if len(matched) != 1 {
			t.Fatalf("expected tests-empty finding, got %v", matched)
		}
		if matched[0].Severity != model.SeverityError {
			t.Errorf("expected error severity, got %v", matched[0].Severity)
		}
	})

	t.Run("duplicate test ids", func(t *testing.T) {
		t.Parallel()

		doc := cleanDoc()
		dup := doc.Tests[0]
		doc.Tests = append(doc.Tests, dup)

		matched := findRule(New().Validate(doc), model.RuleTestIDDuplicate)
		if len(matched) != 1 {
			t.Fatalf("expected 1 duplicate-id finding, got %d", len(matched))
		}
		if matched[0].Value != "image-alt-presence" {
			t.Errorf("unexpected value: %q", matched[0].Value)
		}
		if matched[0].Field != "tests[1].id" {
			t.Errorf("unexpected field: %q", matched[0].Field)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()

		doc := cleanDoc()
		doc.Tests[0].ID = ""

		if len(findRule(New().Validate(doc), model.RuleTestIDMissing)) != 1 {
			t.Error("expected test-id-missing finding")
		}
	})
}

// TestValidateImpact tests impact value checks.
func TestValidateImpact(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		impact model.Impact
		rule   string
	}{
		{"missing", model.Impact(""), model.RuleImpactMissing},
		{"invalid", model.Impact("critical"), model.RuleImpactInvalid},
		{"non-canonical case", model.Impact("High"), model.RuleImpactNonCanonical},
		{"padded", model.Impact(" high"), model.RuleImpactNonCanonical},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := cleanDoc()
			doc.Tests[0].Impact = tc.impact

			matched := findRule(New().Validate(doc), tc.rule)
			if len(matched) != 1 {
				t.Fatalf("expected 1 finding for %s, got %d", tc.rule, len(matched))
			}
			if matched[0].TestID != "image-alt-presence" {
				t.Errorf("unexpected test id: %q", matched[0].TestID)
			}
		})
	}

	t.Run("valid impacts produce no findings", func(t *testing.T) {
		t.Parallel()

		for _, impact := range model.Impacts {
			doc := cleanDoc()
			doc.Tests[0].Impact = impact

			findings := New().Validate(doc)
			if len(findings) != 0 {
				t.Errorf("impact %q: expected no findings, got %v", impact, findings)
			}
		}
	})
}

// TestValidateCriteria tests WCAG criterion checks.
func TestValidateCriteria(t *testing.T) {
	t.Parallel()

	t.Run("malformed criterion is an error", func(t *testing.T) {
		t.Parallel()

		doc := cleanDoc()
		doc.Tests[0].WCAGCriteria = []string{"1.1"}

		matched := findRule(New().Validate(doc), model.RuleCriterionMalformed)
		if len(matched) != 1 {
			t.Fatalf("expected malformed-criterion finding, got %v", matched)
		}
		if matched[0].Severity != model.SeverityError {
			t.Errorf("expected error severity, got %v", matched[0].Severity)
		}
	})

	t.Run("unknown criterion is a warning", func(t *testing.T) {
		t.Parallel()

		doc := cleanDoc()
		doc.Tests[0].WCAGCriteria = []string{"9.9.9"}

		matched := findRule(New().Validate(doc), model.RuleCriterionUnknown)
		if len(matched) != 1 {
			t.Fatalf("expected unknown-criterion finding, got %v", matched)
		}
		if matched[0].Severity != model.SeverityWarning {
			t.Errorf("expected warning severity, got %v", matched[0].Severity)
		}
	})

	t.Run("empty criteria is a warning", func(t *testing.T) {
		t.Parallel()

		doc := cleanDoc()
		doc.Tests[0].WCAGCriteria = nil

		if len(findRule(New().Validate(doc), model.RuleCriteriaEmpty)) != 1 {
			t.Error("expected empty-criteria finding")
		}
	})
}

// TestValidateResultsFields tests dotted result path checks.
func TestValidateResultsFields(t *testing.T) {
	t.Parallel()

	t.Run("unrooted path", func(t *testing.T) {
		t.Parallel()

		doc := cleanDoc()
		doc.Tests[0].ResultsFields = map[string]string{
			"nosuchroot.count": "Count of something undocumented",
		}

		matched := findRule(New().Validate(doc), model.RuleResultsFieldUnrooted)
		if len(matched) != 1 {
			t.Fatalf("expected unrooted-path finding, got %v", matched)
		}
		if matched[0].Value != "nosuchroot.count" {
			t.Errorf("unexpected value: %q", matched[0].Value)
		}
	})

	t.Run("dotted schema keys root deeper paths", func(t *testing.T) {
		t.Parallel()

		doc := cleanDoc()
		doc.DataSchema = map[string]string{
			"pageFlags":          "Boolean flags indicating presence of key issues",
			"details.summary":    "Aggregated statistics about image accessibility",
			"details.violations": "List of images with accessibility violations",
		}
		doc.Tests[0].ResultsFields = map[string]string{
			"details.summary.missingAlt": "Count of images missing alt attributes",
			"details.violations":         "List of images with missing alt attributes",
		}

		if matched := findRule(New().Validate(doc), model.RuleResultsFieldUnrooted); len(matched) != 0 {
			t.Errorf("expected no unrooted-path findings, got %v", matched)
		}
	})

	t.Run("dotted path not covered by any schema key", func(t *testing.T) {
		t.Parallel()

		doc := cleanDoc()
		doc.DataSchema = map[string]string{
			"details.summary": "Aggregated statistics",
		}
		doc.Tests[0].ResultsFields = map[string]string{
			"details.violations": "List of violations",
		}

		matched := findRule(New().Validate(doc), model.RuleResultsFieldUnrooted)
		if len(matched) != 1 {
			t.Fatalf("expected unrooted-path finding, got %v", matched)
		}
		if matched[0].Value != "details.violations" {
			t.Errorf("unexpected value: %q", matched[0].Value)
		}
	})

	t.Run("skipped when data schema is empty", func(t *testing.T) {
		t.Parallel()

		doc := cleanDoc()
		doc.DataSchema = nil

		findings := New().Validate(doc)
		if len(findRule(findings, model.RuleResultsFieldUnrooted)) != 0 {
			t.Error("expected no unrooted-path findings without a data schema")
		}
		if len(findRule(findings, model.RuleDataSchemaEmpty)) != 1 {
			t.Error("expected empty-data-schema finding")
		}
	})
}

// TestIgnoredRules tests rule suppression.
func TestIgnoredRules(t *testing.T) {
	t.Parallel()

	doc := cleanDoc()
	doc.Tests[0].HowToFix = ""
	doc.Tests[0].WCAGCriteria = nil

	v := New(WithIgnoredRules([]string{model.RuleHowToFixMissing}))
	findings := v.Validate(doc)

	if len(findRule(findings, model.RuleHowToFixMissing)) != 0 {
		t.Error("expected how-to-fix findings to be suppressed")
	}
	if len(findRule(findings, model.RuleCriteriaEmpty)) != 1 {
		t.Error("expected non-suppressed rules to still fire")
	}
}

// TestPromoteWarnings tests strict-mode promotion.
func TestPromoteWarnings(t *testing.T) {
	t.Parallel()

	doc := cleanDoc()
	doc.Description = ""
	doc.Tests[0].WCAGCriteria = []string{"1.1"}

	findings := New().Validate(doc)
	promoted := PromoteWarnings(findings)

	if len(promoted) != len(findings) {
		t.Fatalf("expected %d findings, got %d", len(findings), len(promoted))
	}
	for _, f := range promoted {
		if f.Severity == model.SeverityWarning {
			t.Errorf("finding %s still a warning after promotion", f.Rule)
		}
	}
}

// TestFindingsDeterministic tests that repeated validation yields the
// same findings in the same order.
func TestFindingsDeterministic(t *testing.T) {
	t.Parallel()

	doc := cleanDoc()
	doc.DataSchema["zebra"] = ""
	doc.DataSchema["alpha"] = ""
	doc.Tests[0].ResultsFields = map[string]string{
		"zzz.count": "undocumented",
		"aaa.count": "undocumented",
	}

	first := New().Validate(doc)
	second := New().Validate(doc)

	if len(first) != len(second) {
		t.Fatalf("finding counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Rule != second[i].Rule || first[i].Field != second[i].Field || first[i].Value != second[i].Value {
			t.Errorf("finding %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}
