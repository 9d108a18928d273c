package model

// DocFileName is the canonical name for a documentation file placed next
// to the test module it describes. Prefixed variants such as
// "images.testdoc.yaml" are also recognized by the scanner.
const DocFileName = "testdoc.yaml"

// TestDocumentation is the per-module documentation record.
// One record is authored per accessibility test module, describing what
// the module checks, the shape of the results it produces, and how to
// remediate each issue it can raise.
//
// The record is authored once (manually or via the scaffold command),
// revised whenever the module's behavior changes, and read - never
// mutated - by collection and reporting tooling.
//
// Design decision: Field tags keep the original camelCase key names so
// records authored for other consumers of this convention remain
// byte-compatible. The YAML and JSON views of a record are identical.
type TestDocumentation struct {
	// TestName is the human-readable name of the test module,
	// e.g. "Image Accessibility Analysis".
	TestName string `yaml:"testName" json:"testName"`

	// Description is free text explaining what the module evaluates.
	Description string `yaml:"description" json:"description"`

	// Version is the semantic version of the documentation itself,
	// not of the test module. Bump it whenever the record is revised.
	Version string `yaml:"version" json:"version"`

	// Date is the ISO date (YYYY-MM-DD) of the last revision.
	Date string `yaml:"date" json:"date"`

	// DataSchema maps result-field names to free-text descriptions of
	// what the test module stores under each field. Keys are unique;
	// order is irrelevant.
	DataSchema map[string]string `yaml:"dataSchema" json:"dataSchema"`

	// Tests is the ordered list of sub-tests the module performs.
	Tests []TestEntry `yaml:"tests" json:"tests"`
}

// TestEntry documents a single sub-test within a module.
type TestEntry struct {
	// ID uniquely identifies the sub-test within its module,
	// e.g. "image-alt-presence".
	ID string `yaml:"id" json:"id"`

	// Name is the human-readable name of the sub-test.
	Name string `yaml:"name" json:"name"`

	// Description explains what the sub-test checks.
	Description string `yaml:"description" json:"description"`

	// Impact is the accessibility impact level: high, medium, or low.
	Impact Impact `yaml:"impact" json:"impact"`

	// WCAGCriteria lists the WCAG success criteria this sub-test maps to,
	// as dotted identifiers like "1.1.1". Order is meaningful and
	// preserved in reports.
	WCAGCriteria []string `yaml:"wcagCriteria" json:"wcagCriteria"`

	// HowToFix is free-text remediation guidance shown in reports.
	HowToFix string `yaml:"howToFix" json:"howToFix"`

	// ResultsFields maps dotted result paths (rooted in a DataSchema key,
	// e.g. "details.summary.missingAlt") to descriptions of what each
	// path contains when this sub-test runs.
	ResultsFields map[string]string `yaml:"resultsFields" json:"resultsFields"`
}

// TestIDs returns the sub-test identifiers in document order.
// Duplicates are preserved; uniqueness is the validator's concern.
func (d *TestDocumentation) TestIDs() []string {
	ids := make([]string, 0, len(d.Tests))
	for _, t := range d.Tests {
		ids = append(ids, t.ID)
	}
	return ids
}

// CriteriaUnion returns the deduplicated set of WCAG criteria referenced
// anywhere in the record, in first-seen order.
func (d *TestDocumentation) CriteriaUnion() []string {
	seen := make(map[string]bool)
	var union []string
	for _, t := range d.Tests {
		for _, c := range t.WCAGCriteria {
			if !seen[c] {
				seen[c] = true
				union = append(union, c)
			}
		}
	}
	return union
}

// CountByImpact returns the number of sub-tests per impact level.
// Non-canonical impact values are counted under their raw string so the
// caller can surface them rather than silently dropping them.
func (d *TestDocumentation) CountByImpact() map[Impact]int {
	counts := make(map[Impact]int)
	for _, t := range d.Tests {
		counts[t.Impact]++
	}
	return counts
}
