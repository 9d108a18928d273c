package model

import (
	"sort"
	"time"

	"github.com/bobdodd/a11ydoc/internal/wcag"
)

// Catalog aggregates the documentation records discovered in one run.
// It is the in-memory analogue of what collection tooling would persist:
// every module's record plus the validation findings raised against it.
type Catalog struct {
	// GeneratedAt is when the catalog was assembled.
	GeneratedAt time.Time `json:"generated_at"`

	// Roots lists the scan roots the catalog was built from.
	Roots []string `json:"roots,omitempty"`

	// Modules holds one report per discovered documentation file,
	// in scanner (path-sorted) order.
	Modules []*ModuleReport `json:"modules"`

	// Summary is the derived overview of the catalog.
	// Populated by Summarize; serialized alongside the modules so JSON
	// consumers get both detail and rollup in one document.
	Summary *CatalogSummary `json:"summary,omitempty"`
}

// CatalogSummary is a summarized, human-readable view of a catalog.
//
// Design decision: We derive a separate summary type rather than
// computing counts in each report writer because:
// 1. It gives every output format the same curated numbers
// 2. It can be serialized to JSON for tools that want rollups only
// 3. It separates presentation concerns from aggregation
type CatalogSummary struct {
	// ModuleCount is the number of documentation files discovered.
	ModuleCount int `json:"module_count"`

	// ParsedCount is the number of files that parsed successfully.
	ParsedCount int `json:"parsed_count"`

	// TestCount is the total number of documented sub-tests.
	TestCount int `json:"test_count"`

	// === Findings by severity ===

	// ErrorCount is the number of error findings.
	ErrorCount int `json:"error_count"`

	// WarningCount is the number of warning findings.
	WarningCount int `json:"warning_count"`

	// InfoCount is the number of informational findings.
	InfoCount int `json:"info_count"`

	// ModulesWithErrors is the number of modules carrying at least one
	// error finding.
	ModulesWithErrors int `json:"modules_with_errors"`

	// === Sub-tests by impact ===

	// HighCount is the number of sub-tests with high impact.
	HighCount int `json:"high_count"`

	// MediumCount is the number of sub-tests with medium impact.
	MediumCount int `json:"medium_count"`

	// LowCount is the number of sub-tests with low impact.
	LowCount int `json:"low_count"`

	// OtherImpactCount is the number of sub-tests whose impact value is
	// outside the enumerated set. Non-zero only when validation errors
	// exist.
	OtherImpactCount int `json:"other_impact_count"`

	// DuplicateNames lists module names carried by more than one parsed
	// record, sorted. Two records with the same testName would collide
	// in downstream reporting, so duplicates are surfaced here.
	DuplicateNames []string `json:"duplicate_names,omitempty"`

	// === WCAG coverage ===

	// Criteria lists every WCAG criterion referenced by the catalog,
	// sorted by numeric identifier components ("1.4.9" before "1.4.10"),
	// with how widely it is covered.
	Criteria []CriterionCoverage `json:"criteria,omitempty"`
}

// CriterionCoverage records how many modules and sub-tests reference one
// WCAG success criterion.
type CriterionCoverage struct {
	// ID is the criterion identifier, e.g. "1.1.1".
	ID string `json:"id"`

	// Modules is the number of modules referencing the criterion.
	Modules int `json:"modules"`

	// Tests is the number of sub-tests referencing the criterion.
	Tests int `json:"tests"`
}

// NewCatalog creates an empty catalog for the given scan roots.
func NewCatalog(roots ...string) *Catalog {
	return &Catalog{
		GeneratedAt: time.Now(),
		Roots:       roots,
	}
}

// Add appends a module report to the catalog.
// Nil reports are ignored so batch processing can pass through gaps left
// by cancelled work.
func (c *Catalog) Add(report *ModuleReport) {
	if report == nil {
		return
	}
	c.Modules = append(c.Modules, report)
}

// Summarize computes the catalog summary from the current module set and
// stores it on the catalog. It is safe to call repeatedly; each call
// replaces the previous summary.
func (c *Catalog) Summarize() *CatalogSummary {
	summary := &CatalogSummary{
		ModuleCount: len(c.Modules),
	}

	criterionModules := make(map[string]int)
	criterionTests := make(map[string]int)
	nameCounts := make(map[string]int)

	for _, mod := range c.Modules {
		for _, f := range mod.Findings {
			switch f.Severity {
			case SeverityError:
				summary.ErrorCount++
			case SeverityWarning:
				summary.WarningCount++
			case SeverityInfo:
				summary.InfoCount++
			}
		}
		if mod.HasErrors() {
			summary.ModulesWithErrors++
		}

		if !mod.Parsed() {
			continue
		}
		summary.ParsedCount++
		summary.TestCount += len(mod.Doc.Tests)
		if name := mod.Doc.TestName; name != "" {
			nameCounts[name]++
		}

		for _, t := range mod.Doc.Tests {
			switch t.Impact {
			case ImpactHigh:
				summary.HighCount++
			case ImpactMedium:
				summary.MediumCount++
			case ImpactLow:
				summary.LowCount++
			default:
				summary.OtherImpactCount++
			}
			for _, criterion := range t.WCAGCriteria {
				criterionTests[criterion]++
			}
		}
		for _, criterion := range mod.Doc.CriteriaUnion() {
			criterionModules[criterion]++
		}
	}

	for name, count := range nameCounts {
		if count > 1 {
			summary.DuplicateNames = append(summary.DuplicateNames, name)
		}
	}
	sort.Strings(summary.DuplicateNames)

	for id, tests := range criterionTests {
		summary.Criteria = append(summary.Criteria, CriterionCoverage{
			ID:      id,
			Modules: criterionModules[id],
			Tests:   tests,
		})
	}
	sort.Slice(summary.Criteria, func(i, j int) bool {
		return wcag.Less(summary.Criteria[i].ID, summary.Criteria[j].ID)
	})

	c.Summary = summary
	return summary
}

// Findings returns all findings across the catalog, in module order.
func (c *Catalog) Findings() []Finding {
	var findings []Finding
	for _, mod := range c.Modules {
		findings = append(findings, mod.Findings...)
	}
	return findings
}

// FindingsBySeverity returns all findings with the given severity.
func (c *Catalog) FindingsBySeverity(severity Severity) []Finding {
	var result []Finding
	for _, f := range c.Findings() {
		if f.Severity == severity {
			result = append(result, f)
		}
	}
	return result
}

// TotalFindings returns the total number of findings in the catalog.
func (c *Catalog) TotalFindings() int {
	total := 0
	for _, mod := range c.Modules {
		total += len(mod.Findings)
	}
	return total
}

// HasFindings reports whether the catalog contains any findings.
func (c *Catalog) HasFindings() bool {
	return c.TotalFindings() > 0
}

// HasErrors reports whether any module report contains an error finding.
func (c *Catalog) HasErrors() bool {
	for _, mod := range c.Modules {
		if mod.HasErrors() {
			return true
		}
	}
	return false
}
