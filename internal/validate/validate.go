package validate

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/bobdodd/a11ydoc/internal/model"
	"github.com/bobdodd/a11ydoc/internal/wcag"
)

// versionPattern matches dotted numeric versions such as "1.1.0" or "2.0".
var versionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

// isoDateFormat is the required layout for the record's date field.
const isoDateFormat = "2006-01-02"

// Validator checks documentation records against the schema convention.
type Validator struct {
	// ignored contains rule identifiers whose findings are suppressed.
	ignored map[string]bool

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithIgnoredRules suppresses findings for the given rule identifiers.
// Useful for trees that intentionally deviate from part of the convention.
func WithIgnoredRules(rules []string) Option {
	return func(v *Validator) {
		for _, rule := range rules {
			v.ignored[rule] = true
		}
	}
}

// WithLogger sets a custom logger for the validator.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// New creates a Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		ignored: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = slog.Default()
	}
	return v
}

// Validate checks a documentation record and returns all findings.
// The record is never modified. Findings are ordered: record-level
// checks first, then sub-tests in document order.
func (v *Validator) Validate(doc *model.TestDocumentation) []model.Finding {
	var findings []model.Finding
	add := func(f model.Finding) {
		if v.ignored[f.Rule] {
			v.logger.Debug("suppressed finding", "rule", f.Rule, "field", f.Field)
			return
		}
		findings = append(findings, f)
	}

	v.checkIdentity(doc, add)
	v.checkDataSchema(doc, add)
	v.checkTests(doc, add)

	return findings
}

// checkIdentity validates the record-level identity fields.
func (v *Validator) checkIdentity(doc *model.TestDocumentation, add func(model.Finding)) {
	if strings.TrimSpace(doc.TestName) == "" {
		add(model.NewFinding(model.RuleNameMissing, "Missing Module Name", "").
			WithLocation("", "testName", ""))
	}
	if strings.TrimSpace(doc.Description) == "" {
		add(model.NewFinding(model.RuleDescriptionMissing, "Missing Module Description", "").
			WithLocation("", "description", ""))
	}

	switch version := strings.TrimSpace(doc.Version); {
	case version == "":
		add(model.NewFinding(model.RuleVersionMissing, "Missing Documentation Version", "").
			WithLocation("", "version", ""))
	case !versionPattern.MatchString(version):
		add(model.NewFinding(model.RuleVersionMalformed, "Malformed Documentation Version",
			fmt.Sprintf("%q is not a dotted numeric version", version)).
			WithLocation("", "version", version))
	}

	switch date := strings.TrimSpace(doc.Date); {
	case date == "":
		add(model.NewFinding(model.RuleDateMissing, "Missing Documentation Date", "").
			WithLocation("", "date", ""))
	default:
		if _, err := time.Parse(isoDateFormat, date); err != nil {
			add(model.NewFinding(model.RuleDateMalformed, "Malformed Documentation Date",
				fmt.Sprintf("%q is not an ISO date (YYYY-MM-DD)", date)).
				WithLocation("", "date", date))
		}
	}
}

// checkDataSchema validates the result-field dictionary.
func (v *Validator) checkDataSchema(doc *model.TestDocumentation, add func(model.Finding)) {
	if len(doc.DataSchema) == 0 {
		add(model.NewFinding(model.RuleDataSchemaEmpty, "Empty Data Schema", "").
			WithLocation("", "dataSchema", ""))
		return
	}

	// Map iteration order is random; sort keys for deterministic findings.
	keys := make([]string, 0, len(doc.DataSchema))
	for key := range doc.DataSchema {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.TrimSpace(doc.DataSchema[key]) == "" {
			add(model.NewFinding(model.RuleDataSchemaBlankEntry, "Blank Data Schema Description", "").
				WithLocation("", "dataSchema."+key, ""))
		}
	}
}

// checkTests validates the sub-test entries.
func (v *Validator) checkTests(doc *model.TestDocumentation, add func(model.Finding)) {
	if len(doc.Tests) == 0 {
		add(model.NewFinding(model.RuleTestsEmpty, "No Sub-Tests Documented", "").
			WithLocation("", "tests", ""))
		return
	}

	seenIDs := make(map[string]int)
	for i, test := range doc.Tests {
		field := func(name string) string { return fmt.Sprintf("tests[%d].%s", i, name) }

		id := strings.TrimSpace(test.ID)
		if id == "" {
			add(model.NewFinding(model.RuleTestIDMissing, "Missing Sub-Test ID", "").
				WithLocation("", field("id"), ""))
		} else if prev, dup := seenIDs[id]; dup {
			add(model.NewFinding(model.RuleTestIDDuplicate, "Duplicate Sub-Test ID",
				fmt.Sprintf("%q is already used by tests[%d]", id, prev)).
				WithLocation(id, field("id"), id))
		} else {
			seenIDs[id] = i
		}

		if strings.TrimSpace(test.Name) == "" {
			add(model.NewFinding(model.RuleTestNameMissing, "Missing Sub-Test Name", "").
				WithLocation(id, field("name"), ""))
		}
		if strings.TrimSpace(test.Description) == "" {
			add(model.NewFinding(model.RuleTestDescMissing, "Missing Sub-Test Description", "").
				WithLocation(id, field("description"), ""))
		}

		v.checkImpact(test.Impact, id, field("impact"), add)
		v.checkCriteria(test.WCAGCriteria, id, i, add)

		if strings.TrimSpace(test.HowToFix) == "" {
			add(model.NewFinding(model.RuleHowToFixMissing, "Missing Remediation Guidance", "").
				WithLocation(id, field("howToFix"), ""))
		}

		v.checkResultsFields(doc, test, id, i, add)
	}
}

// checkImpact validates one impact value.
func (v *Validator) checkImpact(impact model.Impact, testID, field string, add func(model.Finding)) {
	raw := string(impact)
	switch {
	case strings.TrimSpace(raw) == "":
		add(model.NewFinding(model.RuleImpactMissing, "Missing Impact Level", "").
			WithLocation(testID, field, ""))
	case impact.IsValid():
		// Canonical value, nothing to report.
	default:
		if _, ok := model.ParseImpact(raw); ok {
			add(model.NewFinding(model.RuleImpactNonCanonical, "Non-Canonical Impact Level",
				fmt.Sprintf("%q is recognized but should be lowercase", raw)).
				WithLocation(testID, field, raw))
			return
		}
		add(model.NewFinding(model.RuleImpactInvalid, "Invalid Impact Level",
			fmt.Sprintf("%q is not one of: high, medium, low", raw)).
			WithLocation(testID, field, raw))
	}
}

// checkCriteria validates the WCAG criterion references of one sub-test.
func (v *Validator) checkCriteria(criteria []string, testID string, testIndex int, add func(model.Finding)) {
	if len(criteria) == 0 {
		add(model.NewFinding(model.RuleCriteriaEmpty, "No WCAG Criteria Referenced", "").
			WithLocation(testID, fmt.Sprintf("tests[%d].wcagCriteria", testIndex), ""))
		return
	}

	for j, criterion := range criteria {
		field := fmt.Sprintf("tests[%d].wcagCriteria[%d]", testIndex, j)
		if !wcag.IsWellFormed(criterion) {
			add(model.NewFinding(model.RuleCriterionMalformed, "Malformed WCAG Criterion",
				fmt.Sprintf("%q does not match the digits-and-periods pattern", criterion)).
				WithLocation(testID, field, criterion))
			continue
		}
		if !wcag.Known(criterion) {
			add(model.NewFinding(model.RuleCriterionUnknown, "Unknown WCAG Criterion",
				fmt.Sprintf("%q is well-formed but not a registered success criterion", criterion)).
				WithLocation(testID, field, criterion))
		}
	}
}

// checkResultsFields validates one sub-test's result path dictionary.
// Paths must be rooted in a dataSchema key; the check is skipped when the
// record has no dataSchema at all, since RuleDataSchemaEmpty already
// covers that and per-path findings would only be noise.
func (v *Validator) checkResultsFields(doc *model.TestDocumentation, test model.TestEntry, testID string, testIndex int, add func(model.Finding)) {
	if len(test.ResultsFields) == 0 {
		add(model.NewFinding(model.RuleResultsFieldsEmpty, "No Result Fields Documented", "").
			WithLocation(testID, fmt.Sprintf("tests[%d].resultsFields", testIndex), ""))
		return
	}
	if len(doc.DataSchema) == 0 {
		return
	}

	paths := make([]string, 0, len(test.ResultsFields))
	for path := range test.ResultsFields {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if !rootedInSchema(doc.DataSchema, path) {
			add(model.NewFinding(model.RuleResultsFieldUnrooted, "Result Field Not Rooted In Data Schema",
				fmt.Sprintf("%q is not rooted in any dataSchema key", path)).
				WithLocation(testID, fmt.Sprintf("tests[%d].resultsFields", testIndex), path))
		}
	}
}

// rootedInSchema reports whether a result path is rooted in a dataSchema
// key. Schema keys may themselves be dotted ("details.summary"), so a path
// is rooted when some key equals it or equals a dot-delimited prefix of it
// ("details.summary" roots "details.summary.missingAlt").
func rootedInSchema(schema map[string]string, path string) bool {
	for prefix := path; prefix != ""; {
		if _, ok := schema[prefix]; ok {
			return true
		}
		i := strings.LastIndex(prefix, ".")
		if i < 0 {
			return false
		}
		prefix = prefix[:i]
	}
	return false
}

// PromoteWarnings raises every warning finding to an error.
// Used by strict mode so convention deviations fail the run.
func PromoteWarnings(findings []model.Finding) []model.Finding {
	promoted := make([]model.Finding, len(findings))
	for i, f := range findings {
		if f.Severity == model.SeverityWarning {
			f = f.Promote(model.SeverityError)
		}
		promoted[i] = f
	}
	return promoted
}
