package model

// Severity represents how serious a schema validation finding is.
// It determines whether a documentation record is rejected outright or
// merely flagged for cleanup.
//
// Design decision: We use iota-based constants rather than string
// constants for efficiency in comparisons and sorting. The String()
// method provides human-readable output when needed.
type Severity int

const (
	// SeverityInfo indicates purely informational findings.
	// Examples: notes about normalized values.
	// These never affect the exit status.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a record that downstream tooling can
	// still consume, but that deviates from the convention.
	// Examples: blank descriptions, unknown WCAG criteria.
	// Warnings become errors when strict mode is enabled.
	SeverityWarning

	// SeverityError indicates a record that violates a hard invariant
	// and should not be ingested by collection tooling.
	// Examples: duplicate test IDs, invalid impact values.
	SeverityError
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// RuleInfo contains metadata about a validation rule including severity,
// a summary of why the rule matters, and remediation guidance.
type RuleInfo struct {
	Severity       Severity
	Summary        string
	Recommendation string
}

// Validation rule identifiers. Each rule that the validator can raise has
// a stable identifier so findings can be filtered, suppressed via
// configuration, and tracked across runs.
const (
	RuleParseError           = "doc-parse-error"
	RuleUnknownField         = "doc-unknown-field"
	RuleNameMissing          = "module-name-missing"
	RuleDescriptionMissing   = "module-description-missing"
	RuleVersionMissing       = "version-missing"
	RuleVersionMalformed     = "version-malformed"
	RuleDateMissing          = "date-missing"
	RuleDateMalformed        = "date-malformed"
	RuleDataSchemaEmpty      = "data-schema-empty"
	RuleDataSchemaBlankEntry = "data-schema-blank-entry"
	RuleTestsEmpty           = "tests-empty"
	RuleTestIDMissing        = "test-id-missing"
	RuleTestIDDuplicate      = "test-id-duplicate"
	RuleTestNameMissing      = "test-name-missing"
	RuleTestDescMissing      = "test-description-missing"
	RuleImpactMissing        = "impact-missing"
	RuleImpactInvalid        = "impact-invalid"
	RuleImpactNonCanonical   = "impact-noncanonical"
	RuleCriteriaEmpty        = "wcag-criteria-empty"
	RuleCriterionMalformed   = "wcag-criterion-malformed"
	RuleCriterionUnknown     = "wcag-criterion-unknown"
	RuleHowToFixMissing      = "how-to-fix-missing"
	RuleResultsFieldsEmpty   = "results-fields-empty"
	RuleResultsFieldUnrooted = "results-field-unrooted"
)

// ruleInfoMapping maps validation rule identifiers to their metadata.
// This centralized mapping ensures consistent severity assignment across
// the application.
//
// Design decision: We use a map rather than embedding severity in each
// finding because:
// 1. It allows tuning severities without touching the validator logic
// 2. It provides a single source of truth for rule semantics
// 3. It makes it easy to generate rule documentation
var ruleInfoMapping = map[string]RuleInfo{
	// ERROR - the record must not be ingested as-is
	RuleParseError: {
		Severity:       SeverityError,
		Summary:        "The documentation file could not be parsed, so no metadata is available for this module.",
		Recommendation: "Fix the YAML syntax. Run 'a11ydoc scaffold' to regenerate a well-formed template if needed.",
	},
	RuleNameMissing: {
		Severity:       SeverityError,
		Summary:        "The record has no testName, so reports cannot identify the module.",
		Recommendation: "Set testName to the human-readable module name, e.g. \"Image Accessibility Analysis\".",
	},
	RuleVersionMissing: {
		Severity:       SeverityError,
		Summary:        "The record has no version, so consumers cannot detect documentation revisions.",
		Recommendation: "Set version to a semantic version string and bump it on every revision.",
	},
	RuleDateMissing: {
		Severity:       SeverityError,
		Summary:        "The record has no date, so consumers cannot tell when it was last revised.",
		Recommendation: "Set date to the ISO date (YYYY-MM-DD) of the last revision.",
	},
	RuleTestsEmpty: {
		Severity:       SeverityError,
		Summary:        "The record documents no sub-tests, so it describes nothing a report can use.",
		Recommendation: "Add one tests entry per check the module performs.",
	},
	RuleTestIDMissing: {
		Severity:       SeverityError,
		Summary:        "A sub-test has no id, so its results cannot be referenced by reports.",
		Recommendation: "Give every sub-test a stable kebab-case id, e.g. \"image-alt-presence\".",
	},
	RuleTestIDDuplicate: {
		Severity:       SeverityError,
		Summary:        "Two sub-tests share the same id, making result attribution ambiguous.",
		Recommendation: "Rename one of the sub-tests so every id is unique within the module.",
	},
	RuleImpactMissing: {
		Severity:       SeverityError,
		Summary:        "A sub-test has no impact level, so reports cannot rank its findings.",
		Recommendation: "Set impact to one of: high, medium, low.",
	},
	RuleImpactInvalid: {
		Severity:       SeverityError,
		Summary:        "A sub-test uses an impact level outside the enumerated set.",
		Recommendation: "Use exactly one of: high, medium, low.",
	},
	RuleCriterionMalformed: {
		Severity:       SeverityError,
		Summary:        "A WCAG criterion identifier does not match the digits-and-periods pattern.",
		Recommendation: "Use dotted success criterion identifiers such as \"1.1.1\" or \"4.1.2\".",
	},

	// WARNING - consumable, but deviates from the convention
	RuleUnknownField: {
		Severity:       SeverityWarning,
		Summary:        "The file contains keys outside the documented schema; consumers will ignore them.",
		Recommendation: "Remove the unknown keys or move their content into description fields.",
	},
	RuleDescriptionMissing: {
		Severity:       SeverityWarning,
		Summary:        "The record has no module description, reducing report readability.",
		Recommendation: "Describe what the module evaluates and for whom it matters.",
	},
	RuleVersionMalformed: {
		Severity:       SeverityWarning,
		Summary:        "The version is not a dotted numeric version, so revision ordering is unreliable.",
		Recommendation: "Use semantic versioning, e.g. \"1.1.0\".",
	},
	RuleDateMalformed: {
		Severity:       SeverityWarning,
		Summary:        "The date is not an ISO calendar date, so revision recency cannot be computed.",
		Recommendation: "Use the YYYY-MM-DD format, e.g. \"2025-03-19\".",
	},
	RuleDataSchemaEmpty: {
		Severity:       SeverityWarning,
		Summary:        "The record documents no result fields, so consumers cannot interpret stored results.",
		Recommendation: "Add a dataSchema entry for every top-level field the module writes.",
	},
	RuleDataSchemaBlankEntry: {
		Severity:       SeverityWarning,
		Summary:        "A dataSchema entry has a blank description.",
		Recommendation: "Describe what the field contains, or remove the entry.",
	},
	RuleTestNameMissing: {
		Severity:       SeverityWarning,
		Summary:        "A sub-test has no name; reports fall back to the id.",
		Recommendation: "Give the sub-test a short human-readable name.",
	},
	RuleTestDescMissing: {
		Severity:       SeverityWarning,
		Summary:        "A sub-test has no description, so report readers cannot tell what it checks.",
		Recommendation: "Describe the condition the sub-test evaluates.",
	},
	RuleImpactNonCanonical: {
		Severity:       SeverityWarning,
		Summary:        "The impact level is recognized but not written in canonical lowercase form.",
		Recommendation: "Write impact levels in lowercase: high, medium, low.",
	},
	RuleCriteriaEmpty: {
		Severity:       SeverityWarning,
		Summary:        "A sub-test references no WCAG criteria, so coverage reports cannot include it.",
		Recommendation: "List the success criteria the sub-test maps to, e.g. [\"1.1.1\"].",
	},
	RuleCriterionUnknown: {
		Severity:       SeverityWarning,
		Summary:        "A WCAG criterion identifier is well-formed but not a known success criterion.",
		Recommendation: "Check the identifier against the WCAG quick reference; new criteria may need a registry update.",
	},
	RuleHowToFixMissing: {
		Severity:       SeverityWarning,
		Summary:        "A sub-test has no remediation guidance, reducing the value of generated reports.",
		Recommendation: "Explain how developers should fix the issue this sub-test detects.",
	},
	RuleResultsFieldsEmpty: {
		Severity:       SeverityWarning,
		Summary:        "A sub-test documents no result fields, so its output cannot be cross-referenced.",
		Recommendation: "Add a resultsFields entry for every result path the sub-test populates.",
	},
	RuleResultsFieldUnrooted: {
		Severity:       SeverityWarning,
		Summary:        "A resultsFields path is not rooted in any dataSchema key, so it points at undocumented data.",
		Recommendation: "Root every dotted result path in a dataSchema key, or add the missing dataSchema entry.",
	},
}

// GetSeverity returns the severity level for a validation rule.
// Returns SeverityWarning if the rule is not in the mapping, so an
// unmapped rule never silently fails a run.
func GetSeverity(rule string) Severity {
	if info, ok := ruleInfoMapping[rule]; ok {
		return info.Severity
	}
	return SeverityWarning
}

// GetRuleInfo returns the full rule information for a validation rule.
// Returns a default RuleInfo with SeverityWarning if the rule is not in
// the mapping.
func GetRuleInfo(rule string) RuleInfo {
	if info, ok := ruleInfoMapping[rule]; ok {
		return info
	}
	return RuleInfo{
		Severity:       SeverityWarning,
		Summary:        "Unknown validation rule. Review manually.",
		Recommendation: "Check the rule identifier against the documented rule set.",
	}
}

// Rules returns all known validation rule identifiers.
// The order is unspecified; callers that need stable output should sort.
func Rules() []string {
	rules := make([]string, 0, len(ruleInfoMapping))
	for rule := range ruleInfoMapping {
		rules = append(rules, rule)
	}
	return rules
}
