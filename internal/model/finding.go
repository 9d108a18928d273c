package model

import "fmt"

// Finding represents a single schema validation issue in a documentation
// record.
type Finding struct {
	// Rule is the validation rule identifier.
	// This maps to the ruleInfoMapping in severity.go.
	Rule string `json:"rule"`

	// Severity is the finding's severity level.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity.
	SeverityText string `json:"severity_text"`

	// Title is a short description of the finding.
	Title string `json:"title"`

	// Detail provides more context about the finding.
	Detail string `json:"detail,omitempty"`

	// Summary explains why this finding matters.
	Summary string `json:"summary,omitempty"`

	// Recommendation provides guidance on how to address this finding.
	Recommendation string `json:"recommendation,omitempty"`

	// Path is the documentation file where the finding was raised.
	Path string `json:"path,omitempty"`

	// TestID is the sub-test the finding relates to, if any.
	TestID string `json:"test_id,omitempty"`

	// Field is the record field the finding relates to, if any.
	// Dotted notation is used for nested fields, e.g. "tests[2].impact".
	Field string `json:"field,omitempty"`

	// Value is the offending value, if one exists.
	Value string `json:"value,omitempty"`
}

// NewFinding builds a Finding for the given rule, filling in severity and
// guidance from the central rule mapping.
func NewFinding(rule, title, detail string) Finding {
	info := GetRuleInfo(rule)
	return Finding{
		Rule:           rule,
		Severity:       info.Severity,
		SeverityText:   info.Severity.String(),
		Title:          title,
		Detail:         detail,
		Summary:        info.Summary,
		Recommendation: info.Recommendation,
	}
}

// WithLocation returns a copy of the finding annotated with its location
// inside the record.
func (f Finding) WithLocation(testID, field, value string) Finding {
	f.TestID = testID
	f.Field = field
	f.Value = value
	return f
}

// String renders the finding in a compact single-line form used by logs.
func (f Finding) String() string {
	if f.Field != "" {
		return fmt.Sprintf("[%s] %s: %s (%s)", f.SeverityText, f.Rule, f.Title, f.Field)
	}
	return fmt.Sprintf("[%s] %s: %s", f.SeverityText, f.Rule, f.Title)
}

// Promote raises the finding to at least the given severity.
// Used by strict mode to turn warnings into errors without losing the
// original rule identity.
func (f Finding) Promote(min Severity) Finding {
	if f.Severity < min {
		f.Severity = min
		f.SeverityText = min.String()
	}
	return f
}
