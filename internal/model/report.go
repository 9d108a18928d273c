package model

import "time"

// ModuleReport is the result of processing a single documentation file.
// It accumulates state as the pipeline runs: the scanner sets the path,
// the parse step fills Doc, and the validate step appends findings.
type ModuleReport struct {
	// Path is the documentation file path, relative to the scan root
	// where possible.
	Path string `json:"path"`

	// Doc is the parsed documentation record.
	// Nil when parsing failed; the failure is recorded as a finding.
	Doc *TestDocumentation `json:"doc,omitempty"`

	// Findings lists the validation issues raised for this file.
	Findings []Finding `json:"findings,omitempty"`

	// ProcessedAt is when the file was processed.
	ProcessedAt time.Time `json:"processed_at"`

	// Error holds a processing error unrelated to the record's content,
	// such as an unreadable file.
	Error error `json:"-"`
}

// NewModuleReport creates an empty report for the given file path.
func NewModuleReport(path string) *ModuleReport {
	return &ModuleReport{
		Path:        path,
		ProcessedAt: time.Now(),
	}
}

// AddFinding appends a finding, stamping it with the report's path.
func (r *ModuleReport) AddFinding(f Finding) {
	f.Path = r.Path
	r.Findings = append(r.Findings, f)
}

// Parsed reports whether a documentation record was successfully parsed.
func (r *ModuleReport) Parsed() bool {
	return r.Doc != nil
}

// WorstSeverity returns the highest severity among the report's findings.
// The second return value is false when there are no findings.
func (r *ModuleReport) WorstSeverity() (Severity, bool) {
	if len(r.Findings) == 0 {
		return SeverityInfo, false
	}
	worst := SeverityInfo
	for _, f := range r.Findings {
		if f.Severity > worst {
			worst = f.Severity
		}
	}
	return worst, true
}

// HasErrors reports whether any finding is an error.
func (r *ModuleReport) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Name returns the best available display name for the module:
// the record's testName when parsed, otherwise the file path.
func (r *ModuleReport) Name() string {
	if r.Doc != nil && r.Doc.TestName != "" {
		return r.Doc.TestName
	}
	return r.Path
}
