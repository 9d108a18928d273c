package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bobdodd/a11ydoc/internal/model"
	"github.com/bobdodd/a11ydoc/internal/wcag"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting and severity-grouped findings.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no entries are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full catalog in human-readable format.
func (w *SimpleWriter) Write(catalog *model.Catalog) (int, error) {
	summary := summaryOf(catalog)

	var sb strings.Builder

	w.writeHeader(&sb, catalog)
	w.writeSummarySection(&sb, summary)
	w.writeModules(&sb, catalog)
	w.writeFindings(&sb, catalog)
	w.writeCoverage(&sb, summary)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteSummary outputs only the catalog summary in human-readable format.
func (w *SimpleWriter) WriteSummary(summary *model.CatalogSummary) (int, error) {
	var sb strings.Builder

	w.writeSummarySection(&sb, summary)
	w.writeCoverage(&sb, summary)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, catalog *model.Catalog) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                  ACCESSIBILITY TEST DOCUMENTATION\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if len(catalog.Roots) > 0 {
		sb.WriteString(fmt.Sprintf("Scan Roots:  %s\n", strings.Join(catalog.Roots, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Generated:   %s\n", catalog.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString("\n")
}

// writeSummarySection writes the module and finding counts.
func (w *SimpleWriter) writeSummarySection(sb *strings.Builder, summary *model.CatalogSummary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Modules:    %d (%d parsed)\n", summary.ModuleCount, summary.ParsedCount))
	sb.WriteString(fmt.Sprintf("  Sub-tests:  %d\n", summary.TestCount))
	if len(summary.DuplicateNames) > 0 {
		sb.WriteString(fmt.Sprintf("  Duplicate module names: %s\n", strings.Join(summary.DuplicateNames, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString("  Impact distribution:\n")
	sb.WriteString(fmt.Sprintf("    HIGH:     %d\n", summary.HighCount))
	sb.WriteString(fmt.Sprintf("    MEDIUM:   %d\n", summary.MediumCount))
	sb.WriteString(fmt.Sprintf("    LOW:      %d\n", summary.LowCount))
	if summary.OtherImpactCount > 0 {
		sb.WriteString(fmt.Sprintf("    OTHER:    %d (invalid impact values)\n", summary.OtherImpactCount))
	}
	sb.WriteString("\n")

	sb.WriteString("  Validation findings:\n")
	sb.WriteString(fmt.Sprintf("    ERROR:    %d\n", summary.ErrorCount))
	sb.WriteString(fmt.Sprintf("    WARNING:  %d\n", summary.WarningCount))
	sb.WriteString(fmt.Sprintf("    INFO:     %d\n", summary.InfoCount))
	sb.WriteString("\n")
}

// writeModules writes one line per discovered module.
func (w *SimpleWriter) writeModules(sb *strings.Builder, catalog *model.Catalog) {
	if len(catalog.Modules) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("MODULES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(catalog.Modules) == 0 {
		sb.WriteString("  No documentation files found\n\n")
		return
	}

	for _, mod := range catalog.Modules {
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", w.moduleStatus(mod), mod.Name()))
		if w.verbose {
			sb.WriteString(fmt.Sprintf("      Path: %s\n", mod.Path))
			if mod.Parsed() {
				sb.WriteString(fmt.Sprintf("      Version: %s  Date: %s  Sub-tests: %d\n",
					mod.Doc.Version, mod.Doc.Date, len(mod.Doc.Tests)))
			}
		}
	}
	sb.WriteString("\n")
}

// moduleStatus returns a short status indicator for a module report.
func (w *SimpleWriter) moduleStatus(mod *model.ModuleReport) string {
	switch {
	case !mod.Parsed():
		return "FAIL"
	case mod.HasErrors():
		return "ERR "
	case len(mod.Findings) > 0:
		return "WARN"
	default:
		return "OK  "
	}
}

// writeFindings writes all findings grouped by severity.
func (w *SimpleWriter) writeFindings(sb *strings.Builder, catalog *model.Catalog) {
	if !catalog.HasFindings() && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("FINDINGS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	// Errors first, informational notes last.
	severities := []model.Severity{
		model.SeverityError,
		model.SeverityWarning,
		model.SeverityInfo,
	}

	for _, severity := range severities {
		findings := catalog.FindingsBySeverity(severity)
		if len(findings) == 0 && !w.showEmpty {
			continue
		}
		w.writeFindingsForSeverity(sb, severity, findings)
	}
}

// writeFindingsForSeverity writes findings of a specific severity level.
func (w *SimpleWriter) writeFindingsForSeverity(sb *strings.Builder, severity model.Severity, findings []model.Finding) {
	indicator := w.getSeverityIndicator(severity)
	sb.WriteString(fmt.Sprintf("[%s] %s\n", indicator, severity.String()))

	if len(findings) == 0 {
		sb.WriteString("  No findings\n\n")
		return
	}

	for _, finding := range findings {
		sb.WriteString(fmt.Sprintf("  * %s\n", finding.Title))
		if finding.Path != "" {
			sb.WriteString(fmt.Sprintf("    File: %s\n", finding.Path))
		}
		if finding.Field != "" {
			sb.WriteString(fmt.Sprintf("    Field: %s\n", finding.Field))
		}
		if w.verbose {
			if finding.Detail != "" {
				sb.WriteString(fmt.Sprintf("    Detail: %s\n", finding.Detail))
			}
			if finding.Recommendation != "" {
				sb.WriteString(fmt.Sprintf("    Fix: %s\n", finding.Recommendation))
			}
		}
	}
	sb.WriteString("\n")
}

// getSeverityIndicator returns a visual indicator for the severity level.
func (w *SimpleWriter) getSeverityIndicator(severity model.Severity) string {
	switch severity {
	case model.SeverityError:
		return "!!"
	case model.SeverityWarning:
		return "!"
	case model.SeverityInfo:
		return "i"
	default:
		return "?"
	}
}

// writeCoverage writes the WCAG criterion coverage section.
func (w *SimpleWriter) writeCoverage(sb *strings.Builder, summary *model.CatalogSummary) {
	if len(summary.Criteria) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("WCAG COVERAGE\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(summary.Criteria) == 0 {
		sb.WriteString("  No WCAG criteria referenced\n\n")
		return
	}

	// Criteria arrive sorted numerically, so each principle forms one
	// contiguous run.
	principle := ""
	for _, cov := range summary.Criteria {
		if p := wcag.Principle(cov.ID); p != principle {
			principle = p
			sb.WriteString(fmt.Sprintf("  %s:\n", principle))
		}
		sb.WriteString(fmt.Sprintf("    %-40s modules: %-3d tests: %d\n",
			wcag.Name(cov.ID), cov.Modules, cov.Tests))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by a11ydoc\n")
	sb.WriteString("https://github.com/bobdodd/a11ydoc\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
