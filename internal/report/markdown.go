package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/bobdodd/a11ydoc/internal/model"
	"github.com/bobdodd/a11ydoc/internal/wcag"
)

// MarkdownWriter outputs catalogs in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full catalog in Markdown format.
func (w *MarkdownWriter) Write(catalog *model.Catalog) (int, error) {
	summary := summaryOf(catalog)

	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, catalog, summary)
	w.writeSummary(md, summary)
	w.writeModules(md, catalog)
	w.writeFindings(md, catalog)
	w.writeCoverage(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteSummary outputs only the catalog summary in Markdown format.
func (w *MarkdownWriter) WriteSummary(summary *model.CatalogSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Accessibility Test Documentation Summary")
	md.PlainText("")
	w.writeSummary(md, summary)
	w.writeCoverage(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the catalog header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, catalog *model.Catalog, summary *model.CatalogSummary) {
	md.H1("Accessibility Test Documentation Catalog")
	md.PlainText("")

	rows := [][]string{
		{"Generated", catalog.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Modules", strconv.Itoa(summary.ModuleCount)},
		{"Sub-tests", strconv.Itoa(summary.TestCount)},
	}
	for _, root := range catalog.Roots {
		rows = append(rows, []string{"Scan Root", "`" + root + "`"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSummary writes the summary tables and alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, summary *model.CatalogSummary) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Impact", "Sub-tests"},
		Rows: [][]string{
			{"🔴 High", strconv.Itoa(summary.HighCount)},
			{"🟡 Medium", strconv.Itoa(summary.MediumCount)},
			{"🔵 Low", strconv.Itoa(summary.LowCount)},
			{"**Total**", "**" + strconv.Itoa(summary.TestCount) + "**"},
		},
	})
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Finding Severity", "Count"},
		Rows: [][]string{
			{"❌ Error", strconv.Itoa(summary.ErrorCount)},
			{"⚠️ Warning", strconv.Itoa(summary.WarningCount)},
			{"ℹ️ Info", strconv.Itoa(summary.InfoCount)},
		},
	})
	md.PlainText("")

	if summary.TestCount > 0 {
		w.writePieChart(md, summary)
	}

	if len(summary.DuplicateNames) > 0 {
		md.Importantf(
			"Duplicate module names detected: %s. Rename the records so downstream reporting can tell the modules apart.",
			strings.Join(summary.DuplicateNames, ", "),
		)
		md.PlainText("")
	}

	w.writeAlert(md, summary)
}

// writePieChart writes a mermaid pie chart for impact distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.CatalogSummary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Sub-test Impact Distribution"),
		piechart.WithShowData(true),
	)

	if summary.HighCount > 0 {
		chart.LabelAndIntValue("High", uint64(summary.HighCount))
	}
	if summary.MediumCount > 0 {
		chart.LabelAndIntValue("Medium", uint64(summary.MediumCount))
	}
	if summary.LowCount > 0 {
		chart.LabelAndIntValue("Low", uint64(summary.LowCount))
	}
	if summary.OtherImpactCount > 0 {
		chart.LabelAndIntValue("Other", uint64(summary.OtherImpactCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on finding counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary *model.CatalogSummary) {
	switch {
	case summary.ErrorCount > 0:
		md.Cautionf(
			"Documentation errors detected! %d error finding(s) must be fixed before the records can be consumed.",
			summary.ErrorCount,
		)
	case summary.WarningCount > 0:
		md.Warningf(
			"Documentation warnings detected. %d warning finding(s) should be addressed.",
			summary.WarningCount,
		)
	case summary.InfoCount > 0:
		md.Note("Only informational findings detected.")
	default:
		md.Tip("All documentation records conform to the convention.")
	}
	md.PlainText("")
}

// writeModules writes the per-module overview table.
func (w *MarkdownWriter) writeModules(md *markdown.Markdown, catalog *model.Catalog) {
	md.H2("Modules")
	md.PlainText("")

	if len(catalog.Modules) == 0 {
		md.PlainText("No documentation files found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(catalog.Modules))
	for i, mod := range catalog.Modules {
		version, date, tests := "-", "-", "-"
		if mod.Parsed() {
			version = mod.Doc.Version
			date = mod.Doc.Date
			tests = strconv.Itoa(len(mod.Doc.Tests))
		}
		rows[i] = []string{
			mod.Name(),
			"`" + mod.Path + "`",
			version,
			date,
			tests,
			w.moduleStatus(mod),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Module", "File", "Version", "Date", "Sub-tests", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

// moduleStatus returns a status cell for a module report.
func (w *MarkdownWriter) moduleStatus(mod *model.ModuleReport) string {
	switch {
	case !mod.Parsed():
		return "❌ Unreadable"
	case mod.HasErrors():
		return "❌ Errors"
	case len(mod.Findings) > 0:
		return "⚠️ Warnings"
	default:
		return "✅ OK"
	}
}

// writeFindings writes all findings grouped by severity.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, catalog *model.Catalog) {
	md.H2("Findings")
	md.PlainText("")

	if !catalog.HasFindings() {
		md.PlainText("No validation findings.")
		md.PlainText("")
		return
	}

	severities := []struct {
		level  model.Severity
		header string
	}{
		{model.SeverityError, "### ❌ Error"},
		{model.SeverityWarning, "### ⚠️ Warning"},
		{model.SeverityInfo, "### ℹ️ Info"},
	}

	for _, sev := range severities {
		findings := catalog.FindingsBySeverity(sev.level)
		if len(findings) == 0 {
			continue
		}

		md.PlainText(sev.header)
		md.PlainText("")
		w.writeFindingsTable(md, findings)
	}
}

// writeFindingsTable writes a table of findings with details.
func (w *MarkdownWriter) writeFindingsTable(md *markdown.Markdown, findings []model.Finding) {
	headers := []string{"Title", "File", "Field", "Recommendation"}

	rows := make([][]string, len(findings))
	for i, f := range findings {
		field := f.Field
		if field == "" {
			field = "-"
		}
		rec := f.Recommendation
		if rec == "" {
			rec = "-"
		}

		rows[i] = []string{
			f.Title,
			truncateString(f.Path, 40),
			truncateString(field, 40),
			truncateString(rec, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: headers,
		Rows:   rows,
	})
	md.PlainText("")

	// Add detailed descriptions for all findings
	for _, f := range findings {
		if f.Detail != "" {
			md.Details(f.Title, f.Detail)
		}
	}
	md.PlainText("")
}

// writeCoverage writes the WCAG criterion coverage table.
func (w *MarkdownWriter) writeCoverage(md *markdown.Markdown, summary *model.CatalogSummary) {
	md.H2("WCAG Coverage")
	md.PlainText("")

	if len(summary.Criteria) == 0 {
		md.PlainText("No WCAG criteria referenced.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(summary.Criteria))
	for i, cov := range summary.Criteria {
		level := "-"
		if c, ok := wcag.Lookup(cov.ID); ok {
			level = string(c.Level)
		}
		rows[i] = []string{
			wcag.Name(cov.ID),
			wcag.Principle(cov.ID),
			level,
			strconv.Itoa(cov.Modules),
			strconv.Itoa(cov.Tests),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Criterion", "Principle", "Level", "Modules", "Sub-tests"},
		Rows:   rows,
	})
	md.PlainText("")

	if gaps := levelAGaps(summary); len(gaps) > 0 {
		md.Notef("Level A criteria with no documented test: %s.", strings.Join(gaps, ", "))
		md.PlainText("")
	}
}

// levelAGaps returns the registered Level A criteria the catalog never
// references, in registry order.
func levelAGaps(summary *model.CatalogSummary) []string {
	covered := make(map[string]bool, len(summary.Criteria))
	for _, cov := range summary.Criteria {
		covered[cov.ID] = true
	}

	var gaps []string
	for _, c := range wcag.All() {
		if c.Level == wcag.LevelA && !covered[c.ID] {
			gaps = append(gaps, wcag.Name(c.ID))
		}
	}
	return gaps
}

// writeFooter writes the catalog footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [a11ydoc](https://github.com/bobdodd/a11ydoc)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
