package report

import (
	"io"

	"github.com/bobdodd/a11ydoc/internal/model"
)

// Writer defines the interface for catalog report output.
// Implementations write catalog contents in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write outputs the full catalog to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(catalog *model.Catalog) (int, error)

	// WriteSummary outputs only the catalog summary.
	// This is useful for quick overviews without per-module details.
	WriteSummary(summary *model.CatalogSummary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write catalogs, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the catalog to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(catalog *model.Catalog) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(catalog)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteSummary outputs the catalog summary to all configured Writers.
func (m *MultiWriter) WriteSummary(summary *model.CatalogSummary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteSummary(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// summaryOf returns the catalog's summary, computing it if absent.
func summaryOf(catalog *model.Catalog) *model.CatalogSummary {
	if catalog.Summary != nil {
		return catalog.Summary
	}
	return catalog.Summarize()
}
