package report

import (
	"encoding/json"
	"io"

	"github.com/bobdodd/a11ydoc/internal/model"
)

// JSONWriter outputs catalogs in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full catalog in JSON format.
func (w *JSONWriter) Write(catalog *model.Catalog) (int, error) {
	// Ensure the summary is populated before serialization.
	summaryOf(catalog)
	return w.writeJSON(catalog)
}

// WriteSummary outputs only the catalog summary in JSON format.
func (w *JSONWriter) WriteSummary(summary *model.CatalogSummary) (int, error) {
	return w.writeJSON(summary)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONCatalog is a wrapper for the full catalog with additional metadata.
// This is used when writing the complete catalog with contextual information.
//
// Design decision: We wrap the catalog rather than modifying Catalog
// because this allows us to add output-specific fields without polluting
// the core data structure.
type JSONCatalog struct {
	// Version is the a11ydoc version that generated this catalog.
	Version string `json:"version"`

	// Catalog is the full catalog.
	Catalog *model.Catalog `json:"catalog"`

	// Summary is the catalog summary for quick access.
	Summary *model.CatalogSummary `json:"summary,omitempty"`
}

// NewJSONCatalog creates a JSONCatalog wrapper with version information.
func NewJSONCatalog(catalog *model.Catalog, version string) *JSONCatalog {
	return &JSONCatalog{
		Version: version,
		Catalog: catalog,
		Summary: catalog.Summary,
	}
}

// FullJSONWriter outputs complete catalogs with metadata wrapper.
type FullJSONWriter struct {
	*JSONWriter

	// version is the a11ydoc version string.
	version string
}

// NewFullJSONWriter creates a writer for complete catalogs with metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the full catalog wrapped with metadata.
func (w *FullJSONWriter) Write(catalog *model.Catalog) (int, error) {
	summaryOf(catalog)
	wrapped := NewJSONCatalog(catalog, w.version)
	return w.writeJSON(wrapped)
}
