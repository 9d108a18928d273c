package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// DefaultMaxValueLen is the maximum length of a string attribute value
// before truncation. Long enough to keep the leading context of prose
// fields, short enough to keep one record per terminal line in most cases.
const DefaultMaxValueLen = 160

// Ellipsis is appended to truncated values.
const Ellipsis = "..."

// TruncateHandler wraps an slog.Handler to keep log records line-oriented.
// It intercepts log records, flattens embedded newlines, and truncates
// string attribute values that exceed the configured maximum length before
// passing them to the underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. It's compatible with other slog-based libraries
type TruncateHandler struct {
	// handler is the underlying slog handler that receives cleaned records.
	handler slog.Handler

	// maxValueLen is the maximum string attribute value length.
	maxValueLen int
}

// NewTruncateHandler creates a new TruncateHandler wrapping the given handler.
// All string attribute values will be flattened and truncated before being
// passed to the underlying handler.
// If handler is nil, the returned TruncateHandler will use slog.Default().Handler().
func NewTruncateHandler(handler slog.Handler) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TruncateHandler{
		handler:     handler,
		maxValueLen: DefaultMaxValueLen,
	}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle cleans the record's attributes and passes it to the underlying handler.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	// Create a new record with cleaned attributes
	cleaned := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		cleaned.AddAttrs(h.cleanAttr(a))
		return true
	})

	return h.handler.Handle(ctx, cleaned)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are cleaned before being added.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cleanedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		cleanedAttrs[i] = h.cleanAttr(a)
	}
	return &TruncateHandler{
		handler:     h.handler.WithAttrs(cleanedAttrs),
		maxValueLen: h.maxValueLen,
	}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{
		handler:     h.handler.WithGroup(name),
		maxValueLen: h.maxValueLen,
	}
}

// cleanAttr cleans a single attribute, recursively handling groups.
func (h *TruncateHandler) cleanAttr(a slog.Attr) slog.Attr {
	// Handle groups recursively
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		cleanedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			cleanedAttrs[i] = h.cleanAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(cleanedAttrs...)}
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}

	return slog.String(a.Key, h.cleanValue(a.Value.String()))
}

// cleanValue flattens newlines and truncates the value to maxValueLen.
func (h *TruncateHandler) cleanValue(value string) string {
	if strings.ContainsAny(value, "\n\r\t") {
		value = strings.Join(strings.Fields(value), " ")
	}

	if len(value) <= h.maxValueLen {
		return value
	}

	// Cut at a rune boundary so multi-byte characters are never split.
	cut := h.maxValueLen - len(Ellipsis)
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut] + Ellipsis
}

// NewLogger creates a new slog.Logger with truncating text output.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or passed
// to components that accept *slog.Logger.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	truncateHandler := NewTruncateHandler(textHandler)

	return slog.New(truncateHandler)
}

// NewJSONLogger creates a new slog.Logger with truncating JSON output.
// Useful for structured log aggregation.
//
// Parameters:
//   - w: The io.Writer to write log output to
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger configured for JSON output with value cleaning.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	jsonHandler := slog.NewJSONHandler(w, opts)
	truncateHandler := NewTruncateHandler(jsonHandler)

	return slog.New(truncateHandler)
}
