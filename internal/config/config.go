package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values are chosen to make a bare `a11ydoc validate` invocation
// useful in a typical test-module repository.
const (
	// DefaultBatchSize of 8 concurrent file workers balances throughput
	// with resource usage. Documentation files are small, so parsing is
	// cheap; the limit mainly bounds open file handles on large trees.
	DefaultBatchSize = 8

	// AppName is the application name used for XDG directory paths.
	AppName = "a11ydoc"
)

// Config holds all configuration options for a11ydoc.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ScanConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Roots is the list of directories (or individual files) to scan for
	// documentation records. Must contain at least one entry.
	Roots []string

	// Patterns are the file name patterns that identify documentation files.
	// When empty, the scanner's built-in patterns are used.
	Patterns []string

	// IgnorePatterns are path patterns to skip during discovery.
	// Patterns are matched against both the path relative to the scan root
	// and the file base name using glob syntax.
	IgnorePatterns []string

	// IgnoredRules are validation rule identifiers whose findings are
	// suppressed. Useful for repositories that intentionally deviate from
	// part of the convention.
	IgnoredRules []string

	// BatchSize is the number of files processed concurrently.
	// Higher values increase throughput but use more file handles.
	BatchSize int

	// Strict promotes warning findings to errors. Intended for CI, where
	// a drifting record should fail the build rather than scroll by.
	Strict bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .a11ydoc in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// ModuleConfigs holds per-module configurations loaded from the config
	// file. This is populated by LoadConfigFile and consulted during
	// validation.
	ModuleConfigs *File

	// JSONReport enables JSON report output instead of human-readable format.
	// When true, outputs the full catalog with all findings and the summary.
	// When false, outputs a human-readable text report (default).
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of human-readable
	// format. When true, outputs GitHub Flavored Markdown with tables,
	// alerts, and pie charts.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because some defaults are non-zero (e.g., batch size).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		BatchSize: DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for a11ydoc.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/a11ydoc
// On macOS: ~/Library/Application Support/a11ydoc
// On Windows: %LOCALAPPDATA%\a11ydoc
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for a11ydoc.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/a11ydoc
// On macOS: ~/Library/Application Support/a11ydoc
// On Windows: %APPDATA%\a11ydoc
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any scanning begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one root to scan
	if len(c.Roots) == 0 {
		return ErrNoRoot
	}

	// BatchSize must be positive; zero would mean no processing
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// Discovery patterns must be valid glob syntax
	for _, pattern := range append(append([]string{}, c.Patterns...), c.IgnorePatterns...) {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return ErrInvalidPattern
		}
	}

	return nil
}
