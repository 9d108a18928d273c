package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoRoot is returned when no scan root is specified.
	// This error occurs when neither a positional argument nor the config
	// file provides a directory to scan.
	ErrNoRoot = errors.New("no scan root specified: provide a directory or file to scan")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent workers, effectively
	// stopping processing.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidPattern is returned when a discovery or ignore pattern is
	// not valid glob syntax.
	ErrInvalidPattern = errors.New("invalid pattern: must be valid glob syntax")
)
