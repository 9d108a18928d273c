// Package log provides logging tailored to documentation tooling output,
// built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Truncation of long free-text attribute values (descriptions,
//     remediation guidance, YAML parser errors)
//   - Flattening of embedded newlines so each record stays on one line
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// Documentation records carry prose fields that can run to hundreds of
// characters; logging them raw makes terminal output unreadable and
// breaks line-oriented log processing. The TruncateHandler keeps records
// grep-able without losing the leading context of each value.
//
// # Usage
//
//	// Create a logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("record parsed",
//	    "path", "tests/images/testdoc.yaml",
//	    "description", longProse, // truncated to a readable prefix
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
