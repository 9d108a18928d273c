// Package model defines the core data structures used throughout a11ydoc.
//
// This package contains the following main types:
//   - TestDocumentation: The per-module documentation record
//   - TestEntry: A single documented sub-test within a module
//   - Finding: A single schema validation issue
//   - ModuleReport: The result of processing one documentation file
//   - Catalog: An aggregation of module reports with summary statistics
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (scanner, validate, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to both YAML (the authoring
// format) and JSON (the report output format).
package model
