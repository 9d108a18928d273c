// Package pipeline orchestrates documentation file processing.
//
// A Pipeline runs an ordered list of steps over a single ModuleReport:
// parsing the file, validating the record, and any enrichment in between.
// A BatchProcessor runs the pipeline over many discovered files
// concurrently while preserving input order in its results.
//
// Design decision: Steps mutate a shared ModuleReport rather than passing
// values between each other. The report is the single accumulation point,
// which keeps step signatures uniform and makes partial results available
// when a step fails.
package pipeline
