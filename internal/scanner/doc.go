// Package scanner discovers and parses documentation files in source trees.
//
// Discovery walks one or more roots looking for files matching the
// documentation file patterns (by default "testdoc.yaml" and prefixed
// variants like "images.testdoc.yaml"). Parsing turns a discovered file
// into a model.TestDocumentation record.
//
// Design decision: Discovery and parsing are separate concerns so the
// pipeline can parallelize parsing across discovered files, and so tests
// can exercise parsing without touching the filesystem.
package scanner
