// Package main provides the entry point for the a11ydoc CLI.
//
// a11ydoc maintains the documentation convention for accessibility test
// modules. It scaffolds new documentation records, validates existing ones
// against the convention, and builds catalogs of what a test suite covers.
//
// Usage:
//
//	a11ydoc scaffold
//	a11ydoc validate <dir>
//	a11ydoc catalog <dir>
//
// See --help for all available options.
package main

// main is the entry point for a11ydoc.
func main() {
	Execute()
}
