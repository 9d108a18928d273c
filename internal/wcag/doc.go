// Package wcag provides a registry of WCAG success criteria and helpers
// for validating criterion identifiers found in documentation records.
//
// The registry covers the success criteria of WCAG 2.0 through 2.2.
// Identifier validation is deliberately split in two:
//   - IsWellFormed checks only the digits-and-periods pattern, so records
//     referencing criteria from future WCAG versions are not rejected.
//   - Lookup resolves known criteria to their name, conformance level,
//     and principle for use in reports.
package wcag
