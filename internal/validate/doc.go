// Package validate checks documentation records against the schema
// convention and produces findings for every deviation.
//
// Each check has a stable rule identifier defined in the model package.
// Severity, rationale, and remediation guidance for a rule come from the
// central rule mapping, so every finding carries enough context to fix
// the record without consulting external documentation.
//
// Hard invariants (duplicate test IDs, invalid impact values, malformed
// WCAG identifiers, missing identity fields) are errors; stylistic and
// completeness issues are warnings that strict mode can promote.
package validate
