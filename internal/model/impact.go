package model

import "strings"

// Impact represents the accessibility impact level of a documented test.
// It mirrors the enumerated values used in documentation records, so a
// string-backed type keeps YAML and JSON round-trips faithful to the
// authored document.
//
// Design decision: We use a string-backed type rather than iota constants
// because the value appears verbatim in authored files. Keeping the raw
// string allows the validator to report exactly what an author wrote
// (e.g., "High" or "critical") instead of a lossy parsed value.
type Impact string

const (
	// ImpactHigh indicates a barrier that prevents some users from
	// accessing content or completing a task at all.
	// Examples: missing alt text on meaningful images, keyboard traps.
	ImpactHigh Impact = "high"

	// ImpactMedium indicates a significant obstacle that has a workaround
	// or degrades the experience without fully blocking it.
	// Examples: missing SVG roles, ambiguous link text.
	ImpactMedium Impact = "medium"

	// ImpactLow indicates a minor issue or a best-practice deviation.
	// Examples: decorative images without empty alt, redundant titles.
	ImpactLow Impact = "low"
)

// Impacts lists all valid impact levels in descending order of severity.
// Report writers iterate this slice so output ordering stays consistent.
var Impacts = []Impact{ImpactHigh, ImpactMedium, ImpactLow}

// IsValid reports whether the impact is one of the canonical enumerated
// values. Canonical values are lowercase; "High" is not valid even though
// ParseImpact accepts it.
func (i Impact) IsValid() bool {
	switch i {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return true
	default:
		return false
	}
}

// Weight returns a numeric weight for ordering impacts.
// Higher weight means higher impact. Unknown values weigh zero so they
// sort after all valid levels.
func (i Impact) Weight() int {
	switch i {
	case ImpactHigh:
		return 3
	case ImpactMedium:
		return 2
	case ImpactLow:
		return 1
	default:
		return 0
	}
}

// String returns the impact value as authored.
func (i Impact) String() string {
	return string(i)
}

// ParseImpact normalizes a raw impact string to a canonical Impact.
// Leading/trailing whitespace and letter case are forgiven.
// The second return value reports whether the normalized value is one of
// the enumerated levels; callers that need strict casing should check
// IsValid on the raw value separately.
func ParseImpact(s string) (Impact, bool) {
	normalized := Impact(strings.ToLower(strings.TrimSpace(s)))
	return normalized, normalized.IsValid()
}
