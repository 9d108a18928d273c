package wcag

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is a WCAG conformance level.
type Level string

// WCAG conformance levels, from minimum to most demanding.
const (
	LevelA   Level = "A"
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Criterion describes one WCAG success criterion.
type Criterion struct {
	// ID is the dotted identifier, e.g. "1.1.1".
	ID string

	// Name is the short criterion name, e.g. "Non-text Content".
	Name string

	// Level is the conformance level of the criterion.
	Level Level
}

// criterionPattern matches well-formed success criterion identifiers:
// three groups of digits separated by periods, e.g. "1.4.13".
// Two-part identifiers ("1.1") name guidelines, not criteria, and are
// intentionally rejected.
var criterionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsWellFormed reports whether the identifier matches the success
// criterion pattern. It says nothing about whether the criterion exists.
func IsWellFormed(id string) bool {
	return criterionPattern.MatchString(id)
}

// Known reports whether the identifier names a registered criterion.
func Known(id string) bool {
	_, ok := registry[id]
	return ok
}

// Lookup returns the registered criterion for the identifier.
// The second return value is false for unknown identifiers.
func Lookup(id string) (Criterion, bool) {
	c, ok := registry[id]
	return c, ok
}

// Name returns a display name for the identifier: "1.1.1 Non-text
// Content" for known criteria, or the bare identifier otherwise.
func Name(id string) string {
	if c, ok := registry[id]; ok {
		return c.ID + " " + c.Name
	}
	return id
}

// principleNames maps the leading identifier digit to the WCAG principle.
var principleNames = map[int]string{
	1: "Perceivable",
	2: "Operable",
	3: "Understandable",
	4: "Robust",
}

// Principle returns the WCAG principle the identifier belongs to, derived
// from its leading digit. Unrecognized digits fall back to title-casing
// so future principles at least render readably.
func Principle(id string) string {
	head, _, ok := strings.Cut(id, ".")
	if !ok {
		return ""
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return ""
	}
	if name, ok := principleNames[n]; ok {
		return name
	}
	return cases.Title(language.English).String("principle " + head)
}

// All returns every registered criterion sorted by identifier using
// numeric component ordering (so "1.4.10" sorts after "1.4.9").
func All() []Criterion {
	criteria := make([]Criterion, 0, len(registry))
	for _, c := range registry {
		criteria = append(criteria, c)
	}
	sort.Slice(criteria, func(i, j int) bool {
		return Less(criteria[i].ID, criteria[j].ID)
	})
	return criteria
}

// Less orders two criterion identifiers by their numeric components.
// Malformed identifiers sort after well-formed ones, lexically.
func Less(a, b string) bool {
	as, aok := components(a)
	bs, bok := components(b)
	if !aok || !bok {
		if aok != bok {
			return aok
		}
		return a < b
	}
	for i := 0; i < 3; i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return false
}

// components splits a well-formed identifier into its numeric parts.
func components(id string) ([3]int, bool) {
	var parts [3]int
	fields := strings.Split(id, ".")
	if len(fields) != 3 {
		return parts, false
	}
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return parts, false
		}
		parts[i] = n
	}
	return parts, true
}

// registry maps success criterion identifiers to their metadata.
// It covers WCAG 2.0 through 2.2. 4.1.1 (Parsing) is retained even
// though WCAG 2.2 obsoleted it, because existing documentation records
// still reference it.
var registry = map[string]Criterion{
	// Principle 1: Perceivable
	"1.1.1": {ID: "1.1.1", Name: "Non-text Content", Level: LevelA},
	"1.2.1": {ID: "1.2.1", Name: "Audio-only and Video-only (Prerecorded)", Level: LevelA},
	"1.2.2": {ID: "1.2.2", Name: "Captions (Prerecorded)", Level: LevelA},
	"1.2.3": {ID: "1.2.3", Name: "Audio Description or Media Alternative (Prerecorded)", Level: LevelA},
	"1.2.4": {ID: "1.2.4", Name: "Captions (Live)", Level: LevelAA},
	"1.2.5": {ID: "1.2.5", Name: "Audio Description (Prerecorded)", Level: LevelAA},
	"1.2.6": {ID: "1.2.6", Name: "Sign Language (Prerecorded)", Level: LevelAAA},
	"1.2.7": {ID: "1.2.7", Name: "Extended Audio Description (Prerecorded)", Level: LevelAAA},
	"1.2.8": {ID: "1.2.8", Name: "Media Alternative (Prerecorded)", Level: LevelAAA},
	"1.2.9": {ID: "1.2.9", Name: "Audio-only (Live)", Level: LevelAAA},
	"1.3.1": {ID: "1.3.1", Name: "Info and Relationships", Level: LevelA},
	"1.3.2": {ID: "1.3.2", Name: "Meaningful Sequence", Level: LevelA},
	"1.3.3": {ID: "1.3.3", Name: "Sensory Characteristics", Level: LevelA},
	"1.3.4": {ID: "1.3.4", Name: "Orientation", Level: LevelAA},
	"1.3.5": {ID: "1.3.5", Name: "Identify Input Purpose", Level: LevelAA},
	"1.3.6": {ID: "1.3.6", Name: "Identify Purpose", Level: LevelAAA},
	"1.4.1": {ID: "1.4.1", Name: "Use of Color", Level: LevelA},
	"1.4.2": {ID: "1.4.2", Name: "Audio Control", Level: LevelA},
	"1.4.3": {ID: "1.4.3", Name: "Contrast (Minimum)", Level: LevelAA},
	"1.4.4": {ID: "1.4.4", Name: "Resize Text", Level: LevelAA},
	"1.4.5": {ID: "1.4.5", Name: "Images of Text", Level: LevelAA},
	"1.4.6": {ID: "1.4.6", Name: "Contrast (Enhanced)", Level: LevelAAA},
	"1.4.7": {ID: "1.4.7", Name: "Low or No Background Audio", Level: LevelAAA},
	"1.4.8": {ID: "1.4.8", Name: "Visual Presentation", Level: LevelAAA},
	"1.4.9": {ID: "1.4.9", Name: "Images of Text (No Exception)", Level: LevelAAA},
	"1.4.10": {ID: "1.4.10", Name: "Reflow", Level: LevelAA},
	"1.4.11": {ID: "1.4.11", Name: "Non-text Contrast", Level: LevelAA},
	"1.4.12": {ID: "1.4.12", Name: "Text Spacing", Level: LevelAA},
	"1.4.13": {ID: "1.4.13", Name: "Content on Hover or Focus", Level: LevelAA},

	// Principle 2: Operable
	"2.1.1": {ID: "2.1.1", Name: "Keyboard", Level: LevelA},
	"2.1.2": {ID: "2.1.2", Name: "No Keyboard Trap", Level: LevelA},
	"2.1.3": {ID: "2.1.3", Name: "Keyboard (No Exception)", Level: LevelAAA},
	"2.1.4": {ID: "2.1.4", Name: "Character Key Shortcuts", Level: LevelA},
	"2.2.1": {ID: "2.2.1", Name: "Timing Adjustable", Level: LevelA},
	"2.2.2": {ID: "2.2.2", Name: "Pause, Stop, Hide", Level: LevelA},
	"2.2.3": {ID: "2.2.3", Name: "No Timing", Level: LevelAAA},
	"2.2.4": {ID: "2.2.4", Name: "Interruptions", Level: LevelAAA},
	"2.2.5": {ID: "2.2.5", Name: "Re-authenticating", Level: LevelAAA},
	"2.2.6": {ID: "2.2.6", Name: "Timeouts", Level: LevelAAA},
	"2.3.1": {ID: "2.3.1", Name: "Three Flashes or Below Threshold", Level: LevelA},
	"2.3.2": {ID: "2.3.2", Name: "Three Flashes", Level: LevelAAA},
	"2.3.3": {ID: "2.3.3", Name: "Animation from Interactions", Level: LevelAAA},
	"2.4.1": {ID: "2.4.1", Name: "Bypass Blocks", Level: LevelA},
	"2.4.2": {ID: "2.4.2", Name: "Page Titled", Level: LevelA},
	"2.4.3": {ID: "2.4.3", Name: "Focus Order", Level: LevelA},
	"2.4.4": {ID: "2.4.4", Name: "Link Purpose (In Context)", Level: LevelA},
	"2.4.5": {ID: "2.4.5", Name: "Multiple Ways", Level: LevelAA},
	"2.4.6": {ID: "2.4.6", Name: "Headings and Labels", Level: LevelAA},
	"2.4.7": {ID: "2.4.7", Name: "Focus Visible", Level: LevelAA},
	"2.4.8": {ID: "2.4.8", Name: "Location", Level: LevelAAA},
	"2.4.9": {ID: "2.4.9", Name: "Link Purpose (Link Only)", Level: LevelAAA},
	"2.4.10": {ID: "2.4.10", Name: "Section Headings", Level: LevelAAA},
	"2.4.11": {ID: "2.4.11", Name: "Focus Not Obscured (Minimum)", Level: LevelAA},
	"2.4.12": {ID: "2.4.12", Name: "Focus Not Obscured (Enhanced)", Level: LevelAAA},
	"2.4.13": {ID: "2.4.13", Name: "Focus Appearance", Level: LevelAAA},
	"2.5.1": {ID: "2.5.1", Name: "Pointer Gestures", Level: LevelA},
	"2.5.2": {ID: "2.5.2", Name: "Pointer Cancellation", Level: LevelA},
	"2.5.3": {ID: "2.5.3", Name: "Label in Name", Level: LevelA},
	"2.5.4": {ID: "2.5.4", Name: "Motion Actuation", Level: LevelA},
	"2.5.5": {ID: "2.5.5", Name: "Target Size (Enhanced)", Level: LevelAAA},
	"2.5.6": {ID: "2.5.6", Name: "Concurrent Input Mechanisms", Level: LevelAAA},
	"2.5.7": {ID: "2.5.7", Name: "Dragging Movements", Level: LevelAA},
	"2.5.8": {ID: "2.5.8", Name: "Target Size (Minimum)", Level: LevelAA},

	// Principle 3: Understandable
	"3.1.1": {ID: "3.1.1", Name: "Language of Page", Level: LevelA},
	"3.1.2": {ID: "3.1.2", Name: "Language of Parts", Level: LevelAA},
	"3.1.3": {ID: "3.1.3", Name: "Unusual Words", Level: LevelAAA},
	"3.1.4": {ID: "3.1.4", Name: "Abbreviations", Level: LevelAAA},
	"3.1.5": {ID: "3.1.5", Name: "Reading Level", Level: LevelAAA},
	"3.1.6": {ID: "3.1.6", Name: "Pronunciation", Level: LevelAAA},
	"3.2.1": {ID: "3.2.1", Name: "On Focus", Level: LevelA},
	"3.2.2": {ID: "3.2.2", Name: "On Input", Level: LevelA},
	"3.2.3": {ID: "3.2.3", Name: "Consistent Navigation", Level: LevelAA},
	"3.2.4": {ID: "3.2.4", Name: "Consistent Identification", Level: LevelAA},
	"3.2.5": {ID: "3.2.5", Name: "Change on Request", Level: LevelAAA},
	"3.2.6": {ID: "3.2.6", Name: "Consistent Help", Level: LevelA},
	"3.3.1": {ID: "3.3.1", Name: "Error Identification", Level: LevelA},
	"3.3.2": {ID: "3.3.2", Name: "Labels or Instructions", Level: LevelA},
	"3.3.3": {ID: "3.3.3", Name: "Error Suggestion", Level: LevelAA},
	"3.3.4": {ID: "3.3.4", Name: "Error Prevention (Legal, Financial, Data)", Level: LevelAA},
	"3.3.5": {ID: "3.3.5", Name: "Help", Level: LevelAAA},
	"3.3.6": {ID: "3.3.6", Name: "Error Prevention (All)", Level: LevelAAA},
	"3.3.7": {ID: "3.3.7", Name: "Redundant Entry", Level: LevelA},
	"3.3.8": {ID: "3.3.8", Name: "Accessible Authentication (Minimum)", Level: LevelAA},
	"3.3.9": {ID: "3.3.9", Name: "Accessible Authentication (Enhanced)", Level: LevelAAA},

	// Principle 4: Robust
	"4.1.1": {ID: "4.1.1", Name: "Parsing", Level: LevelA},
	"4.1.2": {ID: "4.1.2", Name: "Name, Role, Value", Level: LevelA},
	"4.1.3": {ID: "4.1.3", Name: "Status Messages", Level: LevelAA},
}
