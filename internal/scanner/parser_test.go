package scanner

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/bobdodd/a11ydoc/internal/model"
)

// validDoc is a well-formed documentation record used across parser tests.
const validDoc = `testName: Image Accessibility Analysis
description: Evaluates images for proper alternative text and ARIA roles.
version: 1.1.0
date: "2025-03-19"
dataSchema:
  timestamp: ISO timestamp when the test was run
  pageFlags: Boolean flags indicating presence of key issues
tests:
  - id: image-alt-presence
    name: Alternative Text Presence
    description: Checks whether all non-decorative images have an alt attribute.
    impact: high
    wcagCriteria: ["1.1.1"]
    howToFix: Add an alt attribute to all meaningful images.
    resultsFields:
      pageFlags.hasImagesWithoutAlt: Indicates if any images are missing alt attributes
`

// TestParse tests record parsing.
func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses valid record", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse([]byte(validDoc))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.TestName != "Image Accessibility Analysis" {
			t.Errorf("unexpected testName: %q", doc.TestName)
		}
		if len(doc.Tests) != 1 {
			t.Fatalf("expected 1 test, got %d", len(doc.Tests))
		}
		if doc.Tests[0].Impact != model.ImpactHigh {
			t.Errorf("unexpected impact: %q", doc.Tests[0].Impact)
		}
		if doc.Tests[0].WCAGCriteria[0] != "1.1.1" {
			t.Errorf("unexpected criterion: %q", doc.Tests[0].WCAGCriteria[0])
		}
	})

	t.Run("keeps record on unknown fields", func(t *testing.T) {
		t.Parallel()

		input := validDoc + "mongoCollection: test_runs\n"
		doc, err := Parse([]byte(input))

		var unknownErr *UnknownFieldsError
		if !errors.As(err, &unknownErr) {
			t.Fatalf("expected UnknownFieldsError, got %v", err)
		}
		if doc == nil {
			t.Fatal("expected record alongside unknown-fields error")
		}
		if doc.TestName != "Image Accessibility Analysis" {
			t.Errorf("unexpected testName: %q", doc.TestName)
		}
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse([]byte("testName: [unclosed"))
		if err == nil {
			t.Fatal("expected error for malformed YAML")
		}
		if doc != nil {
			t.Error("expected nil record for malformed YAML")
		}
	})

	t.Run("rejects empty file", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte(""))
		if !errors.Is(err, ErrEmptyDocument) {
			t.Fatalf("expected ErrEmptyDocument, got %v", err)
		}
	})

	t.Run("rejects wrong top-level shape", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("- just\n- a\n- list\n"))
		if err == nil {
			t.Fatal("expected error for non-mapping document")
		}
	})
}

// TestParseFile tests file-level parsing.
func TestParseFile(t *testing.T) {
	t.Parallel()

	t.Run("parses from disk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "testdoc.yaml", validDoc)

		doc, err := ParseFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Version != "1.1.0" {
			t.Errorf("unexpected version: %q", doc.Version)
		}
	})

	t.Run("fails on missing file", func(t *testing.T) {
		t.Parallel()

		_, err := ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
