package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bobdodd/a11ydoc/internal/report"
)

// conformingDoc is a documentation record that passes validation.
const conformingDoc = `testName: Image Accessibility Analysis
description: Evaluates images for proper alternative text and ARIA roles.
version: 1.1.0
date: "2025-03-19"
dataSchema:
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

// driftingDoc is a documentation record with error findings.
const driftingDoc = `testName: Broken Module
description: A record that drifted from the convention.
version: 1.0.0
date: "2025-01-01"
dataSchema:
  pageFlags: Flags
tests:
  - id: check
    name: Check
    description: A check.
    impact: severe
    wcagCriteria: ["1.1.1"]
    howToFix: Fix it.
    resultsFields:
      pageFlags.hasIssue: Flag
`

// writeTree writes documentation files into a temp dir and returns its path.
func writeTree(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range docs {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}
	return dir
}

// TestNewValidateCmd tests the validate command creation.
func TestNewValidateCmd(t *testing.T) {
	t.Parallel()

	cmd := NewValidateCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "validate [dir-or-file...]" {
			t.Errorf("unexpected use: %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"pattern", "ignore", "batch", "config", "json", "markdown", "output", "strict"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %q flag", name)
			}
		}
	})
}

// TestRunValidateCmd tests the validate command execution.
func TestRunValidateCmd(t *testing.T) {
	t.Parallel()

	t.Run("succeeds for conforming records", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"images/testdoc.yaml": conformingDoc,
		})
		reportFile := filepath.Join(t.TempDir(), "report.txt")

		cmd := NewValidateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", writeEmptyConfig(t), "-o", reportFile, dir})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(reportFile)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(content), "Image Accessibility Analysis") {
			t.Error("expected report to contain module name")
		}
	})

	t.Run("fails for records with errors", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"images/testdoc.yaml": conformingDoc,
			"broken/testdoc.yaml": driftingDoc,
		})
		reportFile := filepath.Join(t.TempDir(), "report.txt")

		cmd := NewValidateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", writeEmptyConfig(t), "-o", reportFile, dir})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for drifting record")
		}
		if !strings.Contains(err.Error(), "validation failed") {
			t.Errorf("unexpected error: %v", err)
		}
		// Two modules scanned, but only the drifting one carries errors.
		if !strings.Contains(err.Error(), "in 1 module(s)") {
			t.Errorf("expected failure to count error-carrying modules only, got: %v", err)
		}
	})

	t.Run("writes JSON report", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"images/testdoc.yaml": conformingDoc,
		})
		reportFile := filepath.Join(t.TempDir(), "report.json")

		cmd := NewValidateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", writeEmptyConfig(t), "--json", "-o", reportFile, dir})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(reportFile)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}

		var decoded report.JSONCatalog
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if decoded.Catalog == nil || len(decoded.Catalog.Modules) != 1 {
			t.Error("expected catalog with one module")
		}
	})

	t.Run("rejects conflicting report formats", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"images/testdoc.yaml": conformingDoc,
		})

		cmd := NewValidateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", writeEmptyConfig(t), "--json", "--markdown", dir})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for conflicting report formats")
		}
	})

	t.Run("rejects missing explicit config file", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"images/testdoc.yaml": conformingDoc,
		})

		cmd := NewValidateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", filepath.Join(t.TempDir(), "missing"), dir})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("ignored rules suppress errors", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"broken/testdoc.yaml": driftingDoc,
		})
		configPath := filepath.Join(t.TempDir(), ".a11ydoc")
		configContent := `defaults:
  ignoredRules:
    - impact-invalid
`
		if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		reportFile := filepath.Join(t.TempDir(), "report.txt")

		cmd := NewValidateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", configPath, "-o", reportFile, dir})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("expected ignored rule to suppress the error, got: %v", err)
		}
	})
}

// TestNewCatalogCmd tests the catalog command.
func TestNewCatalogCmd(t *testing.T) {
	t.Parallel()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if NewCatalogCmd().Use != "catalog [dir-or-file...]" {
			t.Errorf("unexpected use: %q", NewCatalogCmd().Use)
		}
	})

	t.Run("succeeds despite findings", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"images/testdoc.yaml": conformingDoc,
			"broken/testdoc.yaml": driftingDoc,
		})
		reportFile := filepath.Join(t.TempDir(), "coverage.md")

		cmd := NewCatalogCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", writeEmptyConfig(t), "--markdown", "-o", reportFile, dir})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(reportFile)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		for _, want := range []string{"## Modules", "## WCAG Coverage", "1.1.1 Non-text Content"} {
			if !strings.Contains(string(content), want) {
				t.Errorf("expected report to contain %q", want)
			}
		}
	})

	t.Run("fails without roots", func(t *testing.T) {
		t.Parallel()

		cmd := NewCatalogCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-c", writeEmptyConfig(t)})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error when no roots are given")
		}
	})
}

// writeEmptyConfig writes an empty config file so tests do not pick up a
// .a11ydoc file from the working or home directory.
func writeEmptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".a11ydoc")
	if err := os.WriteFile(path, []byte("modules: {}\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
