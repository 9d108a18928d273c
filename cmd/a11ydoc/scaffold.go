package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bobdodd/a11ydoc/internal/model"
)

//go:embed templates/testdoc.yaml
var docTemplate embed.FS

// NewScaffoldCmd creates the scaffold command.
func NewScaffoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold [path]",
		Short: "Create a new documentation record for a test module",
		Long: `Scaffold creates a new testdoc.yaml documentation record.

The optional path names the record to create; a path to an existing
directory gets testdoc.yaml appended. Without a path the record is
created in the current directory.

The generated file includes:
- All required fields with placeholder content
- Commented guidance for each field
- An example sub-test showing impact, WCAG criteria, and results fields

Examples:
  # Create testdoc.yaml in the current directory
  a11ydoc scaffold

  # Create the record for a test module directory
  a11ydoc scaffold tests/images

  # Name the module and choose the output path
  a11ydoc scaffold --name "Image Accessibility Analysis" -o tests/images/testdoc.yaml

  # Force overwrite an existing file
  a11ydoc scaffold -f`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScaffoldCmd,
	}

	cmd.Flags().StringP("output", "o", model.DocFileName,
		"Output file path for the documentation record")
	cmd.Flags().StringP("name", "n", "New Test Module",
		"Human-readable name of the test module")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing documentation record")

	return cmd
}

// runScaffoldCmd executes the scaffold command.
func runScaffoldCmd(cmd *cobra.Command, args []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	// A positional path takes precedence over the output flag. A path
	// naming an existing directory gets the default file name appended.
	if len(args) == 1 {
		outputPath = args[0]
		if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
			outputPath = filepath.Join(outputPath, model.DocFileName)
		}
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("documentation record already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := docTemplate.ReadFile("templates/testdoc.yaml")
	if err != nil {
		return fmt.Errorf("failed to read documentation template: %w", err)
	}

	record := strings.ReplaceAll(string(content), "{{NAME}}", name)
	record = strings.ReplaceAll(record, "{{DATE}}", time.Now().Format("2006-01-02"))

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write documentation record
	if err := os.WriteFile(outputPath, []byte(record), 0600); err != nil {
		return fmt.Errorf("failed to write documentation record: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created documentation record: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to document the module:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Describe what the module evaluates and why it matters")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Add one entry per sub-test with impact and WCAG criteria")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Root every results field in a dataSchema key")

	return nil
}
