// Package main provides the entry point for the a11ydoc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for a11ydoc.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "a11ydoc",
		Short: "Documentation tooling for accessibility test modules",
		Long: `a11ydoc maintains the documentation convention for accessibility test modules.

Each test module carries a documentation record (testdoc.yaml) describing
what the module evaluates: its sub-tests, their impact, the WCAG success
criteria they verify, remediation guidance, and the schema of the results
the module produces.

a11ydoc scaffolds new records, validates existing ones against the
convention, and builds catalogs of what a test suite covers.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScaffoldCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewCatalogCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
