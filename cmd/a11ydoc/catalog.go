package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bobdodd/a11ydoc/internal/log"
)

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [dir-or-file...]",
		Short: "Build a coverage catalog from documentation records",
		Long: `Catalog discovers documentation records (testdoc.yaml files) under the
given directories and aggregates them into a coverage catalog: every module,
its sub-tests, the impact distribution, and which WCAG success criteria the
suite verifies.

Records are still parsed and validated so the catalog can flag unreadable or
drifting files, but unlike validate, the command succeeds regardless of
findings. Use it to answer "what does this suite cover?" rather than "is the
documentation sound?".

Examples:
  # Summarize coverage for the current directory
  a11ydoc catalog .

  # Render the catalog as Markdown for a project wiki
  a11ydoc catalog --markdown -o COVERAGE.md tests/

  # Emit the full catalog as JSON for downstream tooling
  a11ydoc catalog --json tests/`,
		Args: cobra.ArbitraryArgs,
		RunE: runCatalogCmd,
	}

	addScanFlags(cmd)

	return cmd
}

// runCatalogCmd executes the catalog command.
func runCatalogCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	verbose := getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	catalog, err := buildCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return outputCatalog(cfg, catalog)
}
