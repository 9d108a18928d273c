package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bobdodd/a11ydoc/internal/config"
	"github.com/bobdodd/a11ydoc/internal/log"
	"github.com/bobdodd/a11ydoc/internal/model"
	"github.com/bobdodd/a11ydoc/internal/pipeline"
	"github.com/bobdodd/a11ydoc/internal/report"
	"github.com/bobdodd/a11ydoc/internal/scanner"
	"github.com/bobdodd/a11ydoc/internal/validate"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [dir-or-file...]",
		Short: "Validate documentation records against the convention",
		Long: `Validate discovers documentation records (testdoc.yaml files) under the
given directories and checks each one against the documentation convention:

- Required identity fields (testName, description, version, date)
- Unique sub-test ids within each module
- Impact values restricted to high, medium, low
- Well-formed, known WCAG success criteria
- Results fields rooted in the module's dataSchema

The command exits non-zero when any record has an error finding, making it
suitable for CI.

Examples:
  # Validate all records under the current directory
  a11ydoc validate .

  # Validate a single record
  a11ydoc validate tests/images/testdoc.yaml

  # Fail the build on warnings too
  a11ydoc validate --strict tests/

  # Output a JSON report for tooling
  a11ydoc validate --json -o report.json tests/

Configuration file (.a11ydoc) example:
  defaults:
    ignoredRules:
      - module-description-missing
  modules:
    tests/legacy:
      ignoredRules:
        - version-malformed`,
		Args: cobra.ArbitraryArgs,
		RunE: runValidateCmd,
	}

	addScanFlags(cmd)
	cmd.Flags().BoolP("strict", "s", false,
		"Promote warning findings to errors")

	return cmd
}

// addScanFlags registers the flags shared by validate and catalog.
func addScanFlags(cmd *cobra.Command) {
	// Discovery flags
	cmd.Flags().StringSliceP("pattern", "p", nil,
		"File name pattern identifying documentation files (repeatable; default: testdoc.yaml variants)")
	cmd.Flags().StringSliceP("ignore", "i", nil,
		"Glob pattern for paths to skip during discovery (repeatable)")

	// Processing flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of files processed concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .a11ydoc in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
}

// runValidateCmd executes the validate command.
func runValidateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	cfg.Strict, err = cmd.Flags().GetBool("strict")
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

	if err := outputCatalog(cfg, catalog); err != nil {
		return err
	}

	summary := catalog.Summary
	if summary.ErrorCount > 0 {
		return fmt.Errorf("validation failed: %d error finding(s) in %d module(s)",
			summary.ErrorCount, summary.ModulesWithErrors)
	}
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Patterns, err = cmd.Flags().GetStringSlice("pattern")
	if err != nil {
		return nil, err
	}

	cfg.IgnorePatterns, err = cmd.Flags().GetStringSlice("ignore")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load module-specific configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.ModuleConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.ModuleConfigs = &config.File{
			Modules: make(map[string]config.ModuleConfig),
		}
	}

	cfg.IgnorePatterns = append(cfg.IgnorePatterns, cfg.ModuleConfigs.Defaults.IgnorePatterns...)

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the scan roots
	cfg.Roots = args

	return cfg, nil
}

// buildCatalog discovers documentation files under the configured roots and
// runs each one through the parse and validate pipeline.
func buildCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*model.Catalog, error) {
	logger.Info("starting documentation scan",
		"roots", cfg.Roots,
		"batchSize", cfg.BatchSize,
		"strict", cfg.Strict,
	)

	scanOpts := []scanner.Option{
		scanner.WithLogger(logger),
		scanner.WithIgnorePatterns(cfg.IgnorePatterns),
	}
	if len(cfg.Patterns) > 0 {
		scanOpts = append(scanOpts, scanner.WithPatterns(cfg.Patterns))
	}

	paths, err := scanner.New(scanOpts...).Discover(ctx, cfg.Roots...)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}

	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			p := pipeline.New(pipeline.WithLogger(logger))
			p.AddSteps(
				pipeline.NewParseStep(pipeline.WithParseLogger(logger)),
				pipeline.NewValidateStep(
					validate.New(validate.WithLogger(logger)),
					pipeline.WithStrict(cfg.Strict),
				),
			)
			return p
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	reports, err := bp.ProcessBatch(ctx, paths)
	if err != nil {
		return nil, err
	}

	catalog := model.NewCatalog(cfg.Roots...)
	for _, r := range reports {
		filterIgnoredFindings(r, cfg)
		catalog.Add(r)
	}
	catalog.Summarize()

	logger.Info("documentation scan finished",
		"modules", len(catalog.Modules),
		"elapsed", time.Since(startTime).Round(time.Millisecond).String(),
	)

	return catalog, nil
}

// filterIgnoredFindings drops findings suppressed by global or per-module
// configuration.
func filterIgnoredFindings(r *model.ModuleReport, cfg *config.Config) {
	if r == nil || cfg.ModuleConfigs == nil {
		return
	}

	ignored := cfg.ModuleConfigs.IgnoredRulesFor(r.Path, cfg.IgnoredRules)
	if len(ignored) == 0 {
		return
	}

	ignoredSet := make(map[string]bool, len(ignored))
	for _, rule := range ignored {
		ignoredSet[rule] = true
	}

	kept := r.Findings[:0]
	for _, f := range r.Findings {
		if !ignoredSet[f.Rule] {
			kept = append(kept, f)
		}
	}
	r.Findings = kept
}

// outputCatalog writes the catalog in the requested format.
func outputCatalog(cfg *config.Config, catalog *model.Catalog) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.Write(catalog)
	return err
}
