package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bobdodd/a11ydoc/internal/model"
	"github.com/bobdodd/a11ydoc/internal/scanner"
	"github.com/bobdodd/a11ydoc/internal/validate"
)

// ParseStep reads and parses the documentation file named by the report.
//
// Content problems (unparseable YAML, empty files, unknown keys) become
// findings rather than step errors so a single broken file never aborts
// a batch run.
type ParseStep struct {
	// logger for structured logging.
	logger *slog.Logger
}

// ParseStepOption configures a ParseStep.
type ParseStepOption func(*ParseStep)

// WithParseLogger sets a custom logger for the parse step.
func WithParseLogger(logger *slog.Logger) ParseStepOption {
	return func(s *ParseStep) {
		s.logger = logger
	}
}

// NewParseStep creates a new documentation parse step.
func NewParseStep(opts ...ParseStepOption) *ParseStep {
	s := &ParseStep{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step name.
func (s *ParseStep) Name() string {
	return "parse"
}

// Do parses the documentation file and records the outcome on the report.
func (s *ParseStep) Do(_ context.Context, report *model.ModuleReport) error {
	doc, err := scanner.ParseFile(report.Path)

	var unknownErr *scanner.UnknownFieldsError
	switch {
	case err == nil:
		report.Doc = doc
	case errors.As(err, &unknownErr):
		// The record is usable; the stray keys are only a warning.
		report.Doc = doc
		report.AddFinding(model.NewFinding(model.RuleUnknownField,
			"Unknown Fields In Documentation File", unknownErr.Detail))
	default:
		s.logger.Debug("parse failed", "path", report.Path, "error", err)
		report.AddFinding(model.NewFinding(model.RuleParseError,
			"Unparseable Documentation File", err.Error()))
	}
	return nil
}

// ValidateStep validates the parsed record against the schema convention.
type ValidateStep struct {
	// validator applies the schema rules.
	validator *validate.Validator

	// strict promotes warning findings to errors.
	strict bool
}

// ValidateStepOption configures a ValidateStep.
type ValidateStepOption func(*ValidateStep)

// WithStrict enables strict mode, where warnings count as errors.
func WithStrict(strict bool) ValidateStepOption {
	return func(s *ValidateStep) {
		s.strict = strict
	}
}

// NewValidateStep creates a new validation step using the given validator.
// A nil validator is replaced with a default one.
func NewValidateStep(v *validate.Validator, opts ...ValidateStepOption) *ValidateStep {
	s := &ValidateStep{validator: v}
	for _, opt := range opts {
		opt(s)
	}
	if s.validator == nil {
		s.validator = validate.New()
	}
	return s
}

// Name returns the step name.
func (s *ValidateStep) Name() string {
	return "validate"
}

// Do validates the record, if one was parsed, and appends the findings.
func (s *ValidateStep) Do(_ context.Context, report *model.ModuleReport) error {
	if !report.Parsed() {
		return nil
	}

	findings := s.validator.Validate(report.Doc)
	if s.strict {
		findings = validate.PromoteWarnings(findings)
	}
	for _, f := range findings {
		report.AddFinding(f)
	}
	return nil
}
