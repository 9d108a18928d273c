package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/bobdodd/a11ydoc/internal/model"
)

// recordingStep is a test step that records its execution and optionally
// fails.
type recordingStep struct {
	name     string
	err      error
	executed *[]string
}

func (s *recordingStep) Do(_ context.Context, _ *model.ModuleReport) error {
	*s.executed = append(*s.executed, s.name)
	return s.err
}

func (s *recordingStep) Name() string {
	return s.name
}

// TestPipelineExecutesInOrder tests sequential step execution.
func TestPipelineExecutesInOrder(t *testing.T) {
	t.Parallel()

	var executed []string
	p := New()
	p.AddSteps(
		&recordingStep{name: "first", executed: &executed},
		&recordingStep{name: "second", executed: &executed},
		&recordingStep{name: "third", executed: &executed},
	)

	report := model.NewModuleReport("testdoc.yaml")
	if err := p.Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"first", "second", "third"}
	if len(executed) != len(expected) {
		t.Fatalf("expected %d steps, got %d", len(expected), len(executed))
	}
	for i, name := range expected {
		if executed[i] != name {
			t.Errorf("step %d = %q, expected %q", i, executed[i], name)
		}
	}
}

// TestPipelineStopsOnError tests that the pipeline halts on first error
// by default.
func TestPipelineStopsOnError(t *testing.T) {
	t.Parallel()

	var executed []string
	stepErr := errors.New("boom")

	p := New()
	p.AddSteps(
		&recordingStep{name: "first", err: stepErr, executed: &executed},
		&recordingStep{name: "second", executed: &executed},
	)

	report := model.NewModuleReport("testdoc.yaml")
	err := p.Execute(context.Background(), report)
	if !errors.Is(err, stepErr) {
		t.Fatalf("expected wrapped step error, got %v", err)
	}
	if len(executed) != 1 {
		t.Errorf("expected 1 executed step, got %d", len(executed))
	}
	if report.Error == nil {
		t.Error("expected error to be recorded on report")
	}
}

// TestPipelineContinueOnError tests the continue-on-error option.
func TestPipelineContinueOnError(t *testing.T) {
	t.Parallel()

	var executed []string
	p := New(WithContinueOnError(true))
	p.AddSteps(
		&recordingStep{name: "first", err: errors.New("boom"), executed: &executed},
		&recordingStep{name: "second", executed: &executed},
	)

	report := model.NewModuleReport("testdoc.yaml")
	if err := p.Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(executed) != 2 {
		t.Errorf("expected 2 executed steps, got %d", len(executed))
	}
}

// TestPipelineCancellation tests that cancellation stops execution
// before the next step.
func TestPipelineCancellation(t *testing.T) {
	t.Parallel()

	var executed []string
	p := New()
	p.AddStep(&recordingStep{name: "never", executed: &executed})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := model.NewModuleReport("testdoc.yaml")
	err := p.Execute(ctx, report)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(executed) != 0 {
		t.Errorf("expected no executed steps, got %d", len(executed))
	}
}
