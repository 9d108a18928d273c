package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bobdodd/a11ydoc/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor handles concurrent processing of many documentation
// files. It uses errgroup to manage goroutines and respect concurrency
// limits.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-file execution
// 2. It allows different batch strategies later (e.g., rate limiting)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each file.
	// We use a factory to ensure each file gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of files processed at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed module reports.
	// Access is synchronized via mutex.
	results []*model.ModuleReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrently processed
// files. Default is 8 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each file to create a fresh
// pipeline instance. This ensures that pipeline state doesn't leak
// between files.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     8,
		results:         make([]*model.ModuleReport, 0),
	}
	for _, opt := range opts {
		opt(bp)
	}
	if bp.logger == nil {
		bp.logger = slog.Default()
	}
	return bp
}

// ProcessBatch processes many documentation files concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each file gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Returns one report per input path in input order. Per-file problems
// are recorded on the reports; the error return indicates cancellation.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, paths []string) ([]*model.ModuleReport, error) {
	bp.logger.Info("processing documentation files",
		"total_files", len(paths),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain input order.
	bp.results = make([]*model.ModuleReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Debug("processing file",
				"path", path,
				"index", i+1,
				"total", len(paths),
			)

			report := model.NewModuleReport(path)
			err := bp.pipelineFactory().Execute(ctx, report)

			// Store the result regardless of error; the report carries
			// whatever was accumulated before the failure.
			bp.mu.Lock()
			bp.results[i] = report
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("processing failed",
					"path", path,
					"error", err,
				)
				if ctx.Err() != nil {
					return ctx.Err()
				}
				// Non-cancellation failures are recorded on the report;
				// other files should still be processed.
				return nil
			}
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch processing complete",
		"total_files", len(paths),
		"elapsed", time.Since(startTime),
	)

	return bp.results, err
}
