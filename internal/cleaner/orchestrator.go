package cleaner

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"matclean/internal/eligibility"
	"matclean/internal/logging"
	"matclean/internal/mat2"
	"matclean/internal/services"
)

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logging.NewComponentLogger(logger, "cleaner")
		}
	}
}

// WithWorkers bounds how many files are cleaned concurrently. Values below one
// fall back to sequential processing.
func WithWorkers(workers int) Option {
	return func(o *Orchestrator) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

// Orchestrator runs the cleaning flow for one selection.
type Orchestrator struct {
	tool    mat2.Cleaner
	rules   *eligibility.Rules
	workers int
	logger  *slog.Logger
}

// New constructs an orchestrator.
func New(tool mat2.Cleaner, rules *eligibility.Rules, opts ...Option) (*Orchestrator, error) {
	if tool == nil {
		return nil, errors.New("cleaning tool required")
	}
	if rules == nil {
		return nil, errors.New("eligibility rules required")
	}
	o := &Orchestrator{
		tool:    tool,
		rules:   rules,
		workers: 1,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Clean processes the selection and returns one result per input path, in
// input order. A missing or broken external tool aborts the whole run with an
// error before any file is touched; per-file failures are recorded in the
// results and never stop the remaining files.
func (o *Orchestrator) Clean(ctx context.Context, paths []string) ([]Result, Summary, error) {
	if len(paths) == 0 {
		return []Result{}, Summary{}, nil
	}

	version, err := o.tool.Version(ctx)
	if err != nil {
		return nil, Summary{}, err
	}

	runID := uuid.NewString()
	logger := o.logger.With(slog.String(logging.FieldRunID, runID))
	logger.Info("cleaning run started",
		slog.Int("selected", len(paths)),
		slog.String("tool", version),
		slog.Int("workers", o.workers))

	results := make([]Result, len(paths))
	group := new(errgroup.Group)
	group.SetLimit(o.workers)

	for i, path := range paths {
		decision := o.rules.Evaluate(path)
		if !decision.Eligible {
			results[i] = Result{Path: path, Outcome: OutcomeSkipped, Reason: string(decision.Reason)}
			logger.Debug("file skipped", slog.String("path", path), slog.String("reason", string(decision.Reason)))
			continue
		}

		index := i
		target := path
		group.Go(func() error {
			results[index] = o.cleanOne(ctx, logger, target)
			return nil
		})
	}

	// Workers never return errors; Wait is for completion only.
	_ = group.Wait()

	summary := Summarize(results)
	logger.Info("cleaning run finished",
		slog.Int("processed", summary.Processed),
		slog.Int("succeeded", summary.Succeeded),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Skipped))
	return results, summary, nil
}

func (o *Orchestrator) cleanOne(ctx context.Context, logger *slog.Logger, path string) Result {
	cleaned, err := o.tool.Clean(ctx, path)
	switch {
	case err == nil:
		logger.Info("file cleaned", slog.String("path", path), slog.String("cleaned", cleaned))
		return Result{Path: path, Outcome: OutcomeSuccess, CleanedPath: cleaned}
	case errors.Is(err, services.ErrUnsupported):
		logger.Info("format refused by tool", slog.String("path", path))
		return Result{Path: path, Outcome: OutcomeSkipped, Reason: "format refused by tool"}
	case errors.Is(err, services.ErrTimeout):
		logger.Error("cleaning timed out", slog.String("path", path))
		return Result{Path: path, Outcome: OutcomeFailed, Reason: "timeout"}
	default:
		logger.Error("cleaning failed", slog.String("path", path), logging.Error(err))
		return Result{Path: path, Outcome: OutcomeFailed, Reason: failureReason(err)}
	}
}

func failureReason(err error) string {
	if err == nil {
		return "unknown error"
	}
	reason := strings.TrimSpace(err.Error())
	if reason == "" {
		return "unknown error"
	}
	return reason
}
