// Package batch scores many (candidate, job) pairs concurrently with a
// bounded worker pool and a shared rate limit on external calls.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/jonathan/fit-engine/internal/scoring"
	"github.com/jonathan/fit-engine/internal/types"
)

const (
	defaultConcurrency = 4
	defaultRateLimit   = 5.0
)

// Pair is one scoring unit: a candidate profile against an already
// extracted job requirement.
type Pair struct {
	Candidate   *types.CandidateProfile
	Requirement *types.JobRequirement
	JobID       string
	JobText     string
}

// ResultStore persists scored pairs. Writes are idempotent per
// (candidate, job), so re-running a batch overwrites rather than duplicates.
type ResultStore interface {
	UpsertScoreResult(ctx context.Context, result *types.ScoreResult) error
}

// PairError records a single failed pair without aborting the run.
type PairError struct {
	CandidateID string
	JobID       string
	Err         error
}

func (e PairError) Error() string {
	return fmt.Sprintf("pair %s/%s: %v", e.CandidateID, e.JobID, e.Err)
}

// Summary reports the totals of one batch run.
type Summary struct {
	RunID    string
	Total    int
	Scored   int
	Failed   int
	Errors   []PairError
	Duration time.Duration
}

// Runner drives concurrent scoring over a slice of pairs.
type Runner struct {
	engine  *scoring.Engine
	store   ResultStore
	logger  *zap.Logger
	limiter *rate.Limiter
	workers int
}

// RunnerOptions configures a Runner. Zero values fall back to four workers
// and five pairs per second.
type RunnerOptions struct {
	Store       ResultStore
	Logger      *zap.Logger
	Concurrency int
	RateLimit   float64
}

// NewRunner builds a Runner around a scoring engine.
func NewRunner(engine *scoring.Engine, opts RunnerOptions) *Runner {
	workers := opts.Concurrency
	if workers <= 0 {
		workers = defaultConcurrency
	}
	limit := opts.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		engine:  engine,
		store:   opts.Store,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(limit), workers),
		workers: workers,
	}
}

// Run scores every pair, collecting per-pair failures instead of stopping.
// It returns early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, pairs []Pair) (*Summary, error) {
	start := time.Now()
	summary := &Summary{
		RunID: uuid.NewString(),
		Total: len(pairs),
	}
	r.logger.Info("starting batch run",
		zap.String("run_id", summary.RunID),
		zap.Int("pairs", len(pairs)),
		zap.Int("workers", r.workers),
	)

	var mu sync.Mutex
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers)

	for _, pair := range pairs {
		pair := pair
		group.Go(func() error {
			if err := r.limiter.Wait(gctx); err != nil {
				return err
			}
			if err := r.scoreOne(gctx, pair); err != nil {
				candidateID := ""
				if pair.Candidate != nil {
					candidateID = pair.Candidate.ID
				}
				mu.Lock()
				summary.Failed++
				summary.Errors = append(summary.Errors, PairError{
					CandidateID: candidateID,
					JobID:       pair.JobID,
					Err:         err,
				})
				mu.Unlock()
				r.logger.Warn("pair failed",
					zap.String("run_id", summary.RunID),
					zap.String("candidate_id", candidateID),
					zap.String("job_id", pair.JobID),
					zap.Error(err),
				)
				return nil
			}
			mu.Lock()
			summary.Scored++
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		summary.Duration = time.Since(start)
		return summary, fmt.Errorf("batch run cancelled: %w", err)
	}

	summary.Duration = time.Since(start)
	r.logger.Info("batch run complete",
		zap.String("run_id", summary.RunID),
		zap.Int("scored", summary.Scored),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", summary.Duration),
	)
	return summary, nil
}

func (r *Runner) scoreOne(ctx context.Context, pair Pair) error {
	if pair.Candidate == nil || pair.Requirement == nil {
		return fmt.Errorf("pair is missing candidate or requirement")
	}
	result := r.engine.Score(ctx, pair.Requirement, pair.Candidate, pair.JobID, pair.JobText)
	if r.store != nil {
		if err := r.store.UpsertScoreResult(ctx, result); err != nil {
			return fmt.Errorf("failed to store result: %w", err)
		}
	}
	return nil
}
