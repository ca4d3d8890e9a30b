package scoring

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/fit-engine/internal/calibration"
	"github.com/jonathan/fit-engine/internal/domains"
	"github.com/jonathan/fit-engine/internal/experience"
	"github.com/jonathan/fit-engine/internal/semantic"
	"github.com/jonathan/fit-engine/internal/skills"
	"github.com/jonathan/fit-engine/internal/types"
)

// EventRecorder receives one outcome event per computed score. The event's
// outcome stays nil until the hiring funnel resolves it.
type EventRecorder interface {
	AppendOutcomeEvent(ctx context.Context, event *types.OutcomeEvent) error
}

// Engine orchestrates one full scoring call: the six independent dimension
// computations, the weighted aggregation, and the optional calibration
// lookup. Scoring is synchronous and side-effect-free apart from embedding
// cache fills and the outcome event write.
type Engine struct {
	matcher    *skills.Matcher
	calculator *experience.Calculator
	soft       SoftScorer
	vectors    *semantic.VectorCache
	calibrator *calibration.Calibrator
	recorder   EventRecorder
	logger     *zap.Logger
	now        experience.Clock
}

// EngineOptions configures an Engine. Zero-value fields fall back to
// deterministic defaults: wall clock, neutral soft scorer, no embeddings,
// no calibration, no event recording.
type EngineOptions struct {
	Soft       SoftScorer
	Vectors    *semantic.VectorCache
	Calibrator *calibration.Calibrator
	Recorder   EventRecorder
	Logger     *zap.Logger
	Now        experience.Clock
}

// NewEngine builds an Engine.
func NewEngine(opts EngineOptions) *Engine {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	soft := opts.Soft
	if soft == nil {
		soft = NeutralSoftScorer{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		matcher:    skills.NewMatcher(now),
		calculator: experience.NewCalculator(now),
		soft:       soft,
		vectors:    opts.Vectors,
		calibrator: opts.Calibrator,
		recorder:   opts.Recorder,
		logger:     logger,
		now:        now,
	}
}

// Score computes the full fit result for one (candidate, job) pair. jobID
// keys persistence and embedding caches; jobText is the raw description used
// for the semantic dimension. The call never fails outright because an
// external dependency is down: affected dimensions degrade to neutral.
func (e *Engine) Score(ctx context.Context, req *types.JobRequirement, profile *types.CandidateProfile, jobID, jobText string) *types.ScoreResult {
	dims := make(map[types.Dimension]types.DimensionScore, len(types.Dimensions))

	keyword := e.matcher.Match(req, profile)
	dims[types.DimensionKeyword] = keyword

	expResult := e.calculator.Calculate(profile.Experience)
	dims[types.DimensionExperience] = ScoreExperienceDimension(req, expResult)

	dims[types.DimensionTitle] = domains.ScoreTitle(req, profile)
	dims[types.DimensionEducation] = ScoreEducation(req, profile)
	dims[types.DimensionLocation] = ScoreLocation(req, profile)
	dims[types.DimensionFormatting] = ScoreFormatting(profile)
	dims[types.DimensionBehavioral] = ScoreBehavioral(req, profile)
	dims[types.DimensionSemantic] = e.semanticDimension(ctx, req, profile, jobID, jobText)

	total, decision, tier := Aggregate(dims)

	result := &types.ScoreResult{
		CandidateID:   profile.ID,
		JobID:         jobID,
		Total:         total,
		Dimensions:    dims,
		Decision:      decision,
		ApplyTier:     tier,
		MatchedSkills: keyword.Matched,
		MissingSkills: keyword.Missing,
		Explanation:   Explain(total, decision, dims),
		Profile:       ProfileName,
		Experience:    &expResult,
	}

	jobFamily := string(domains.Classify(req.Title))
	if e.calibrator != nil {
		result.Calibration = e.calibrator.Lookup(ctx, ProfileName, jobFamily, total)
	}

	if e.recorder != nil {
		event := &types.OutcomeEvent{
			ID:          uuid.NewString(),
			CandidateID: profile.ID,
			JobID:       jobID,
			Score:       total,
			Profile:     ProfileName,
			JobFamily:   jobFamily,
			CreatedAt:   e.now(),
		}
		if err := e.recorder.AppendOutcomeEvent(ctx, event); err != nil {
			e.logger.Warn("failed to record outcome event",
				zap.String("candidate_id", profile.ID),
				zap.String("job_id", jobID),
				zap.Error(err),
			)
		}
	}

	return result
}

// semanticDimension blends embedding similarity with the pluggable soft
// scorer. When both signals are available they average; when neither is, the
// dimension is neutral.
func (e *Engine) semanticDimension(ctx context.Context, req *types.JobRequirement, profile *types.CandidateProfile, jobID, jobText string) types.DimensionScore {
	embedding := types.Neutral("embeddings unavailable")
	haveEmbedding := false
	if e.vectors != nil && jobText != "" && profile.ResumeText != "" {
		resumeVec, err := e.vectors.Get(ctx, semantic.EntityResume, profile.ID, profile.ResumeText)
		if err != nil {
			e.logger.Debug("resume embedding failed", zap.Error(err))
		}
		jobVec, err := e.vectors.Get(ctx, semantic.EntityJob, jobID, jobText)
		if err != nil {
			e.logger.Debug("job embedding failed", zap.Error(err))
		}
		if len(resumeVec) > 0 && len(jobVec) > 0 {
			embedding = semantic.ScoreFromVectors(resumeVec, jobVec)
			haveEmbedding = true
		}
	}

	soft, err := e.soft.ScoreSoft(ctx, req, profile)
	if err != nil {
		e.logger.Debug("soft scorer failed, using neutral", zap.Error(err))
		soft = nil
	}

	switch {
	case haveEmbedding && soft != nil:
		return types.DimensionScore{
			Score:   (embedding.Score + soft.Score) / 2,
			Details: "mean of embedding similarity and soft-factor score",
		}
	case haveEmbedding:
		return embedding
	case soft != nil:
		return *soft
	default:
		return types.Neutral("no semantic signal available")
	}
}
