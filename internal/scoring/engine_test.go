package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fit-engine/internal/semantic"
	"github.com/jonathan/fit-engine/internal/types"
)

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
}

type captureRecorder struct {
	events []*types.OutcomeEvent
}

func (r *captureRecorder) AppendOutcomeEvent(_ context.Context, event *types.OutcomeEvent) error {
	r.events = append(r.events, event)
	return nil
}

func dataEngineerReq() *types.JobRequirement {
	return &types.JobRequirement{
		Title:          "Data Engineer",
		MustHaveSkills: []string{"python", "sql", "spark"},
		MinYears:       3,
		PreferredYears: 5,
	}
}

func dataEngineerProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:           "cand-1",
		PrimaryTitle: "Data Engineer",
		Skills:       []string{"python", "sql", "aws"},
		Experience: types.ExperienceList{
			{Title: "Data Engineer", StartDate: "2021-06", EndDate: "", Current: true},
		},
		ResumeText: "Summary\nData engineer.\n\nExperience\nAcme\n- Built batch pipelines in python and sql\n\nSkills\npython, sql, aws\n",
	}
}

func TestEngine_ScorePartialMatch(t *testing.T) {
	recorder := &captureRecorder{}
	engine := NewEngine(EngineOptions{
		Recorder: recorder,
		Now:      fixedNow,
	})

	result := engine.Score(context.Background(), dataEngineerReq(), dataEngineerProfile(), "job-1", "")
	require.NotNil(t, result)

	// Two of three must-haves, four of three-to-five years, exact title.
	assert.GreaterOrEqual(t, result.Total, 60)
	assert.LessOrEqual(t, result.Total, 75)
	assert.Contains(t, []types.Decision{types.DecisionOptimize, types.DecisionRewrite}, result.Decision)
	assert.Contains(t, result.MissingSkills, "spark")

	assert.Equal(t, "cand-1", result.CandidateID)
	assert.Equal(t, "job-1", result.JobID)
	assert.Equal(t, ProfileName, result.Profile)
	assert.Len(t, result.Dimensions, len(types.Dimensions))
	assert.NotEmpty(t, result.Explanation)

	require.NotNil(t, result.Experience)
	assert.Equal(t, 48, result.Experience.TotalMonths)

	require.Len(t, recorder.events, 1)
	event := recorder.events[0]
	assert.Equal(t, result.Total, event.Score)
	assert.Equal(t, "data-engineering", event.JobFamily)
	assert.Nil(t, event.Outcome, "outcome is unresolved at scoring time")
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, fixedNow(), event.CreatedAt)
}

func TestEngine_DomainMismatchCapped(t *testing.T) {
	engine := NewEngine(EngineOptions{Now: fixedNow})

	req := &types.JobRequirement{
		Title:          "Business Analyst",
		MustHaveSkills: []string{"sql", "excel"},
	}
	profile := &types.CandidateProfile{
		ID:           "cand-2",
		PrimaryTitle: "Java Developer",
		Skills:       []string{"java", "sql", "excel"},
		Experience: types.ExperienceList{
			{Title: "Java Developer", StartDate: "2018-01", EndDate: "", Current: true},
		},
	}

	result := engine.Score(context.Background(), req, profile, "job-2", "")
	assert.LessOrEqual(t, result.Total, 30, "cross-profession pairs stay capped despite skill overlap")
	assert.Equal(t, types.DecisionReject, result.Decision)
	assert.Equal(t, types.TierNotStored, result.ApplyTier)
}

func TestEngine_MinimalRequirementStaysScoreable(t *testing.T) {
	engine := NewEngine(EngineOptions{Now: fixedNow})

	req := types.MinimalRequirement("Data Engineer")
	result := engine.Score(context.Background(), req, dataEngineerProfile(), "job-3", "")

	require.NotNil(t, result)
	assert.Greater(t, result.Total, 0, "a minimal requirement still produces a usable score")
}

type errorRecorder struct{}

func (errorRecorder) AppendOutcomeEvent(context.Context, *types.OutcomeEvent) error {
	return assert.AnError
}

func TestEngine_RecorderFailureDoesNotFailScoring(t *testing.T) {
	engine := NewEngine(EngineOptions{
		Recorder: errorRecorder{},
		Now:      fixedNow,
	})

	result := engine.Score(context.Background(), dataEngineerReq(), dataEngineerProfile(), "job-4", "")
	require.NotNil(t, result)
	assert.Greater(t, result.Total, 0)
}

type fixedSoftScorer struct {
	score float64
}

func (s fixedSoftScorer) ScoreSoft(context.Context, *types.JobRequirement, *types.CandidateProfile) (*types.DimensionScore, error) {
	return &types.DimensionScore{Score: s.score, Details: "fixed"}, nil
}

func TestEngine_SoftScorerFeedsSemanticDimension(t *testing.T) {
	engine := NewEngine(EngineOptions{
		Soft: fixedSoftScorer{score: 90},
		Now:  fixedNow,
	})

	result := engine.Score(context.Background(), dataEngineerReq(), dataEngineerProfile(), "job-5", "")
	assert.InDelta(t, 90, result.Dimensions[types.DimensionSemantic].Score, 0.01)
}

func TestEngine_HonestMidSoftScoreIsStillASignal(t *testing.T) {
	engine := NewEngine(EngineOptions{
		Soft: fixedSoftScorer{score: 50},
		Now:  fixedNow,
	})

	result := engine.Score(context.Background(), dataEngineerReq(), dataEngineerProfile(), "job-5b", "")

	// A scorer that genuinely rates the pair 50 is not "unavailable": its
	// details survive instead of the no-signal fallback text.
	semanticDim := result.Dimensions[types.DimensionSemantic]
	assert.Equal(t, 50.0, semanticDim.Score)
	assert.Equal(t, "fixed", semanticDim.Details)
}

func TestEngine_SemanticAveragesEmbeddingAndSoftScores(t *testing.T) {
	vectors := semantic.NewVectorCache(semantic.CacheOptions{
		Embed: func(context.Context, string) ([]float64, error) {
			return []float64{1, 0, 0}, nil
		},
	})
	engine := NewEngine(EngineOptions{
		Soft:    fixedSoftScorer{score: 50},
		Vectors: vectors,
		Now:     fixedNow,
	})

	result := engine.Score(context.Background(), dataEngineerReq(), dataEngineerProfile(), "job-5c", "job description text")

	// Identical embeddings score 100; the honest 50 pulls the mean to 75
	// instead of being dropped as missing.
	assert.InDelta(t, 75, result.Dimensions[types.DimensionSemantic].Score, 0.01)
}

type failingSoftScorer struct{}

func (failingSoftScorer) ScoreSoft(context.Context, *types.JobRequirement, *types.CandidateProfile) (*types.DimensionScore, error) {
	return nil, assert.AnError
}

func TestEngine_SoftScorerFailureDegradesToNeutral(t *testing.T) {
	engine := NewEngine(EngineOptions{
		Soft: failingSoftScorer{},
		Now:  fixedNow,
	})

	result := engine.Score(context.Background(), dataEngineerReq(), dataEngineerProfile(), "job-6", "")
	assert.Equal(t, types.NeutralScore, result.Dimensions[types.DimensionSemantic].Score)
}
