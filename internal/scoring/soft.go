package scoring

import (
	"context"

	"github.com/jonathan/fit-engine/internal/types"
)

// SoftScorer produces the nondeterministic narrative sub-score that feeds the
// semantic/soft dimension. A nil score means the scorer has no signal for this
// pair; that is distinct from an honest mid-range score. The deterministic
// pipeline never depends on it succeeding: any error degrades the contribution
// to neutral.
type SoftScorer interface {
	ScoreSoft(ctx context.Context, req *types.JobRequirement, profile *types.CandidateProfile) (*types.DimensionScore, error)
}

// NeutralSoftScorer is the default implementation: no signal, ever. It keeps
// the deterministic core testable without an LLM in the loop.
type NeutralSoftScorer struct{}

// ScoreSoft reports no signal.
func (NeutralSoftScorer) ScoreSoft(context.Context, *types.JobRequirement, *types.CandidateProfile) (*types.DimensionScore, error) {
	return nil, nil
}
