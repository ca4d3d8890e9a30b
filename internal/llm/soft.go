package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/fit-engine/internal/types"
)

// softScoreTimeout bounds the narrative scoring call; the dimension degrades
// to neutral rather than stalling a scoring run.
const softScoreTimeout = 20 * time.Second

// GeminiSoftScorer implements the scoring.SoftScorer capability with an LLM
// judgment of narrative fit: how well the candidate's story reads against the
// role beyond hard keyword and date matching.
type GeminiSoftScorer struct {
	client Client
}

// NewGeminiSoftScorer builds a soft scorer on an existing client.
func NewGeminiSoftScorer(client Client) *GeminiSoftScorer {
	return &GeminiSoftScorer{client: client}
}

// ScoreSoft asks the model for a 0-100 narrative fit score. Any failure
// (timeout, bad JSON, out-of-range score) returns an error; the engine maps
// errors to the neutral score.
func (s *GeminiSoftScorer) ScoreSoft(ctx context.Context, req *types.JobRequirement, profile *types.CandidateProfile) (*types.DimensionScore, error) {
	ctx, cancel := context.WithTimeout(ctx, softScoreTimeout)
	defer cancel()

	prompt := buildSoftScorePrompt(req, profile)
	response, err := s.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("soft score call failed: %w", err)
	}

	var decoded struct {
		Score     float64 `json:"score"`
		Reasoning string  `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(CleanJSONBlock(response)), &decoded); err != nil {
		return nil, fmt.Errorf("soft score JSON parse error: %w", err)
	}
	if decoded.Score < 0 || decoded.Score > 100 {
		return nil, fmt.Errorf("soft score %f out of range", decoded.Score)
	}

	return &types.DimensionScore{Score: decoded.Score, Details: decoded.Reasoning}, nil
}

func buildSoftScorePrompt(req *types.JobRequirement, profile *types.CandidateProfile) string {
	var sb strings.Builder
	sb.WriteString(`You are an experienced technical recruiter. Rate how well this candidate's overall narrative fits the role, ignoring exact keyword overlap (that is scored separately). Consider career trajectory, depth of ownership, and domain familiarity.

Respond with JSON only: {"score": 0-100, "reasoning": "one sentence"}

`)
	sb.WriteString(fmt.Sprintf("Role: %s (%s)\n", req.Title, req.Seniority))
	if len(req.Responsibilities) > 0 {
		sb.WriteString("Responsibilities:\n")
		for _, r := range req.Responsibilities {
			sb.WriteString("- " + r + "\n")
		}
	}
	sb.WriteString("\nCandidate resume:\n\"\"\"\n")
	sb.WriteString(profile.ResumeText)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}
