package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/fit-engine/internal/types"
)

// ProfileName identifies the canonical weighting profile. An older variant
// weighted keywords at 0.40 with no semantic dimension; the 8-dimension
// profile below is the one this engine ships, and outcome events are tagged
// with it so calibration curves never mix profiles.
const ProfileName = "balanced-v1"

// weights are the fixed dimension weights of the canonical profile. They sum
// to 1.00.
var weights = map[types.Dimension]float64{
	types.DimensionKeyword:    0.30,
	types.DimensionExperience: 0.18,
	types.DimensionTitle:      0.14,
	types.DimensionEducation:  0.08,
	types.DimensionLocation:   0.08,
	types.DimensionFormatting: 0.07,
	types.DimensionBehavioral: 0.07,
	types.DimensionSemantic:   0.08,
}

// Title caps applied after weighting: a domain mismatch must not be rescued
// by strong keyword overlap.
const (
	titleHardGate = 25.0
	titleHardCap  = 30
	titleSoftGate = 45.0
	titleSoftCap  = 55
)

// Decision thresholds.
const (
	readyThreshold    = 85
	optimizeThreshold = 70
	rewriteThreshold  = 40
)

// Apply-tier thresholds. Below storeFloor the result is not worth persisting
// for apply automation.
const (
	storeFloor        = 50
	moderateThreshold = 75
	strongThreshold   = 82
)

// Aggregate combines the eight dimension scores into a total, decision, and
// apply tier. Missing dimensions contribute the neutral score.
func Aggregate(dimensions map[types.Dimension]types.DimensionScore) (int, types.Decision, types.ApplyTier) {
	weighted := 0.0
	for _, dimension := range types.Dimensions {
		score, ok := dimensions[dimension]
		if !ok {
			score = types.Neutral("not computed")
		}
		weighted += score.Score * weights[dimension]
	}

	total := int(math.Round(weighted))
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	titleScore := dimensions[types.DimensionTitle].Score
	if titleScore <= titleHardGate && total > titleHardCap {
		total = titleHardCap
	} else if titleScore <= titleSoftGate && total > titleSoftCap {
		total = titleSoftCap
	}

	return total, decisionFor(total), tierFor(total)
}

func decisionFor(total int) types.Decision {
	switch {
	case total >= readyThreshold:
		return types.DecisionReady
	case total >= optimizeThreshold:
		return types.DecisionOptimize
	case total >= rewriteThreshold:
		return types.DecisionRewrite
	default:
		return types.DecisionReject
	}
}

func tierFor(total int) types.ApplyTier {
	switch {
	case total >= strongThreshold:
		return types.TierStrong
	case total >= moderateThreshold:
		return types.TierModerate
	case total >= storeFloor:
		return types.TierBelowThreshold
	default:
		return types.TierNotStored
	}
}

// Explain builds the human-readable summary attached to a ScoreResult.
func Explain(total int, decision types.Decision, dimensions map[types.Dimension]types.DimensionScore) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fit score %d/100 (%s). ", total, decision))

	type dimScore struct {
		name  types.Dimension
		score float64
	}
	ranked := make([]dimScore, 0, len(dimensions))
	for name, score := range dimensions {
		ranked = append(ranked, dimScore{name: name, score: score.Score})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > 0 {
		sb.WriteString(fmt.Sprintf("Strongest: %s (%.0f). Weakest: %s (%.0f).",
			ranked[0].name, ranked[0].score,
			ranked[len(ranked)-1].name, ranked[len(ranked)-1].score))
	}

	if missing := dimensions[types.DimensionKeyword].Missing; len(missing) > 0 {
		sb.WriteString(fmt.Sprintf(" Missing must-have skills: %s.", strings.Join(missing, ", ")))
	}
	return sb.String()
}
