package scoring

import (
	"fmt"

	"github.com/jonathan/fit-engine/internal/types"
)

// ScoreExperienceDimension maps merged worked duration onto the experience
// dimension. Meeting the minimum scores 85, rising to 100 at the preferred
// level; below the minimum the score scales down proportionally. A job with
// no stated minimum treats any parsed history as sufficient.
func ScoreExperienceDimension(req *types.JobRequirement, result types.ExperienceResult) types.DimensionScore {
	years := result.TotalYears()
	details := fmt.Sprintf("%.1f years merged experience (confidence %.1f)", years, result.Confidence)

	minYears := req.MinYears
	preferred := req.PreferredYears
	if preferred < minYears {
		preferred = minYears + 2
	}

	var score float64
	switch {
	case minYears <= 0:
		if years > 0 {
			score = 90
		} else {
			score = types.NeutralScore
		}
	case years >= preferred:
		score = 100
	case years >= minYears:
		score = 85 + 15*(years-minYears)/(preferred-minYears)
	default:
		score = 70 * years / minYears
	}

	return types.DimensionScore{Score: score, Details: details}
}
