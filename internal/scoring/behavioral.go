package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/fit-engine/internal/types"
)

// defaultBehavioralSignals backstops jobs whose extractor produced no
// behavioral keywords, so the dimension still measures something.
var defaultBehavioralSignals = []string{
	"led", "mentored", "collaborated", "ownership", "initiative",
	"cross-functional", "stakeholder", "communication", "delivered",
}

// ScoreBehavioral counts the job's behavioral keywords evidenced in the
// résumé text. No résumé text means neutral; otherwise coverage scales the
// score from a floor of 40 so a single hit is not treated as a strong signal.
func ScoreBehavioral(req *types.JobRequirement, profile *types.CandidateProfile) types.DimensionScore {
	if strings.TrimSpace(profile.ResumeText) == "" {
		return types.Neutral("no resume text available")
	}

	signals := req.BehavioralSignals
	if len(signals) == 0 {
		signals = defaultBehavioralSignals
	}

	textLower := strings.ToLower(profile.ResumeText)
	matched := make([]string, 0, len(signals))
	for _, signal := range signals {
		normalized := strings.ToLower(strings.TrimSpace(signal))
		if normalized != "" && strings.Contains(textLower, normalized) {
			matched = append(matched, normalized)
		}
	}

	ratio := float64(len(matched)) / float64(len(signals))
	return types.DimensionScore{
		Score:   40 + 60*ratio,
		Details: fmt.Sprintf("behavioral signals %d/%d", len(matched), len(signals)),
		Matched: matched,
	}
}
