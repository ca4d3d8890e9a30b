// Package scoring implements the deterministic dimension scorers, the weighted
// aggregator, and the engine that orchestrates a full candidate-job scoring call.
package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/fit-engine/internal/skills"
	"github.com/jonathan/fit-engine/internal/types"
)

// degreeRank orders degree levels for requirement comparison.
var degreeRank = map[string]int{
	"associate": 1,
	"bachelor":  2,
	"master":    3,
	"phd":       4,
}

// normalizeDegree maps free-text degree names onto the rank table.
func normalizeDegree(degree string) string {
	d := strings.ToLower(degree)
	switch {
	case strings.Contains(d, "phd"), strings.Contains(d, "doctor"):
		return "phd"
	case strings.Contains(d, "master"), strings.Contains(d, "msc"), strings.Contains(d, "m.s"), strings.Contains(d, "mba"):
		return "master"
	case strings.Contains(d, "bachelor"), strings.Contains(d, "bsc"), strings.Contains(d, "b.s"), strings.Contains(d, "b.a"), strings.Contains(d, "beng"):
		return "bachelor"
	case strings.Contains(d, "associate"), strings.Contains(d, "diploma"):
		return "associate"
	default:
		return ""
	}
}

// ScoreEducation scores degree level, preferred fields, and required
// certifications. With no requirement stated, a candidate holding any degree
// scores mildly positive and one without scores neutral.
func ScoreEducation(req *types.JobRequirement, profile *types.CandidateProfile) types.DimensionScore {
	base := educationLevelScore(req, profile)

	if len(req.Certifications) == 0 {
		return base
	}

	certScore, matched, missing := certificationCoverage(req.Certifications, profile.Certifications)
	blended := base.Score*0.7 + certScore*0.3
	return types.DimensionScore{
		Score:   blended,
		Details: fmt.Sprintf("%s; certifications %d/%d", base.Details, len(matched), len(req.Certifications)),
		Matched: matched,
		Missing: missing,
	}
}

func educationLevelScore(req *types.JobRequirement, profile *types.CandidateProfile) types.DimensionScore {
	bestRank := 0
	fieldMatch := false
	for _, entry := range profile.Education {
		rank := degreeRank[normalizeDegree(entry.Degree)]
		if rank > bestRank {
			bestRank = rank
		}
		for _, field := range req.EducationFields {
			if field != "" && strings.Contains(strings.ToLower(entry.Field), strings.ToLower(field)) {
				fieldMatch = true
			}
		}
	}

	requiredRank := degreeRank[normalizeDegree(req.EducationLevel)]
	if requiredRank == 0 {
		// No stated requirement: a degree of any kind is a mild positive.
		if bestRank > 0 {
			return types.DimensionScore{Score: 70, Details: "no education requirement; candidate holds a degree"}
		}
		return types.Neutral("no education requirement")
	}

	var score float64
	var details string
	switch {
	case bestRank > requiredRank:
		score, details = 90, "exceeds required level"
	case bestRank == requiredRank:
		score, details = 80, "meets required level"
	case bestRank > 0:
		score, details = 40, "below required level"
	default:
		score, details = 25, "required degree not evidenced"
	}
	if fieldMatch && score < 100 {
		score += 10
		details += ", preferred field match"
	}
	return types.DimensionScore{Score: score, Details: details}
}

// certificationCoverage checks required certifications against the candidate's,
// canonicalized so "AWS SAA" style aliases still land.
func certificationCoverage(required, held []string) (float64, []string, []string) {
	heldSet := make(map[string]struct{}, len(held))
	for _, cert := range held {
		heldSet[skills.Canonical(cert)] = struct{}{}
	}

	var matched, missing []string
	for _, cert := range required {
		canonical := skills.Canonical(cert)
		if _, ok := heldSet[canonical]; ok {
			matched = append(matched, canonical)
			continue
		}
		found := false
		for heldCert := range heldSet {
			if len(canonical) >= 3 && (strings.Contains(heldCert, canonical) || strings.Contains(canonical, heldCert)) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, canonical)
		} else {
			missing = append(missing, canonical)
		}
	}
	if len(required) == 0 {
		return 100, nil, nil
	}
	return 100 * float64(len(matched)) / float64(len(required)), matched, missing
}
