package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/fit-engine/internal/types"
)

// ScoreLocation scores geographic and visa fit. Remote jobs fit everyone;
// onsite and hybrid jobs need the candidate in or willing to move to the
// required city. A job that cannot sponsor a candidate who needs sponsorship
// is close to a hard block regardless of geography.
func ScoreLocation(req *types.JobRequirement, profile *types.CandidateProfile) types.DimensionScore {
	score, details := locationScore(req, profile)

	if req.VisaSponsorship != nil && !*req.VisaSponsorship && needsSponsorship(profile.VisaStatus) {
		if score > 20 {
			score = 20
		}
		details += "; no sponsorship available but candidate needs it"
	}

	return types.DimensionScore{Score: score, Details: details}
}

func locationScore(req *types.JobRequirement, profile *types.CandidateProfile) (float64, string) {
	switch req.LocationType {
	case types.LocationRemote:
		if profile.RemoteOK || profile.Location == "" {
			return 100, "remote role"
		}
		return 90, "remote role, candidate prefers onsite"
	case types.LocationHybrid, types.LocationOnsite:
		if req.City == "" {
			return 70, fmt.Sprintf("%s role without a stated city", req.LocationType)
		}
		if sameCity(profile.Location, req.City) {
			return 100, "candidate in required city"
		}
		for _, target := range profile.TargetLocations {
			if sameCity(target, req.City) {
				return 80, "required city among candidate targets"
			}
		}
		if profile.RelocationOK {
			return 70, "candidate open to relocation"
		}
		return 30, "candidate outside required city"
	default:
		return 70, "job location unspecified"
	}
}

func sameCity(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

func needsSponsorship(visaStatus string) bool {
	s := strings.ToLower(visaStatus)
	return strings.Contains(s, "sponsor") || strings.Contains(s, "h1b") || strings.Contains(s, "h-1b")
}
