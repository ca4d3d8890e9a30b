package domains

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/fit-engine/internal/types"
)

// Title score tiers.
const (
	scoreExactTitle   = 100.0
	scoreSameDomain   = 85.0
	scoreRelatedTitle = 70.0

	// Compatible-but-different domain scores scale inside [40,65] by token overlap.
	compatBase = 40.0
	compatSpan = 25.0

	// Fallback scores never exceed this without domain compatibility.
	fallbackCap = 45.0
	// Each shared non-trivial token in the fallback path is worth this much.
	fallbackTokenValue = 12.0
)

var seniorityTitleRes = []struct {
	pattern *regexp.Regexp
	level   types.SeniorityLevel
}{
	{regexp.MustCompile(`(?i)\bprincipal\b`), types.SeniorityPrincipal},
	{regexp.MustCompile(`(?i)\bstaff\b`), types.SeniorityStaff},
	{regexp.MustCompile(`(?i)\b(senior|sr\.?)\b`), types.SenioritySenior},
	{regexp.MustCompile(`(?i)\b(junior|jr\.?|entry)\b`), types.SeniorityJunior},
	{regexp.MustCompile(`(?i)\b(director|vp)\b`), types.SeniorityDirector},
	{regexp.MustCompile(`(?i)\b(cto|ceo|chief)\b`), types.SeniorityCLevel},
	{regexp.MustCompile(`(?i)\bmanager\b`), types.SeniorityManager},
	{regexp.MustCompile(`(?i)\blead\b`), types.SeniorityLead},
}

// SeniorityFromTitle infers a seniority level from title wording, defaulting to mid.
func SeniorityFromTitle(title string) types.SeniorityLevel {
	for _, entry := range seniorityTitleRes {
		if entry.pattern.MatchString(title) {
			return entry.level
		}
	}
	return types.SeniorityMid
}

// ScoreTitle computes the title/domain alignment dimension. Every candidate
// title (primary, secondary, target, per-role) is scored against the job and
// the best alignment wins.
func ScoreTitle(req *types.JobRequirement, profile *types.CandidateProfile) types.DimensionScore {
	jobDomain := Classify(req.Title)
	titles := profile.AllTitles()
	if len(titles) == 0 {
		return types.DimensionScore{Score: 0, Details: "candidate has no titles"}
	}

	best := 0.0
	bestTitle := ""
	for _, title := range titles {
		score := scoreSingleTitle(title, req, jobDomain)
		if score > best {
			best = score
			bestTitle = title
		}
	}

	details := fmt.Sprintf("best title %q vs %q (job domain %s)", bestTitle, req.Title, jobDomain)
	return types.DimensionScore{Score: best, Details: details}
}

func scoreSingleTitle(candidateTitle string, req *types.JobRequirement, jobDomain Domain) float64 {
	candNorm := normalizeTitle(candidateTitle)
	jobNorm := normalizeTitle(req.Title)

	if candNorm != "" && jobNorm != "" &&
		(candNorm == jobNorm || strings.Contains(candNorm, jobNorm) || strings.Contains(jobNorm, candNorm)) {
		return scoreExactTitle
	}

	candDomain := Classify(candidateTitle)
	if candDomain == jobDomain && candDomain != General {
		return scoreSameDomain
	}

	for _, related := range req.RelatedTitles {
		relNorm := normalizeTitle(related)
		if relNorm != "" && (candNorm == relNorm || strings.Contains(candNorm, relNorm) || strings.Contains(relNorm, candNorm)) {
			return scoreRelatedTitle
		}
	}

	shared, candTokens := sharedNonTrivialTokens(candidateTitle, req.Title)
	if Compatible(candDomain, jobDomain) && candDomain != General && jobDomain != General && shared >= 2 {
		overlap := float64(shared) / float64(max(candTokens, 2))
		if overlap > 1 {
			overlap = 1
		}
		return compatBase + compatSpan*overlap
	}

	score := float64(shared) * fallbackTokenValue
	score += seniorityBonus(candidateTitle, req.Seniority)
	if score > fallbackCap {
		score = fallbackCap
	}
	return score
}

// seniorityBonus rewards level alignment: exact rank match 10, adjacent rank 5.
func seniorityBonus(candidateTitle string, jobLevel types.SeniorityLevel) float64 {
	candRank := SeniorityFromTitle(candidateTitle).Rank()
	jobRank := jobLevel.Rank()
	if jobRank == 0 {
		return 0
	}
	diff := candRank - jobRank
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 10
	case 1:
		return 5
	default:
		return 0
	}
}

// sharedNonTrivialTokens counts title tokens present in both titles after
// dropping the trivial blocklist. Returns the shared count and the candidate's
// non-trivial token count for overlap scaling.
func sharedNonTrivialTokens(candidateTitle, jobTitle string) (int, int) {
	candTokens := nonTrivialTokens(candidateTitle)
	jobTokens := nonTrivialTokens(jobTitle)

	jobSet := make(map[string]struct{}, len(jobTokens))
	for _, token := range jobTokens {
		jobSet[token] = struct{}{}
	}

	shared := 0
	for _, token := range candTokens {
		if _, ok := jobSet[token]; ok {
			shared++
		}
	}
	return shared, len(candTokens)
}

func nonTrivialTokens(title string) []string {
	fields := strings.Fields(strings.ToLower(title))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.Trim(field, ".,()/-")
		if field == "" || IsTrivialToken(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(title))), " ")
}
