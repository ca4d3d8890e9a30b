package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/fit-engine/internal/types"
)

var (
	emailRe  = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe  = regexp.MustCompile(`(\+?\d[\d\s().\-]{7,}\d)`)
	bulletRe = regexp.MustCompile(`(?m)^\s*([•\-*]|\d+\.)\s+`)

	formattingSections = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*(work\s+)?experience\b`),
		regexp.MustCompile(`(?im)^\s*education\b`),
		regexp.MustCompile(`(?im)^\s*(technical\s+)?skills\b`),
	}
)

// ScoreFormatting applies plain-text résumé heuristics: sane length, standard
// sections, bullet structure, and contact information. It only ever sees the
// extracted text; parsing binary formats is upstream's problem.
func ScoreFormatting(profile *types.CandidateProfile) types.DimensionScore {
	text := profile.ResumeText
	if strings.TrimSpace(text) == "" {
		return types.Neutral("no resume text available")
	}

	score := 40.0
	var notes []string

	length := len(text)
	switch {
	case length < 300:
		score -= 10
		notes = append(notes, "very short")
	case length > 20000:
		score -= 10
		notes = append(notes, "very long")
	default:
		score += 15
	}

	sectionsFound := 0
	for _, section := range formattingSections {
		if section.MatchString(text) {
			sectionsFound++
		}
	}
	score += float64(sectionsFound) * 10
	if sectionsFound < 2 {
		notes = append(notes, "missing standard sections")
	}

	if bulletRe.MatchString(text) {
		score += 10
	} else {
		notes = append(notes, "no bullet structure")
	}

	if emailRe.MatchString(text) {
		score += 5
	}
	if phoneRe.MatchString(text) {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	details := "resume structure heuristics"
	if len(notes) > 0 {
		details += ": " + strings.Join(notes, ", ")
	}
	return types.DimensionScore{Score: score, Details: details}
}
