package skills

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/fit-engine/internal/experience"
	"github.com/jonathan/fit-engine/internal/types"
)

// Source weights for building the candidate skill set.
const (
	weightDeclared     = 1.5
	weightSkillSection = 1.5
	weightSummary      = 1.2
	weightExperience   = 1.0
	weightEducation    = 0.5

	// impliedWeightFactor discounts skills added by the implication graph
	// relative to their source skill.
	impliedWeightFactor = 0.8

	// recencyWindowMonths is how far back a role may end and still earn full
	// recency credit. Older evidence earns staleRecency.
	recencyWindowMonths = 24
	staleRecency        = 0.7

	// Tier blend weights for the final coverage ratio.
	blendMustHave   = 0.65
	blendNiceToHave = 0.20
	blendImplicit   = 0.15
)

// Evidence records how strongly and how recently a skill was observed.
type Evidence struct {
	Weight  float64 // max source weight across observations
	Recency float64 // 1.0 for recent evidence, staleRecency otherwise
}

// credit converts evidence into match credit in [0,1]. Weak sources (an
// education-section-only mention at 0.5) earn less than full credit.
func (e Evidence) credit() float64 {
	weight := e.Weight
	if weight > 1 {
		weight = 1
	}
	return weight * e.Recency
}

// CandidateSet is the implication-expanded, canonicalized set of skills the
// candidate has evidence for, keyed by canonical skill name.
type CandidateSet map[string]Evidence

// Matcher scores the keyword dimension of candidate-job fit.
type Matcher struct {
	calc *experience.Calculator
}

// NewMatcher builds a Matcher. The clock resolves role recency; nil uses wall time.
func NewMatcher(now experience.Clock) *Matcher {
	return &Matcher{calc: experience.NewCalculator(now)}
}

// add records one observation, keeping the strongest weight and recency seen.
func (s CandidateSet) add(skill string, weight, recency float64) {
	canonical := Canonical(skill)
	if canonical == "" {
		return
	}
	ev := s[canonical]
	if weight > ev.Weight {
		ev.Weight = weight
	}
	if recency > ev.Recency {
		ev.Recency = recency
	}
	s[canonical] = ev
}

// BuildCandidateSet assembles the candidate's skill set from declared
// skills/tools, a section-aware résumé text scan, contextual phrases, and
// per-role responsibilities, then expands it one hop through the implication
// graph.
func (m *Matcher) BuildCandidateSet(profile *types.CandidateProfile) CandidateSet {
	set := make(CandidateSet)

	for _, skill := range profile.Skills {
		set.add(skill, weightDeclared, 1.0)
	}
	for _, tool := range profile.Tools {
		set.add(tool, weightDeclared, 1.0)
	}

	for section, text := range splitSections(profile.ResumeText) {
		weight := sectionWeight(section)
		for _, skill := range scanVocabulary(text) {
			set.add(skill, weight, 1.0)
		}
		for _, skill := range impliedFromText(text) {
			set.add(skill, weight, 1.0)
		}
	}

	for _, role := range profile.Experience {
		recency := 1.0
		if !m.calc.RecentRole(role, recencyWindowMonths) {
			recency = staleRecency
		}
		roleText := strings.Join(role.Responsibilities, " ")
		for _, skill := range scanVocabulary(roleText) {
			set.add(skill, weightExperience, recency)
		}
		for _, skill := range impliedFromText(roleText) {
			set.add(skill, weightExperience, recency)
		}
	}

	expandImplications(set)
	return set
}

// expandImplications adds implied skills one hop out from every observed skill.
// Implied entries never overwrite direct evidence.
func expandImplications(set CandidateSet) {
	implied := make(map[string]Evidence)
	for skill, ev := range set {
		for _, target := range implicationGraph[skill] {
			canonical := Canonical(target)
			if _, direct := set[canonical]; direct {
				continue
			}
			candidate := Evidence{Weight: ev.Weight * impliedWeightFactor, Recency: ev.Recency}
			if existing, ok := implied[canonical]; !ok || candidate.credit() > existing.credit() {
				implied[canonical] = candidate
			}
		}
	}
	for skill, ev := range implied {
		set[skill] = ev
	}
}

// Match scores the job's skill requirements against the candidate. The blend
// is must-have 65%, nice-to-have 20%, implicit 15%, renormalized over the
// tiers the job actually lists. Hard caps: zero must-have matches caps the
// dimension at 15; with three or more must-haves and coverage under a third,
// the cap is 30.
func (m *Matcher) Match(req *types.JobRequirement, profile *types.CandidateProfile) types.DimensionScore {
	set := m.BuildCandidateSet(profile)
	resumeLower := strings.ToLower(profile.ResumeText)

	mustRatio, mustMatched, mustMissing := m.coverTier(req.MustHaveSkills, set, resumeLower)
	niceRatio, niceMatched, _ := m.coverTier(req.NiceToHaveSkills, set, resumeLower)
	implicitRatio, _, _ := m.coverTier(req.ImplicitSkills, set, resumeLower)

	blend := 0.0
	totalWeight := 0.0
	if len(req.MustHaveSkills) > 0 {
		blend += mustRatio * blendMustHave
		totalWeight += blendMustHave
	}
	if len(req.NiceToHaveSkills) > 0 {
		blend += niceRatio * blendNiceToHave
		totalWeight += blendNiceToHave
	}
	if len(req.ImplicitSkills) > 0 {
		blend += implicitRatio * blendImplicit
		totalWeight += blendImplicit
	}
	if totalWeight > 0 {
		blend /= totalWeight
	}

	score := blend * 100

	mustCount := len(req.MustHaveSkills)
	if mustCount > 0 && len(mustMatched) == 0 && score > 15 {
		score = 15
	}
	if mustCount >= 3 && mustRatio < 1.0/3.0 && score > 30 {
		score = 30
	}

	matched := append(append([]string{}, mustMatched...), niceMatched...)
	sort.Strings(matched)
	sort.Strings(mustMissing)

	return types.DimensionScore{
		Score: score,
		Details: fmt.Sprintf("must-have %d/%d, nice-to-have %d/%d",
			len(mustMatched), len(req.MustHaveSkills), len(niceMatched), len(req.NiceToHaveSkills)),
		Matched: matched,
		Missing: mustMissing,
	}
}

// coverTier computes recency-weighted coverage of one requirement tier.
func (m *Matcher) coverTier(required []string, set CandidateSet, resumeLower string) (float64, []string, []string) {
	if len(required) == 0 {
		return 0, nil, nil
	}

	totalCredit := 0.0
	var matched, missing []string
	for _, raw := range required {
		canonical := Canonical(raw)
		if canonical == "" {
			continue
		}
		if ev, ok := set[canonical]; ok {
			totalCredit += ev.credit()
			matched = append(matched, canonical)
			continue
		}
		if ev, ok := substringMatch(canonical, set, resumeLower); ok {
			totalCredit += ev.credit()
			matched = append(matched, canonical)
			continue
		}
		missing = append(missing, canonical)
	}

	return totalCredit / float64(len(required)), matched, missing
}

// substringMatch is the fallback when direct membership fails: the required
// skill contains or is contained by an evidenced skill, or any of its aliases
// appears verbatim in the résumé text. Only tokens of three or more characters
// qualify, so "r" never matches "ruby".
func substringMatch(canonical string, set CandidateSet, resumeLower string) (Evidence, bool) {
	if len(canonical) >= 3 {
		for skill, ev := range set {
			if len(skill) < 3 {
				continue
			}
			if strings.Contains(skill, canonical) || strings.Contains(canonical, skill) {
				return ev, true
			}
		}
	}
	for _, alias := range Aliases(canonical) {
		if len(alias) >= 3 && strings.Contains(resumeLower, alias) {
			return Evidence{Weight: weightExperience, Recency: 1.0}, true
		}
	}
	return Evidence{}, false
}

// scanVocabulary finds every known skill (all synonym aliases and implication
// graph keys) mentioned in a block of text.
func scanVocabulary(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	var found []string

	note := func(canonical string) {
		if _, ok := seen[canonical]; ok {
			return
		}
		seen[canonical] = struct{}{}
		found = append(found, canonical)
	}

	for alias, canonical := range canonicalBySynonym {
		if containsToken(lower, alias) {
			note(canonical)
		}
	}
	for skill := range implicationGraph {
		if containsToken(lower, skill) {
			note(skill)
		}
	}
	return found
}

// containsToken matches a token at word-ish boundaries. Short aliases ("go",
// "r", "java") require exact boundary matches so "go" never matches inside
// "category" and "java" never matches inside "javascript"; longer tokens use
// plain substring search, matching how résumés actually embed skill names in
// prose.
func containsToken(haystack, token string) bool {
	if len(token) >= 5 {
		return strings.Contains(haystack, token)
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(haystack)
}

// sectionHeaders maps résumé section names to the header patterns that open them.
var sectionHeaders = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"skills", regexp.MustCompile(`(?im)^\s*(technical\s+skills|core\s+skills|skills|technologies|tech\s+stack)\b`)},
	{"summary", regexp.MustCompile(`(?im)^\s*(summary|objective|profile|about\s+me|about)\b`)},
	{"experience", regexp.MustCompile(`(?im)^\s*(work\s+experience|professional\s+experience|experience|employment(\s+history)?|work\s+history)\b`)},
	{"education", regexp.MustCompile(`(?im)^\s*(education|academic(\s+background)?)\b`)},
}

// splitSections divides résumé text into named sections by header lines.
// Text before the first recognized header counts as summary.
func splitSections(text string) map[string]string {
	sections := make(map[string]string)
	if strings.TrimSpace(text) == "" {
		return sections
	}

	type marker struct {
		name  string
		start int
	}
	var markers []marker
	for _, header := range sectionHeaders {
		for _, loc := range header.pattern.FindAllStringIndex(text, -1) {
			markers = append(markers, marker{name: header.name, start: loc[0]})
		}
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i].start < markers[j].start })

	if len(markers) == 0 {
		sections["summary"] = text
		return sections
	}

	if markers[0].start > 0 {
		sections["summary"] = text[:markers[0].start]
	}
	for i, mk := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		sections[mk.name] += text[mk.start:end]
	}
	return sections
}

func sectionWeight(section string) float64 {
	switch section {
	case "skills":
		return weightSkillSection
	case "summary":
		return weightSummary
	case "education":
		return weightEducation
	default:
		return weightExperience
	}
}
