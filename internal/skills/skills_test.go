package skills

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fit-engine/internal/types"
)

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "k8s", want: "kubernetes"},
		{raw: "K8S", want: "kubernetes"},
		{raw: "Kubernetes", want: "kubernetes"},
		{raw: "postgres", want: "postgresql"},
		{raw: "JS", want: "javascript"},
		{raw: "go", want: "golang"},
		{raw: "  Python  ", want: "python"},
		{raw: "some-niche-tool", want: "some-niche-tool"},
		{raw: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonical(tt.raw), "Canonical(%q)", tt.raw)
	}
}

func TestCanonicalAll_Deduplicates(t *testing.T) {
	got := CanonicalAll([]string{"k8s", "Kubernetes", "Python"})
	assert.Equal(t, []string{"kubernetes", "python"}, got)
}

func TestImplied(t *testing.T) {
	implied := Implied("django")
	assert.Contains(t, implied, "python")

	implied = Implied("kubernetes")
	assert.Contains(t, implied, "docker")

	assert.Empty(t, Implied("some-niche-tool"))
}

func TestBuildCandidateSet_DeclaredSkills(t *testing.T) {
	m := NewMatcher(fixedNow)
	set := m.BuildCandidateSet(&types.CandidateProfile{
		ID:     "cand-1",
		Skills: []string{"K8s", "Python"},
	})

	require.Contains(t, set, "kubernetes")
	require.Contains(t, set, "python")
	assert.InDelta(t, 1.0, set["kubernetes"].credit(), 0.001, "declared skills earn full credit")
}

func TestBuildCandidateSet_ImplicationExpansion(t *testing.T) {
	m := NewMatcher(fixedNow)
	set := m.BuildCandidateSet(&types.CandidateProfile{
		ID: "cand-1",
		Experience: types.ExperienceList{
			{
				Title:            "Engineer",
				StartDate:        "2024-01",
				EndDate:          "",
				Current:          true,
				Responsibilities: []string{"Shipped services built on django"},
			},
		},
	})

	require.Contains(t, set, "django")
	require.Contains(t, set, "python", "django implies python")
	assert.Less(t, set["python"].credit(), set["django"].credit(), "implied evidence is discounted")
}

func TestBuildCandidateSet_SectionWeights(t *testing.T) {
	m := NewMatcher(fixedNow)
	set := m.BuildCandidateSet(&types.CandidateProfile{
		ID: "cand-1",
		ResumeText: "Skills\npython, terraform\n\nEducation\nCoursework in java\n",
	})

	require.Contains(t, set, "python")
	require.Contains(t, set, "java")
	assert.Greater(t, set["python"].credit(), set["java"].credit(),
		"education-section-only evidence earns less")
}

func TestBuildCandidateSet_StaleRoleRecency(t *testing.T) {
	m := NewMatcher(fixedNow)
	set := m.BuildCandidateSet(&types.CandidateProfile{
		ID: "cand-1",
		Experience: types.ExperienceList{
			{
				Title:            "Engineer",
				StartDate:        "2015-01",
				EndDate:          "2017-01",
				Responsibilities: []string{"Built services in scala"},
			},
		},
	})

	require.Contains(t, set, "scala")
	assert.InDelta(t, 0.7, set["scala"].credit(), 0.001, "evidence older than two years is discounted")
}

func TestBuildCandidateSet_ContextualPhrases(t *testing.T) {
	m := NewMatcher(fixedNow)
	set := m.BuildCandidateSet(&types.CandidateProfile{
		ID:         "cand-1",
		ResumeText: "Summary\nBuilt and deployed REST APIs for payments.\n",
	})

	assert.Contains(t, set, "rest api")
}

func TestMatch_FullCoverage(t *testing.T) {
	m := NewMatcher(fixedNow)
	req := &types.JobRequirement{
		Title:          "Backend Engineer",
		MustHaveSkills: []string{"python", "postgresql"},
	}
	profile := &types.CandidateProfile{
		ID:     "cand-1",
		Skills: []string{"Python", "Postgres"},
	}

	score := m.Match(req, profile)
	assert.InDelta(t, 100, score.Score, 0.001)
	assert.ElementsMatch(t, []string{"python", "postgresql"}, score.Matched)
	assert.Empty(t, score.Missing)
}

func TestMatch_PartialCoverageListsMissing(t *testing.T) {
	m := NewMatcher(fixedNow)
	req := &types.JobRequirement{
		Title:          "Data Engineer",
		MustHaveSkills: []string{"python", "sql", "spark"},
	}
	profile := &types.CandidateProfile{
		ID:     "cand-1",
		Skills: []string{"python", "sql", "aws"},
	}

	score := m.Match(req, profile)
	assert.InDelta(t, 100.0*2.0/3.0, score.Score, 0.5)
	assert.Contains(t, score.Missing, "spark")
}

func TestMatch_ZeroMustHaveCap(t *testing.T) {
	m := NewMatcher(fixedNow)
	req := &types.JobRequirement{
		Title:            "Backend Engineer",
		MustHaveSkills:   []string{"rust", "c++"},
		NiceToHaveSkills: []string{"python", "docker"},
	}
	profile := &types.CandidateProfile{
		ID:     "cand-1",
		Skills: []string{"python", "docker"},
	}

	score := m.Match(req, profile)
	assert.LessOrEqual(t, score.Score, 15.0, "no must-have matches caps the dimension")
}

func TestMatch_LowCoverageCap(t *testing.T) {
	m := NewMatcher(fixedNow)
	req := &types.JobRequirement{
		Title:          "Platform Engineer",
		MustHaveSkills: []string{"kubernetes", "terraform", "ansible", "aws"},
	}
	profile := &types.CandidateProfile{
		ID:     "cand-1",
		Skills: []string{"kubernetes"},
	}

	score := m.Match(req, profile)
	assert.LessOrEqual(t, score.Score, 30.0, "under a third coverage of 3+ must-haves is capped")
}

func TestMatch_SynonymsCountAsMatches(t *testing.T) {
	m := NewMatcher(fixedNow)
	req := &types.JobRequirement{
		Title:          "Platform Engineer",
		MustHaveSkills: []string{"Kubernetes"},
	}
	profile := &types.CandidateProfile{
		ID:     "cand-1",
		Skills: []string{"k8s"},
	}

	score := m.Match(req, profile)
	assert.InDelta(t, 100, score.Score, 0.001)
}

func TestMatch_NoRequirementsScoresZero(t *testing.T) {
	m := NewMatcher(fixedNow)
	req := &types.JobRequirement{Title: "Engineer"}
	profile := &types.CandidateProfile{ID: "cand-1", Skills: []string{"python"}}

	score := m.Match(req, profile)
	assert.Equal(t, 0.0, score.Score)
}

func TestSplitSections(t *testing.T) {
	text := "Jane Doe, backend engineer.\n\nSkills\npython, go\n\nWork Experience\nAcme Corp\n\nEducation\nBS CS\n"
	sections := splitSections(text)

	assert.Contains(t, sections["summary"], "Jane Doe")
	assert.Contains(t, sections["skills"], "python")
	assert.Contains(t, sections["experience"], "Acme")
	assert.Contains(t, sections["education"], "BS CS")
}

func TestSplitSections_NoHeaders(t *testing.T) {
	sections := splitSections("just a blob of text with python in it")
	assert.Contains(t, sections["summary"], "python")
}

func TestContainsToken_ShortTokensNeedBoundaries(t *testing.T) {
	assert.True(t, containsToken("worked with go and java", "go"))
	assert.False(t, containsToken("category theory", "go"))
	assert.True(t, containsToken("used r for statistics", "r"))
	assert.False(t, containsToken("ruby developer", "r"))
}
