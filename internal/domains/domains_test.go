package domains

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/fit-engine/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		title string
		want  Domain
	}{
		{title: "Senior Data Engineer", want: DataEngineering},
		{title: "ETL Developer", want: DataEngineering},
		{title: "Software Engineer", want: SoftwareEngineering},
		{title: "Java Developer", want: SoftwareEngineering},
		{title: "Business Analyst", want: DataAnalytics},
		{title: "Data Analyst", want: DataAnalytics},
		{title: "Financial Analyst", want: FinanceAnalyst},
		{title: "BI Developer", want: BI},
		{title: "Machine Learning Engineer", want: DataScience},
		{title: "Frontend Developer", want: Frontend},
		{title: "Full-Stack Developer", want: Fullstack},
		{title: "Site Reliability Engineer", want: DevOps},
		{title: "iOS Developer", want: Mobile},
		{title: "QA Engineer", want: QA},
		{title: "SDET", want: QA},
		{title: "Security Analyst", want: Security},
		{title: "Engineering Manager", want: Management},
		{title: "Product Manager", want: Product},
		{title: "UX Designer", want: Design},
		{title: "Account Executive", want: General},
		{title: "", want: General},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.title))
		})
	}
}

func TestClassify_SpecificRulesWinOverGeneric(t *testing.T) {
	// "data engineer" must not fall through to the bare "engineer" rule.
	assert.Equal(t, DataEngineering, Classify("Data Engineer II"))
	assert.Equal(t, DataScience, Classify("AI Engineer"))
}

func TestCompatible(t *testing.T) {
	assert.True(t, Compatible(Backend, Backend))
	assert.True(t, Compatible(Frontend, Fullstack))
	assert.True(t, Compatible(DataEngineering, DataAnalytics))
	assert.True(t, Compatible(FinanceAnalyst, BI))

	// The gate that motivates the whole package.
	assert.False(t, Compatible(SoftwareEngineering, DataAnalytics))
	assert.False(t, Compatible(DataAnalytics, SoftwareEngineering))

	// Non-symmetric edges.
	assert.True(t, Compatible(QA, SoftwareEngineering))
	assert.True(t, Compatible(SoftwareEngineering, QA))
	assert.True(t, Compatible(Security, DevOps))
	assert.False(t, Compatible(Security, Backend))
}

func TestIsTrivialToken(t *testing.T) {
	for _, token := range []string{"senior", "jr", "analyst", "data", "business", "product", "ii"} {
		assert.True(t, IsTrivialToken(token), token)
	}
	for _, token := range []string{"engineer", "python", "kubernetes"} {
		assert.False(t, IsTrivialToken(token), token)
	}
}

func TestSeniorityFromTitle(t *testing.T) {
	assert.Equal(t, types.SenioritySenior, SeniorityFromTitle("Senior Backend Engineer"))
	assert.Equal(t, types.SeniorityStaff, SeniorityFromTitle("Staff Engineer"))
	assert.Equal(t, types.SeniorityJunior, SeniorityFromTitle("Jr. Developer"))
	assert.Equal(t, types.SeniorityMid, SeniorityFromTitle("Software Engineer"))
}

func profileWithTitle(title string) *types.CandidateProfile {
	return &types.CandidateProfile{ID: "cand-1", PrimaryTitle: title}
}

func TestScoreTitle_ExactMatch(t *testing.T) {
	req := &types.JobRequirement{Title: "Data Engineer"}
	score := ScoreTitle(req, profileWithTitle("Senior Data Engineer"))
	assert.InDelta(t, 100, score.Score, 0.001)
}

func TestScoreTitle_SameDomain(t *testing.T) {
	req := &types.JobRequirement{Title: "ETL Developer"}
	score := ScoreTitle(req, profileWithTitle("Data Engineer"))
	assert.InDelta(t, 85, score.Score, 0.001)
}

func TestScoreTitle_RelatedTitle(t *testing.T) {
	req := &types.JobRequirement{
		Title:         "Analytics Lead",
		RelatedTitles: []string{"Data Analyst"},
	}
	score := ScoreTitle(req, profileWithTitle("Data Analyst"))
	assert.InDelta(t, 70, score.Score, 0.001)
}

func TestScoreTitle_IncompatibleDomainsStayLow(t *testing.T) {
	req := &types.JobRequirement{Title: "Business Analyst"}
	score := ScoreTitle(req, profileWithTitle("Java Developer"))
	assert.LessOrEqual(t, score.Score, 25.0, "cross-profession titles must stay under the hard gate")
}

func TestScoreTitle_SharedTokensWithoutDomainCapAt45(t *testing.T) {
	req := &types.JobRequirement{Title: "Marketing Operations Coordinator"}
	score := ScoreTitle(req, profileWithTitle("Marketing Operations Specialist"))
	assert.LessOrEqual(t, score.Score, 45.0)
	assert.Greater(t, score.Score, 0.0)
}

func TestScoreTitle_BestOfAllTitles(t *testing.T) {
	req := &types.JobRequirement{Title: "Data Engineer"}
	profile := &types.CandidateProfile{
		ID:           "cand-1",
		PrimaryTitle: "Business Analyst",
		Experience: types.ExperienceList{
			{Title: "Data Engineer", StartDate: "2020-01", EndDate: "2022-01"},
		},
	}
	score := ScoreTitle(req, profile)
	assert.InDelta(t, 100, score.Score, 0.001, "per-role titles count")
}

func TestScoreTitle_NoTitles(t *testing.T) {
	req := &types.JobRequirement{Title: "Data Engineer"}
	score := ScoreTitle(req, &types.CandidateProfile{ID: "cand-1"})
	assert.Equal(t, 0.0, score.Score)
}
