//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfile_ExperienceAsArray(t *testing.T) {
	jsonInput := `{
		"id": "cand-1",
		"experience": [
			{"company": "Acme", "title": "Engineer", "start_date": "2020-01", "end_date": "2022-01"}
		]
	}`

	var profile CandidateProfile
	err := json.Unmarshal([]byte(jsonInput), &profile)
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Acme", profile.Experience[0].Company)
	assert.Equal(t, "2020-01", profile.Experience[0].StartDate)
}

func TestCandidateProfile_ExperienceAsEncodedString(t *testing.T) {
	// Upstream systems sometimes double-encode the experience array.
	jsonInput := `{
		"id": "cand-1",
		"experience": "[{\"company\": \"Acme\", \"title\": \"Engineer\", \"start_date\": \"2020-01\", \"end_date\": \"2022-01\"}]"
	}`

	var profile CandidateProfile
	err := json.Unmarshal([]byte(jsonInput), &profile)
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Acme", profile.Experience[0].Company)
}

func TestCandidateProfile_MalformedExperienceDegradesToEmpty(t *testing.T) {
	jsonInput := `{"id": "cand-1", "experience": "not json at all"}`

	var profile CandidateProfile
	err := json.Unmarshal([]byte(jsonInput), &profile)
	require.NoError(t, err, "a bad experience payload must not fail the whole profile")
	assert.Empty(t, profile.Experience)
}

func TestCandidateProfile_EmptyAndNullExperience(t *testing.T) {
	for _, payload := range []string{
		`{"id": "cand-1", "experience": null}`,
		`{"id": "cand-1", "experience": ""}`,
		`{"id": "cand-1", "experience": []}`,
	} {
		var profile CandidateProfile
		err := json.Unmarshal([]byte(payload), &profile)
		require.NoError(t, err, payload)
		assert.Empty(t, profile.Experience, payload)
	}
}

func TestCandidateProfile_EducationAsEncodedString(t *testing.T) {
	jsonInput := `{
		"id": "cand-1",
		"education": "[{\"institution\": \"State U\", \"degree\": \"BSc\", \"field\": \"CS\"}]"
	}`

	var profile CandidateProfile
	err := json.Unmarshal([]byte(jsonInput), &profile)
	require.NoError(t, err)
	require.Len(t, profile.Education, 1)
	assert.Equal(t, "State U", profile.Education[0].Institution)
}

func TestAllTitles(t *testing.T) {
	profile := &CandidateProfile{
		ID:              "cand-1",
		PrimaryTitle:    "Data Engineer",
		SecondaryTitles: []string{"Backend Engineer"},
		TargetTitles:    []string{"Platform Engineer"},
		Experience: ExperienceList{
			{Title: "Analyst"},
			{Title: ""},
		},
	}

	titles := profile.AllTitles()
	assert.Equal(t, []string{"Data Engineer", "Backend Engineer", "Platform Engineer", "Analyst"}, titles)
}

func TestParseSeniority(t *testing.T) {
	assert.Equal(t, SenioritySenior, ParseSeniority("Senior"))
	assert.Equal(t, SeniorityCLevel, ParseSeniority(" c_level "))
	assert.Equal(t, SeniorityMid, ParseSeniority("rockstar"))
	assert.Equal(t, SeniorityMid, ParseSeniority(""))
}

func TestSeniorityRank(t *testing.T) {
	assert.Less(t, SeniorityJunior.Rank(), SeniorityMid.Rank())
	assert.Less(t, SenioritySenior.Rank(), SeniorityPrincipal.Rank())
	assert.Equal(t, 0, SeniorityLevel("unknown").Rank())
}

func TestMinimalRequirement(t *testing.T) {
	req := MinimalRequirement("Data Engineer")
	assert.Equal(t, "Data Engineer", req.Title)
	assert.True(t, req.Minimal)
	assert.Equal(t, SeniorityMid, req.Seniority)
	assert.Empty(t, req.MustHaveSkills)
}

func TestExperienceResult_TotalYears(t *testing.T) {
	result := ExperienceResult{TotalMonths: 30}
	assert.InDelta(t, 2.5, result.TotalYears(), 0.001)
}

func TestScoreResult_JSONRoundTrip(t *testing.T) {
	result := ScoreResult{
		CandidateID: "cand-1",
		JobID:       "job-1",
		Total:       71,
		Decision:    DecisionOptimize,
		ApplyTier:   TierBelowThreshold,
		Profile:     "balanced-v1",
		Dimensions: map[Dimension]DimensionScore{
			DimensionKeyword: {Score: 66.7, Missing: []string{"spark"}},
		},
	}

	jsonBytes, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded ScoreResult
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, result.Total, decoded.Total)
	assert.Equal(t, result.Decision, decoded.Decision)
	assert.Equal(t, []string{"spark"}, decoded.Dimensions[DimensionKeyword].Missing)
}
