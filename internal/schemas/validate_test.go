package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequirementJSON_Valid(t *testing.T) {
	raw := `{
		"title": "Data Engineer",
		"must_have_skills": ["python", "sql"],
		"min_years": 3,
		"visa_sponsorship": null
	}`
	assert.NoError(t, ValidateRequirementJSON(raw))
}

func TestValidateRequirementJSON_MissingRequired(t *testing.T) {
	err := ValidateRequirementJSON(`{"must_have_skills": []}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "title")
}

func TestValidateRequirementJSON_TypeViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "title not a string", raw: `{"title": 7, "must_have_skills": []}`},
		{name: "skills not an array", raw: `{"title": "x", "must_have_skills": "python"}`},
		{name: "visa_sponsorship wrong type", raw: `{"title": "x", "must_have_skills": [], "visa_sponsorship": "yes"}`},
		{name: "negative min_years", raw: `{"title": "x", "must_have_skills": [], "min_years": -2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequirementJSON(tt.raw)
			require.Error(t, err)
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}

func TestValidateRequirementJSON_NotJSON(t *testing.T) {
	err := ValidateRequirementJSON("not json at all")
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "non-JSON input is a load error, not a validation error")
}
