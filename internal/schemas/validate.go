// Package schemas validates LLM extractor output against JSON Schemas before
// any of it reaches core scoring logic. Malformed requirement JSON is an
// input error the caller recovers from, never a panic deeper in the engine.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// requirementSchema constrains the shape of extracted job requirements. Types
// are enforced here; value normalization (canonical skills, seniority enum
// fallback) happens after decoding.
const requirementSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "title": {"type": "string"},
    "seniority": {"type": "string"},
    "must_have_skills": {"type": "array", "items": {"type": "string"}},
    "nice_to_have_skills": {"type": "array", "items": {"type": "string"}},
    "implicit_skills": {"type": "array", "items": {"type": "string"}},
    "min_years": {"type": "number", "minimum": 0},
    "preferred_years": {"type": "number", "minimum": 0},
    "education_level": {"type": "string"},
    "education_fields": {"type": "array", "items": {"type": "string"}},
    "certifications": {"type": "array", "items": {"type": "string"}},
    "location_type": {"type": "string"},
    "city": {"type": "string"},
    "visa_sponsorship": {"type": ["boolean", "null"]},
    "industry": {"type": "string"},
    "behavioral_signals": {"type": "array", "items": {"type": "string"}},
    "context_phrases": {"type": "array", "items": {"type": "string"}},
    "related_titles": {"type": "array", "items": {"type": "string"}},
    "responsibilities": {"type": "array", "items": {"type": "string"}}
  },
  "required": ["title", "must_have_skills"]
}`

// ValidationError reports schema validation failures with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("requirement validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateRequirementJSON checks raw extractor output against the requirement
// schema. It returns a *ValidationError describing every violation, or a
// plain error when the document is not JSON at all.
func ValidateRequirementJSON(raw string) error {
	schemaLoader := gojsonschema.NewStringLoader(requirementSchema)
	documentLoader := gojsonschema.NewStringLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate requirement JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resultErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return ve
}
