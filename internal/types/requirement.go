// Package types provides type definitions for structured data used throughout the fit-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SeniorityLevel is the closed set of seniority levels a job requirement may carry.
type SeniorityLevel string

// Seniority levels, roughly ordered from junior to executive.
const (
	SeniorityJunior    SeniorityLevel = "junior"
	SeniorityMid       SeniorityLevel = "mid"
	SenioritySenior    SeniorityLevel = "senior"
	SeniorityStaff     SeniorityLevel = "staff"
	SeniorityPrincipal SeniorityLevel = "principal"
	SeniorityLead      SeniorityLevel = "lead"
	SeniorityManager   SeniorityLevel = "manager"
	SeniorityDirector  SeniorityLevel = "director"
	SeniorityCLevel    SeniorityLevel = "c_level"
)

// seniorityRank orders levels for bonus computation; unknown levels rank 0.
var seniorityRank = map[SeniorityLevel]int{
	SeniorityJunior:    1,
	SeniorityMid:       2,
	SenioritySenior:    3,
	SeniorityStaff:     4,
	SeniorityLead:      4,
	SeniorityPrincipal: 5,
	SeniorityManager:   4,
	SeniorityDirector:  6,
	SeniorityCLevel:    7,
}

// Rank returns the numeric rank of the seniority level (0 for unknown).
func (s SeniorityLevel) Rank() int {
	return seniorityRank[s]
}

// ParseSeniority maps a free-text level string to a SeniorityLevel.
// Unknown input defaults to mid.
func ParseSeniority(s string) SeniorityLevel {
	normalized := SeniorityLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := seniorityRank[normalized]; ok {
		return normalized
	}
	return SeniorityMid
}

// LocationType is the closed set of work location arrangements.
type LocationType string

// Location types.
const (
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
	LocationOnsite LocationType = "onsite"
)

// JobRequirement represents the normalized requirements extracted from a job posting.
// It is produced once per job by the external extractor and cached by a content hash
// of the posting text, so unchanged postings are never re-extracted.
type JobRequirement struct {
	Title             string         `json:"title" validate:"required"`
	Seniority         SeniorityLevel `json:"seniority"`
	MustHaveSkills    []string       `json:"must_have_skills"`
	NiceToHaveSkills  []string       `json:"nice_to_have_skills"`
	ImplicitSkills    []string       `json:"implicit_skills"`
	MinYears          float64        `json:"min_years" validate:"min=0"`
	PreferredYears    float64        `json:"preferred_years" validate:"min=0"`
	EducationLevel    string         `json:"education_level,omitempty"`    // bachelor, master, phd, or empty
	EducationFields   []string       `json:"education_fields,omitempty"`   // e.g. ["Computer Science"]
	Certifications    []string       `json:"certifications,omitempty"`     // required certs
	LocationType      LocationType   `json:"location_type,omitempty"`      // remote, hybrid, onsite
	City              string         `json:"city,omitempty"`               // required city for hybrid/onsite
	VisaSponsorship   *bool          `json:"visa_sponsorship,omitempty"`   // nil = unknown
	Industry          string         `json:"industry,omitempty"`           // industry vertical
	BehavioralSignals []string       `json:"behavioral_signals,omitempty"` // behavioral keywords
	ContextPhrases    []string       `json:"context_phrases,omitempty"`    // phrases implying capability
	RelatedTitles     []string       `json:"related_titles,omitempty"`
	Responsibilities  []string       `json:"responsibilities,omitempty"`
	Minimal           bool           `json:"minimal,omitempty"` // true when the posting was too short to extract
}

// Validate validates the JobRequirement using the validator.
func (r *JobRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// MinimalRequirement builds the explicit marker record stored for postings whose
// description was too short to extract requirements from. Storing it (instead of
// skipping) keeps the posting visible and the extractor idempotent.
func MinimalRequirement(title string) *JobRequirement {
	return &JobRequirement{
		Title:     title,
		Seniority: SeniorityMid,
		Minimal:   true,
	}
}
