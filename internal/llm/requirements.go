package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/fit-engine/internal/schemas"
	"github.com/jonathan/fit-engine/internal/skills"
	"github.com/jonathan/fit-engine/internal/types"
)

// minDescriptionLength is the shortest job description worth extracting from.
// Shorter postings get an explicit minimal requirement record instead of
// being silently skipped.
const minDescriptionLength = 120

// RequirementCache persists extracted requirements keyed by content hash, so
// an unchanged posting is never re-extracted.
type RequirementCache interface {
	GetRequirement(ctx context.Context, contentHash string) (*types.JobRequirement, error)
	PutRequirement(ctx context.Context, contentHash string, req *types.JobRequirement) error
}

// Extractor turns raw job postings into normalized JobRequirement records
// via an LLM, with content-hash caching in front of every call.
type Extractor struct {
	client Client
	cache  RequirementCache
}

// NewExtractor builds an Extractor. The cache may be nil, in which case every
// call reaches the LLM.
func NewExtractor(client Client, cache RequirementCache) *Extractor {
	return &Extractor{client: client, cache: cache}
}

// ContentHash returns the cache key for a job posting: a sha256 over title,
// description, and location, so any change re-extracts and no change never does.
func ContentHash(title, description, location string) string {
	sum := sha256.Sum256([]byte(title + "\x00" + description + "\x00" + location))
	return hex.EncodeToString(sum[:])
}

// ExtractRequirements returns the normalized requirements for a posting,
// consulting the cache first. A description too short to extract from yields
// the minimal marker record, which is cached like any other result.
func (e *Extractor) ExtractRequirements(ctx context.Context, title, description, location string) (*types.JobRequirement, error) {
	hash := ContentHash(title, description, location)

	if e.cache != nil {
		cached, err := e.cache.GetRequirement(ctx, hash)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	req, err := e.extract(ctx, title, description, location)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.PutRequirement(ctx, hash, req); err != nil {
			return req, fmt.Errorf("extracted but failed to cache requirement: %w", err)
		}
	}
	return req, nil
}

func (e *Extractor) extract(ctx context.Context, title, description, location string) (*types.JobRequirement, error) {
	if len(strings.TrimSpace(description)) < minDescriptionLength {
		return types.MinimalRequirement(title), nil
	}

	prompt := buildRequirementPrompt(title, description, location)
	response, err := e.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("requirement extraction failed: %w", err)
	}

	req, err := ParseRequirementJSON(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted requirements: %w", err)
	}
	if req.Title == "" {
		req.Title = title
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("extracted requirements failed validation: %w", err)
	}
	return req, nil
}

// ParseRequirementJSON validates and decodes the extractor's JSON output.
// Skill lists are canonicalized on the way in so downstream matching never
// sees raw aliases.
func ParseRequirementJSON(raw string) (*types.JobRequirement, error) {
	raw = CleanJSONBlock(raw)

	if err := schemas.ValidateRequirementJSON(raw); err != nil {
		return nil, err
	}

	var decoded struct {
		Title             string   `json:"title"`
		Seniority         string   `json:"seniority"`
		MustHaveSkills    []string `json:"must_have_skills"`
		NiceToHaveSkills  []string `json:"nice_to_have_skills"`
		ImplicitSkills    []string `json:"implicit_skills"`
		MinYears          float64  `json:"min_years"`
		PreferredYears    float64  `json:"preferred_years"`
		EducationLevel    string   `json:"education_level"`
		EducationFields   []string `json:"education_fields"`
		Certifications    []string `json:"certifications"`
		LocationType      string   `json:"location_type"`
		City              string   `json:"city"`
		VisaSponsorship   *bool    `json:"visa_sponsorship"`
		Industry          string   `json:"industry"`
		BehavioralSignals []string `json:"behavioral_signals"`
		ContextPhrases    []string `json:"context_phrases"`
		RelatedTitles     []string `json:"related_titles"`
		Responsibilities  []string `json:"responsibilities"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}

	return &types.JobRequirement{
		Title:             strings.TrimSpace(decoded.Title),
		Seniority:         types.ParseSeniority(decoded.Seniority),
		MustHaveSkills:    skills.CanonicalAll(decoded.MustHaveSkills),
		NiceToHaveSkills:  skills.CanonicalAll(decoded.NiceToHaveSkills),
		ImplicitSkills:    skills.CanonicalAll(decoded.ImplicitSkills),
		MinYears:          clampYears(decoded.MinYears),
		PreferredYears:    clampYears(decoded.PreferredYears),
		EducationLevel:    strings.ToLower(strings.TrimSpace(decoded.EducationLevel)),
		EducationFields:   decoded.EducationFields,
		Certifications:    decoded.Certifications,
		LocationType:      types.LocationType(strings.ToLower(strings.TrimSpace(decoded.LocationType))),
		City:              strings.TrimSpace(decoded.City),
		VisaSponsorship:   decoded.VisaSponsorship,
		Industry:          strings.TrimSpace(decoded.Industry),
		BehavioralSignals: decoded.BehavioralSignals,
		ContextPhrases:    decoded.ContextPhrases,
		RelatedTitles:     decoded.RelatedTitles,
		Responsibilities:  decoded.Responsibilities,
	}, nil
}

func clampYears(years float64) float64 {
	if years < 0 {
		return 0
	}
	if years > 50 {
		return 50
	}
	return years
}

func buildRequirementPrompt(title, description, location string) string {
	var sb strings.Builder
	sb.WriteString(`You are an expert job posting parser. Extract normalized hiring requirements from a raw job posting.
Do not invent requirements that are not in the text.

Return ONLY valid JSON matching this exact structure:
{
  "title": string,                    // normalized role title
  "seniority": string,                // one of: junior, mid, senior, staff, principal, lead, manager, director, c_level
  "must_have_skills": [string],       // hard requirements, short canonical skill names
  "nice_to_have_skills": [string],    // preferred skills
  "implicit_skills": [string],        // skills clearly implied but not listed
  "min_years": number,                // minimum years of experience, 0 if unstated
  "preferred_years": number,          // preferred years of experience, 0 if unstated
  "education_level": string,          // associate, bachelor, master, phd, or ""
  "education_fields": [string],       // preferred fields of study
  "certifications": [string],         // required certifications
  "location_type": string,            // remote, hybrid, onsite, or ""
  "city": string,                     // required city for hybrid/onsite, or ""
  "visa_sponsorship": boolean|null,   // null when the posting does not say
  "industry": string,                 // industry vertical
  "behavioral_signals": [string],     // behavioral keywords the posting emphasizes
  "context_phrases": [string],        // phrases implying capability, verbatim
  "related_titles": [string],         // alternate titles for the same role
  "responsibilities": [string]        // day-to-day duties, verbatim
}

`)
	sb.WriteString(fmt.Sprintf("Job title: %s\n", title))
	if location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", location))
	}
	sb.WriteString("\nJob posting:\n\"\"\"\n")
	sb.WriteString(description)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}
