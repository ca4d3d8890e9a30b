package types

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CandidateProfile represents everything the engine knows about one candidate.
// It is assembled by the surrounding application and is read-only to the engine.
type CandidateProfile struct {
	ID              string           `json:"id" validate:"required"`
	Skills          []string         `json:"skills"`
	Tools           []string         `json:"tools"`
	PrimaryTitle    string           `json:"primary_title"`
	SecondaryTitles []string         `json:"secondary_titles,omitempty"`
	TargetTitles    []string         `json:"target_titles,omitempty"`
	Experience      ExperienceList   `json:"experience"`
	Education       EducationList    `json:"education"`
	Certifications  []string         `json:"certifications,omitempty"`
	Location        string           `json:"location,omitempty"`
	VisaStatus      string           `json:"visa_status,omitempty"`
	YearsReported   float64          `json:"years_reported,omitempty" validate:"min=0"` // self-reported, advisory only
	RemoteOK        bool             `json:"remote_ok,omitempty"`
	RelocationOK    bool             `json:"relocation_ok,omitempty"`
	TargetLocations []string         `json:"target_locations,omitempty"`
	ResumeText      string           `json:"resume_text"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// WorkExperience is one structured role on a candidate's résumé.
// Start/end dates stay as raw strings; parsing them is the experience
// calculator's job because résumés carry every imaginable date format.
type WorkExperience struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Current          bool     `json:"current,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Education is one structured education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`     // associate, bachelor, master, phd, or free text
	Field       string `json:"field"`      // e.g. "Computer Science"
	EndYear     int    `json:"end_year,omitempty"`
}

// ExperienceList normalizes experience arrays at the boundary: upstream systems
// deliver them either as typed JSON arrays or as JSON-encoded strings. Core logic
// only ever sees the typed form.
type ExperienceList []WorkExperience

// UnmarshalJSON accepts both a JSON array and a JSON string containing an array.
func (l *ExperienceList) UnmarshalJSON(data []byte) error {
	raw, ok := unquoteIfString(data)
	if !ok {
		// A string that does not contain valid JSON degrades to an empty list
		// rather than failing the whole profile decode.
		*l = nil
		return nil
	}
	var entries []WorkExperience
	if err := json.Unmarshal(raw, &entries); err != nil {
		*l = nil
		return nil
	}
	*l = entries
	return nil
}

// EducationList mirrors ExperienceList for education entries.
type EducationList []Education

// UnmarshalJSON accepts both a JSON array and a JSON string containing an array.
func (l *EducationList) UnmarshalJSON(data []byte) error {
	raw, ok := unquoteIfString(data)
	if !ok {
		*l = nil
		return nil
	}
	var entries []Education
	if err := json.Unmarshal(raw, &entries); err != nil {
		*l = nil
		return nil
	}
	*l = entries
	return nil
}

// unquoteIfString unwraps a JSON string payload into the JSON it contains.
// Returns the original bytes when the payload is already an array or object.
func unquoteIfString(data []byte) ([]byte, bool) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return []byte("null"), true
	}
	if trimmed[0] != '"' {
		return data, true
	}
	var inner string
	if err := json.Unmarshal(data, &inner); err != nil {
		return nil, false
	}
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return []byte("null"), true
	}
	return []byte(inner), true
}

// AllTitles returns every title associated with the candidate: primary,
// secondary, target, and per-role titles, in that order.
func (p *CandidateProfile) AllTitles() []string {
	titles := make([]string, 0, 4+len(p.Experience))
	if p.PrimaryTitle != "" {
		titles = append(titles, p.PrimaryTitle)
	}
	titles = append(titles, p.SecondaryTitles...)
	titles = append(titles, p.TargetTitles...)
	for _, exp := range p.Experience {
		if exp.Title != "" {
			titles = append(titles, exp.Title)
		}
	}
	return titles
}
