package types

// Dimension identifies one of the eight fixed scoring dimensions.
type Dimension string

// The eight scoring dimensions.
const (
	DimensionKeyword    Dimension = "keyword"
	DimensionExperience Dimension = "experience"
	DimensionTitle      Dimension = "title"
	DimensionEducation  Dimension = "education"
	DimensionLocation   Dimension = "location"
	DimensionFormatting Dimension = "formatting"
	DimensionBehavioral Dimension = "behavioral"
	DimensionSemantic   Dimension = "semantic"
)

// Dimensions lists all dimensions in aggregation order.
var Dimensions = []Dimension{
	DimensionKeyword,
	DimensionExperience,
	DimensionTitle,
	DimensionEducation,
	DimensionLocation,
	DimensionFormatting,
	DimensionBehavioral,
	DimensionSemantic,
}

// DimensionScore is the outcome of scoring a single dimension.
type DimensionScore struct {
	Score   float64  `json:"score"` // 0-100
	Details string   `json:"details,omitempty"`
	Matched []string `json:"matched,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// NeutralScore is the fallback used when a dimension cannot be computed,
// typically because an external dependency is unavailable.
const NeutralScore = 50.0

// Neutral returns a DimensionScore carrying the neutral fallback value.
func Neutral(details string) DimensionScore {
	return DimensionScore{Score: NeutralScore, Details: details}
}

// Decision is the recommended remediation action derived from the total score.
type Decision string

// Decisions, from best to worst fit.
const (
	DecisionReady    Decision = "ready"
	DecisionOptimize Decision = "optimize"
	DecisionRewrite  Decision = "rewrite"
	DecisionReject   Decision = "reject"
)

// ApplyTier buckets a fit score for downstream apply automation.
type ApplyTier string

// Apply tiers.
const (
	TierNotStored      ApplyTier = "not_stored"
	TierBelowThreshold ApplyTier = "below_threshold"
	TierModerate       ApplyTier = "moderate"
	TierStrong         ApplyTier = "strong"
)

// ScoreResult is the full outcome of scoring one (candidate, job) pair.
// It is produced fresh on every scoring call; the caller persists it keyed
// by (candidate_id, job_id).
type ScoreResult struct {
	CandidateID   string                       `json:"candidate_id"`
	JobID         string                       `json:"job_id"`
	Total         int                          `json:"total"` // 0-100
	Dimensions    map[Dimension]DimensionScore `json:"dimensions"`
	Decision      Decision                     `json:"decision"`
	ApplyTier     ApplyTier                    `json:"apply_tier"`
	MatchedSkills []string                     `json:"matched_skills,omitempty"`
	MissingSkills []string                     `json:"missing_skills,omitempty"`
	Explanation   string                       `json:"explanation,omitempty"`
	Profile       string                       `json:"profile"` // scoring profile name
	Experience    *ExperienceResult            `json:"experience,omitempty"`
	Calibration   *CalibrationResult           `json:"calibration,omitempty"`
}

// ExperienceResult is the aggregate produced by the experience duration
// calculator. Total months is monotone under adding valid non-overlapping
// intervals and is capped at 50 years regardless of input.
type ExperienceResult struct {
	TotalMonths      int     `json:"total_months"`
	InternshipMonths int     `json:"internship_months"`
	MergedIntervals  int     `json:"merged_intervals"`
	Confidence       float64 `json:"confidence"` // 0-1
	UnparseableRoles int     `json:"unparseable_roles"`
}

// TotalYears returns the primary worked time in fractional years.
func (r ExperienceResult) TotalYears() float64 {
	return float64(r.TotalMonths) / 12.0
}
