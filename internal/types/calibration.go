package types

import "time"

// CalibrationBin is one bucket of a calibration curve: the historical interview
// probability observed for raw scores near the bucket value.
type CalibrationBin struct {
	Bucket   int     `json:"bucket"` // multiple of 5 in [0,100]
	P        float64 `json:"p"`      // positive-outcome proportion, 0-1
	N        int     `json:"n"`      // total samples
	Outcomes int     `json:"outcomes"`
}

// CalibrationCurve is an ordered set of bins for one (profile, job family)
// combination. After Pool Adjacent Violators, P is non-decreasing in Bucket.
// Curves are rebuilt wholesale; a published curve is never patched in place.
type CalibrationCurve struct {
	Profile   string           `json:"profile"`
	JobFamily string           `json:"job_family,omitempty"` // empty = global curve
	Bins      []CalibrationBin `json:"bins"`
	BuiltAt   time.Time        `json:"built_at"`
}

// TotalSamples returns the sum of bin sizes across the curve.
func (c *CalibrationCurve) TotalSamples() int {
	total := 0
	for _, bin := range c.Bins {
		total += bin.N
	}
	return total
}

// CalibrationResult is the calibrated interview probability for one score.
// A nil CalibrationResult means there was not enough history; the caller
// falls back to the raw uncalibrated score.
type CalibrationResult struct {
	Probability float64 `json:"probability"` // historical proportion for the bucket
	Low         float64 `json:"low"`         // 95% Wilson interval lower bound
	High        float64 `json:"high"`        // 95% Wilson interval upper bound
	Bucket      int     `json:"bucket"`
	Samples     int     `json:"samples"`
	JobFamily   string  `json:"job_family,omitempty"`
}

// OutcomeEvent is one append-only record of a scored pair and, once known,
// its hiring outcome. Calibration rebuilds read all events with a non-nil
// outcome; online scoring writes one event per computed score.
type OutcomeEvent struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	JobID       string    `json:"job_id"`
	Score       int       `json:"score"`
	Profile     string    `json:"profile"`
	JobFamily   string    `json:"job_family,omitempty"`
	Outcome     *bool     `json:"outcome,omitempty"` // nil until the funnel resolves
	CreatedAt   time.Time `json:"created_at"`
}
