// Package calibration converts raw fit scores into historically grounded
// interview probabilities. Offline, it bins scored outcomes, enforces
// monotonicity with Pool Adjacent Violators, and publishes whole curves;
// online, it maps a score to its bucket and a Wilson confidence interval.
package calibration

import (
	"sort"

	"github.com/jonathan/fit-engine/internal/types"
)

// bucketSize is the score granularity of calibration bins.
const bucketSize = 5

// Bucket snaps a raw score to its nearest multiple of 5, clamped to [0,100].
func Bucket(score int) int {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return ((score + bucketSize/2) / bucketSize) * bucketSize
}

// BinOutcomes accumulates (n, outcomes) per bucket from resolved events.
// The returned bins are ordered by bucket but not yet monotone in p.
func BinOutcomes(events []types.OutcomeEvent) []types.CalibrationBin {
	type tally struct {
		n        int
		outcomes int
	}
	tallies := make(map[int]*tally)
	for _, event := range events {
		if event.Outcome == nil {
			continue
		}
		bucket := Bucket(event.Score)
		t, ok := tallies[bucket]
		if !ok {
			t = &tally{}
			tallies[bucket] = t
		}
		t.n++
		if *event.Outcome {
			t.outcomes++
		}
	}

	bins := make([]types.CalibrationBin, 0, len(tallies))
	for bucket, t := range tallies {
		bins = append(bins, types.CalibrationBin{
			Bucket:   bucket,
			P:        float64(t.outcomes) / float64(t.n),
			N:        t.n,
			Outcomes: t.outcomes,
		})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Bucket < bins[j].Bucket })
	return bins
}

// PoolAdjacentViolators enforces isotonicity: while any adjacent pair has
// bin[i].p > bin[i+1].p, the pair is merged into one bin with the pooled
// proportion and the scan restarts. The result is non-decreasing in p and
// preserves total sample count. A higher raw score must never map to a lower
// calibrated probability, so this invariant is non-negotiable.
func PoolAdjacentViolators(bins []types.CalibrationBin) []types.CalibrationBin {
	if len(bins) <= 1 {
		return append([]types.CalibrationBin(nil), bins...)
	}

	result := append([]types.CalibrationBin(nil), bins...)
	for {
		merged := false
		for i := 0; i+1 < len(result); i++ {
			if result[i].P <= result[i+1].P {
				continue
			}
			pooled := types.CalibrationBin{
				// The pooled bin keeps the lower bucket so lookups by
				// distance stay anchored to the low end of the pool.
				Bucket:   result[i].Bucket,
				N:        result[i].N + result[i+1].N,
				Outcomes: result[i].Outcomes + result[i+1].Outcomes,
			}
			pooled.P = float64(pooled.Outcomes) / float64(pooled.N)
			result = append(result[:i], append([]types.CalibrationBin{pooled}, result[i+2:]...)...)
			merged = true
			break
		}
		if !merged {
			return result
		}
	}
}
