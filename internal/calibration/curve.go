package calibration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/fit-engine/internal/types"
)

// minReliableSamples is the minimum history size a curve needs before its
// probabilities are trusted. Below it Lookup returns nil and callers fall
// back to the raw score.
const minReliableSamples = 30

// CurveStore persists calibration curves per (profile, job family). Rebuilds
// replace curves wholesale.
type CurveStore interface {
	ReplaceCurve(ctx context.Context, curve *types.CalibrationCurve) error
	GetCurve(ctx context.Context, profile, jobFamily string) (*types.CalibrationCurve, error)
}

// EventSource supplies historical scored outcomes for a rebuild.
type EventSource interface {
	ResolvedEvents(ctx context.Context, profile string) ([]types.OutcomeEvent, error)
}

type curveKey struct {
	profile   string
	jobFamily string
}

// Calibrator holds published curves for online lookup. Lookups only read
// previously published, already isotonic curves; rebuilds swap whole curves
// under a short write lock, so online scoring and offline rebuilds run
// concurrently without further coordination.
type Calibrator struct {
	mu     sync.RWMutex
	curves map[curveKey]*types.CalibrationCurve
	store  CurveStore
	logger *zap.Logger
	now    func() time.Time
}

// NewCalibrator builds a Calibrator. The store may be nil for in-memory use.
func NewCalibrator(store CurveStore, logger *zap.Logger) *Calibrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calibrator{
		curves: make(map[curveKey]*types.CalibrationCurve),
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Rebuild recomputes curves for a scoring profile from its resolved outcome
// events: one global curve plus one per observed job family. Each curve is
// persisted and atomically published for online lookup.
func (c *Calibrator) Rebuild(ctx context.Context, source EventSource, profile string) error {
	events, err := source.ResolvedEvents(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to load outcome events for profile %s: %w", profile, err)
	}

	byFamily := map[string][]types.OutcomeEvent{"": events}
	for _, event := range events {
		if event.JobFamily != "" {
			byFamily[event.JobFamily] = append(byFamily[event.JobFamily], event)
		}
	}

	for family, familyEvents := range byFamily {
		curve := &types.CalibrationCurve{
			Profile:   profile,
			JobFamily: family,
			Bins:      PoolAdjacentViolators(BinOutcomes(familyEvents)),
			BuiltAt:   c.now(),
		}

		if c.store != nil {
			if err := c.store.ReplaceCurve(ctx, curve); err != nil {
				return fmt.Errorf("failed to persist curve (profile=%s family=%q): %w", profile, family, err)
			}
		}
		c.publish(curve)

		c.logger.Info("published calibration curve",
			zap.String("profile", profile),
			zap.String("job_family", family),
			zap.Int("bins", len(curve.Bins)),
			zap.Int("samples", curve.TotalSamples()),
		)
	}
	return nil
}

// publish atomically replaces the cached curve for its key.
func (c *Calibrator) publish(curve *types.CalibrationCurve) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.curves[curveKey{profile: curve.Profile, jobFamily: curve.JobFamily}] = curve
}

// Lookup maps a raw score to a calibrated probability using the published
// curve for (profile, jobFamily), falling back to the profile's global curve
// and, if needed, the persistent store. It returns nil whenever the curve has
// fewer than minReliableSamples total samples or no curve exists; nil means
// "use the raw score", never an error.
func (c *Calibrator) Lookup(ctx context.Context, profile, jobFamily string, score int) *types.CalibrationResult {
	curve := c.cached(profile, jobFamily)
	if curve == nil && jobFamily != "" {
		curve = c.cached(profile, "")
	}
	if curve == nil && c.store != nil {
		loaded, err := c.store.GetCurve(ctx, profile, jobFamily)
		if err == nil && loaded != nil {
			c.publish(loaded)
			curve = loaded
		}
		// The store misses the family the same way the cache does: fall
		// back to the profile's global curve.
		if curve == nil && jobFamily != "" {
			loaded, err := c.store.GetCurve(ctx, profile, "")
			if err == nil && loaded != nil {
				c.publish(loaded)
				curve = loaded
			}
		}
	}
	if curve == nil {
		return nil
	}
	if curve.TotalSamples() < minReliableSamples {
		return nil
	}

	bin, ok := nearestBin(curve.Bins, Bucket(score))
	if !ok {
		return nil
	}

	low, high := WilsonInterval(bin.Outcomes, bin.N)
	return &types.CalibrationResult{
		Probability: bin.P,
		Low:         low,
		High:        high,
		Bucket:      bin.Bucket,
		Samples:     bin.N,
		JobFamily:   curve.JobFamily,
	}
}

func (c *Calibrator) cached(profile, jobFamily string) *types.CalibrationCurve {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.curves[curveKey{profile: profile, jobFamily: jobFamily}]
}

// nearestBin returns the exact bucket when present, otherwise the bin whose
// bucket is closest by distance.
func nearestBin(bins []types.CalibrationBin, bucket int) (types.CalibrationBin, bool) {
	if len(bins) == 0 {
		return types.CalibrationBin{}, false
	}
	best := bins[0]
	bestDist := abs(bins[0].Bucket - bucket)
	for _, bin := range bins[1:] {
		if dist := abs(bin.Bucket - bucket); dist < bestDist {
			best = bin
			bestDist = dist
		}
	}
	return best, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
