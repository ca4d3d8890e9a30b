package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/fit-engine/internal/types"
)

// ReplaceCurve persists a freshly built calibration curve, overwriting the
// previous curve for the same profile and job family.
func (db *DB) ReplaceCurve(ctx context.Context, curve *types.CalibrationCurve) error {
	bins, err := json.Marshal(curve.Bins)
	if err != nil {
		return fmt.Errorf("failed to encode calibration bins: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`INSERT INTO calibration_curves (profile, job_family, bins, built_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (profile, job_family) DO UPDATE SET bins = EXCLUDED.bins, built_at = EXCLUDED.built_at`,
		curve.Profile, curve.JobFamily, bins, curve.BuiltAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store calibration curve: %w", err)
	}
	return nil
}

// GetCurve loads the stored curve for a profile and job family. Returns
// (nil, nil) when no curve has been built yet.
func (db *DB) GetCurve(ctx context.Context, profile, jobFamily string) (*types.CalibrationCurve, error) {
	curve := &types.CalibrationCurve{Profile: profile, JobFamily: jobFamily}
	var bins []byte
	err := db.pool.QueryRow(ctx,
		`SELECT bins, built_at FROM calibration_curves WHERE profile = $1 AND job_family = $2`,
		profile, jobFamily,
	).Scan(&bins, &curve.BuiltAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query calibration curve: %w", err)
	}
	if err := json.Unmarshal(bins, &curve.Bins); err != nil {
		return nil, fmt.Errorf("failed to decode calibration bins: %w", err)
	}
	return curve, nil
}
