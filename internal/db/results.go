package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/fit-engine/internal/types"
)

// UpsertScoreResult stores a fresh score result keyed by (candidate, job).
// The upsert keeps batch re-runs and aborted runs idempotent: re-scoring a
// pair simply replaces its row.
func (db *DB) UpsertScoreResult(ctx context.Context, result *types.ScoreResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal score result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO score_results (candidate_id, job_id, result, total)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (candidate_id, job_id) DO UPDATE SET result = $3, total = $4, updated_at = NOW()`,
		result.CandidateID, result.JobID, payload, result.Total,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert score result: %w", err)
	}
	return nil
}

// GetScoreResult returns a stored result for a pair, or nil when absent.
func (db *DB) GetScoreResult(ctx context.Context, candidateID, jobID string) (*types.ScoreResult, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT result FROM score_results WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score result: %w", err)
	}

	var result types.ScoreResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to decode score result: %w", err)
	}
	return &result, nil
}
