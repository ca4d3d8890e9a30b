package db

import (
	"context"
	"fmt"

	"github.com/jonathan/fit-engine/internal/types"
)

// AppendOutcomeEvent stores one scored-pair event. Events are append-only;
// only the outcome column is ever updated, when the hiring funnel resolves.
func (db *DB) AppendOutcomeEvent(ctx context.Context, event *types.OutcomeEvent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO outcome_events (id, candidate_id, job_id, score, profile, job_family, outcome, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO NOTHING`,
		event.ID, event.CandidateID, event.JobID, event.Score,
		event.Profile, event.JobFamily, event.Outcome, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append outcome event: %w", err)
	}
	return nil
}

// ResolveOutcome records the final outcome for every event of a pair.
func (db *DB) ResolveOutcome(ctx context.Context, candidateID, jobID string, outcome bool) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE outcome_events SET outcome = $3 WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID, outcome,
	)
	if err != nil {
		return fmt.Errorf("failed to resolve outcome: %w", err)
	}
	return nil
}

// ResolvedEvents returns every event with a known outcome for a scoring
// profile, the input to a calibration rebuild.
func (db *DB) ResolvedEvents(ctx context.Context, profile string) ([]types.OutcomeEvent, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, job_id, score, profile, job_family, outcome, created_at
		 FROM outcome_events
		 WHERE profile = $1 AND outcome IS NOT NULL
		 ORDER BY created_at`,
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query outcome events: %w", err)
	}
	defer rows.Close()

	var events []types.OutcomeEvent
	for rows.Next() {
		var event types.OutcomeEvent
		if err := rows.Scan(
			&event.ID, &event.CandidateID, &event.JobID, &event.Score,
			&event.Profile, &event.JobFamily, &event.Outcome, &event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan outcome event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read outcome events: %w", err)
	}
	return events, nil
}
