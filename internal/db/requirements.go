package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/fit-engine/internal/types"
)

// GetRequirement returns the cached requirement for a posting hash, or nil
// when the posting has not been extracted yet.
func (db *DB) GetRequirement(ctx context.Context, contentHash string) (*types.JobRequirement, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT requirement FROM job_requirements WHERE content_hash = $1`,
		contentHash,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get requirement: %w", err)
	}

	var req types.JobRequirement
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("failed to decode cached requirement: %w", err)
	}
	return &req, nil
}

// PutRequirement caches an extracted requirement under its content hash.
func (db *DB) PutRequirement(ctx context.Context, contentHash string, req *types.JobRequirement) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal requirement: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_requirements (content_hash, requirement)
		 VALUES ($1, $2)
		 ON CONFLICT (content_hash) DO UPDATE SET requirement = $2, created_at = NOW()`,
		contentHash, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to cache requirement: %w", err)
	}
	return nil
}
