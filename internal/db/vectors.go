package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetVector loads a cached embedding. Returns (nil, nil) when no vector
// is stored for the entity under the given model.
func (db *DB) GetVector(ctx context.Context, entityID, model string) ([]float64, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT vector FROM embedding_vectors WHERE entity_id = $1 AND model = $2`,
		entityID, model,
	).Scan(&payload)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query embedding vector: %w", err)
	}

	var vector []float64
	if err := json.Unmarshal(payload, &vector); err != nil {
		return nil, fmt.Errorf("failed to decode embedding vector: %w", err)
	}
	return vector, nil
}

// PutVector stores an embedding, replacing any previous vector for the
// same entity and model.
func (db *DB) PutVector(ctx context.Context, entityID, model string, vector []float64) error {
	payload, err := json.Marshal(vector)
	if err != nil {
		return fmt.Errorf("failed to encode embedding vector: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`INSERT INTO embedding_vectors (entity_id, model, vector)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (entity_id, model) DO UPDATE SET vector = EXCLUDED.vector`,
		entityID, model, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to store embedding vector: %w", err)
	}
	return nil
}
