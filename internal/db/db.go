// Package db provides PostgreSQL persistence for the scoring engine: the
// requirement cache, score results, outcome events, embedding vectors, and
// calibration curves. A MemoryStore twin backs tests and DB-less runs.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// schema creates the engine's tables when they do not exist yet.
const schema = `
CREATE TABLE IF NOT EXISTS job_requirements (
	content_hash TEXT PRIMARY KEY,
	requirement  JSONB NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS score_results (
	candidate_id TEXT NOT NULL,
	job_id       TEXT NOT NULL,
	result       JSONB NOT NULL,
	total        INT NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (candidate_id, job_id)
);

CREATE TABLE IF NOT EXISTS outcome_events (
	id           TEXT PRIMARY KEY,
	candidate_id TEXT NOT NULL,
	job_id       TEXT NOT NULL,
	score        INT NOT NULL,
	profile      TEXT NOT NULL,
	job_family   TEXT NOT NULL DEFAULT '',
	outcome      BOOLEAN,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS outcome_events_profile_idx
	ON outcome_events (profile) WHERE outcome IS NOT NULL;

CREATE TABLE IF NOT EXISTS embedding_vectors (
	entity_id TEXT NOT NULL,
	model     TEXT NOT NULL,
	vector    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (entity_id, model)
);

CREATE TABLE IF NOT EXISTS calibration_curves (
	profile    TEXT NOT NULL,
	job_family TEXT NOT NULL DEFAULT '',
	bins       JSONB NOT NULL,
	built_at   TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (profile, job_family)
);
`

// InitSchema creates all engine tables if missing.
func (db *DB) InitSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
