package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/fit-engine/internal/db"
	"github.com/jonathan/fit-engine/internal/logger"
	"github.com/jonathan/fit-engine/internal/types"
)

// backend is everything the CLI needs from persistence. Both the Postgres
// layer and the in-memory store satisfy it.
type backend interface {
	GetRequirement(ctx context.Context, contentHash string) (*types.JobRequirement, error)
	PutRequirement(ctx context.Context, contentHash string, req *types.JobRequirement) error
	UpsertScoreResult(ctx context.Context, result *types.ScoreResult) error
	GetScoreResult(ctx context.Context, candidateID, jobID string) (*types.ScoreResult, error)
	AppendOutcomeEvent(ctx context.Context, event *types.OutcomeEvent) error
	ResolveOutcome(ctx context.Context, candidateID, jobID string, outcome bool) error
	ResolvedEvents(ctx context.Context, profile string) ([]types.OutcomeEvent, error)
	GetVector(ctx context.Context, entityID, model string) ([]float64, error)
	PutVector(ctx context.Context, entityID, model string, vector []float64) error
	ReplaceCurve(ctx context.Context, curve *types.CalibrationCurve) error
	GetCurve(ctx context.Context, profile, jobFamily string) (*types.CalibrationCurve, error)
}

// jobPosting is the on-disk job input format.
type jobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

func loadProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume JSON: %w", err)
	}
	return &profile, nil
}

func loadJobPosting(path string) (*jobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	var job jobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	if job.ID == "" || job.Title == "" {
		return nil, fmt.Errorf("job JSON requires 'id' and 'title'")
	}
	return &job, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	log, err := logger.New(false, verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}

// openBackend connects to Postgres when a URL is given, otherwise returns an
// in-memory store that vanishes at exit. The returned closer is safe to call
// either way.
func openBackend(ctx context.Context, databaseURL string) (backend, func(), error) {
	if databaseURL == "" {
		return db.NewMemoryStore(), func() {}, nil
	}
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.InitSchema(ctx); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return database, database.Close, nil
}

func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
