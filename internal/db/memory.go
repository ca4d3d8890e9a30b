package db

import (
	"context"
	"sync"

	"github.com/jonathan/fit-engine/internal/types"
)

// MemoryStore is an in-process store used by tests and by runs without a
// database. It implements the same cache and store interfaces as DB.
type MemoryStore struct {
	mu           sync.RWMutex
	requirements map[string]*types.JobRequirement
	results      map[string]*types.ScoreResult
	events       []types.OutcomeEvent
	vectors      map[string][]float64
	curves       map[string]*types.CalibrationCurve
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		requirements: make(map[string]*types.JobRequirement),
		results:      make(map[string]*types.ScoreResult),
		vectors:      make(map[string][]float64),
		curves:       make(map[string]*types.CalibrationCurve),
	}
}

func pairKey(candidateID, jobID string) string {
	return candidateID + "\x00" + jobID
}

// GetRequirement returns the cached requirement for a content hash, or
// (nil, nil) when absent.
func (m *MemoryStore) GetRequirement(ctx context.Context, contentHash string) (*types.JobRequirement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requirements[contentHash], nil
}

// PutRequirement caches an extracted requirement under its content hash.
func (m *MemoryStore) PutRequirement(ctx context.Context, contentHash string, req *types.JobRequirement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requirements[contentHash] = req
	return nil
}

// UpsertScoreResult stores a result, replacing any previous score for the
// same candidate and job.
func (m *MemoryStore) UpsertScoreResult(ctx context.Context, result *types.ScoreResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[pairKey(result.CandidateID, result.JobID)] = result
	return nil
}

// GetScoreResult returns the stored result for a pair, or (nil, nil).
func (m *MemoryStore) GetScoreResult(ctx context.Context, candidateID, jobID string) (*types.ScoreResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.results[pairKey(candidateID, jobID)], nil
}

// AppendOutcomeEvent records a scored-pair event.
func (m *MemoryStore) AppendOutcomeEvent(ctx context.Context, event *types.OutcomeEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *event)
	return nil
}

// ResolveOutcome sets the outcome on every event for the pair.
func (m *MemoryStore) ResolveOutcome(ctx context.Context, candidateID, jobID string, outcome bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.events {
		if m.events[i].CandidateID == candidateID && m.events[i].JobID == jobID {
			value := outcome
			m.events[i].Outcome = &value
		}
	}
	return nil
}

// ResolvedEvents returns events with a known outcome for a profile.
func (m *MemoryStore) ResolvedEvents(ctx context.Context, profile string) ([]types.OutcomeEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var resolved []types.OutcomeEvent
	for _, event := range m.events {
		if event.Profile == profile && event.Outcome != nil {
			resolved = append(resolved, event)
		}
	}
	return resolved, nil
}

// GetVector returns the cached embedding for an entity, or (nil, nil).
func (m *MemoryStore) GetVector(ctx context.Context, entityID, model string) ([]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.vectors[entityID+"\x00"+model], nil
}

// PutVector stores an embedding for an entity and model.
func (m *MemoryStore) PutVector(ctx context.Context, entityID, model string, vector []float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vectors[entityID+"\x00"+model] = vector
	return nil
}

// ReplaceCurve stores a calibration curve for a profile and job family.
func (m *MemoryStore) ReplaceCurve(ctx context.Context, curve *types.CalibrationCurve) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.curves[curve.Profile+"\x00"+curve.JobFamily] = curve
	return nil
}

// GetCurve returns the stored curve for a profile and family, or (nil, nil).
func (m *MemoryStore) GetCurve(ctx context.Context, profile, jobFamily string) (*types.CalibrationCurve, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.curves[profile+"\x00"+jobFamily], nil
}
