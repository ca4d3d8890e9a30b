package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/fit-engine/internal/calibration"
	"github.com/jonathan/fit-engine/internal/llm"
	"github.com/jonathan/fit-engine/internal/scoring"
	"github.com/jonathan/fit-engine/internal/semantic"
)

const vectorCacheTTL = 15 * time.Minute

// engineDeps holds a fully wired engine plus the pieces commands use
// alongside it.
type engineDeps struct {
	engine     *scoring.Engine
	extractor  *llm.Extractor
	calibrator *calibration.Calibrator
	client     llm.Client
}

// buildEngine wires the scoring engine against a backend. Without an API key
// the LLM-backed pieces are absent: requirement extraction falls back to
// minimal records and the semantic dimension stays neutral.
func buildEngine(ctx context.Context, store backend, apiKey, embeddingModel string, log *zap.Logger) (*engineDeps, error) {
	deps := &engineDeps{
		calibrator: calibration.NewCalibrator(store, log),
	}

	opts := scoring.EngineOptions{
		Calibrator: deps.calibrator,
		Recorder:   store,
		Logger:     log,
	}

	if apiKey != "" {
		if embeddingModel == "" {
			embeddingModel = llm.DefaultEmbeddingModel
		}
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		deps.client = client
		deps.extractor = llm.NewExtractor(client, store)
		opts.Soft = llm.NewGeminiSoftScorer(client)
		opts.Vectors = semantic.NewVectorCache(semantic.CacheOptions{
			Store: store,
			Model: embeddingModel,
			TTL:   vectorCacheTTL,
			Embed: client.Embedder(embeddingModel),
		})
	}

	deps.engine = scoring.NewEngine(opts)
	return deps, nil
}

func (d *engineDeps) Close() {
	if d.client != nil {
		_ = d.client.Close()
	}
}
