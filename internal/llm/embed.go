package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"

	"github.com/jonathan/fit-engine/internal/semantic"
)

// DefaultEmbeddingModel is used when no embedding model is configured.
const DefaultEmbeddingModel = "text-embedding-004"

// Embedder returns a semantic.Embedder backed by the Gemini embedding API.
// An empty model name falls back to DefaultEmbeddingModel.
func (c *GeminiClient) Embedder(model string) semantic.Embedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	em := c.client.EmbeddingModel(model)
	return func(ctx context.Context, text string) ([]float64, error) {
		if text == "" {
			return nil, nil
		}
		res, err := em.EmbedContent(ctx, genai.Text(text))
		if err != nil {
			return nil, fmt.Errorf("failed to embed content: %w", err)
		}
		if res == nil || res.Embedding == nil || len(res.Embedding.Values) == 0 {
			return nil, nil
		}
		vector := make([]float64, len(res.Embedding.Values))
		for i, v := range res.Embedding.Values {
			vector[i] = float64(v)
		}
		return vector, nil
	}
}
