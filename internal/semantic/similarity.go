// Package semantic scores the embedding-similarity dimension. It never embeds
// text itself: embedding vectors come from a caller-provided Embedder, and a
// missing or degenerate vector degrades the dimension to a neutral score
// instead of failing the scoring call.
package semantic

import (
	"math"

	"github.com/jonathan/fit-engine/internal/types"
)

// Cosine computes cosine similarity between two vectors. Mismatched lengths,
// empty vectors, and zero-norm vectors all return ok=false.
func Cosine(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// ScoreFromVectors maps cosine similarity from [-1,1] onto [0,100] via
// (sim+1)*50. Degenerate inputs score neutral.
func ScoreFromVectors(a, b []float64) types.DimensionScore {
	sim, ok := Cosine(a, b)
	if !ok {
		return types.Neutral("embedding unavailable or degenerate")
	}
	return types.DimensionScore{
		Score:   (sim + 1) * 50,
		Details: "cosine similarity of resume and job embeddings",
	}
}

// MeanPool averages a set of equal-length vectors into one representative
// vector, used to compare a role's bullet embeddings against a job's
// responsibility embeddings. Vectors whose length disagrees with the first
// are skipped; pooling nothing returns nil.
func MeanPool(vectors [][]float64) []float64 {
	var pooled []float64
	count := 0
	for _, vec := range vectors {
		if len(vec) == 0 {
			continue
		}
		if pooled == nil {
			pooled = make([]float64, len(vec))
		}
		if len(vec) != len(pooled) {
			continue
		}
		for i, v := range vec {
			pooled[i] += v
		}
		count++
	}
	if count == 0 {
		return nil
	}
	inv := 1.0 / float64(count)
	for i := range pooled {
		pooled[i] *= inv
	}
	return pooled
}
