// Package embeddings provides the embedding client contract and the vector
// math used by the similarity pipeline.
package embeddings

import "math"

// CosineSimilarity returns the normalized dot product of two vectors.
// It is defined as 0 when either vector is empty, the lengths differ, or
// either magnitude is 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
