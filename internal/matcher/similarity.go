package matcher

import (
	"context"
	"fmt"
	"math"

	"github.com/pmezard/go-difflib/difflib"

	internalErrors "alfredoptarigan/resume-matcher/internal/errors"
)

// Pairs whose character ratio exceeds this are treated as identical.
const nearDuplicateRatio = 0.97

// Embedder encodes texts into fixed-length vectors with a frozen model.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// PairScorer scores one section pair in [0,1].
type PairScorer interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

// Scorer combines a character-level near-duplicate check with embedding
// cosine similarity.
type Scorer struct {
	embedder Embedder
}

func NewScorer(embedder Embedder) *Scorer {
	return &Scorer{embedder: embedder}
}

// Comparable reports whether both sections were found.
func Comparable(a, b string) bool {
	return a != NotFound && b != NotFound
}

// Score returns 1.0 for near-duplicates without touching the embedder,
// otherwise the cosine similarity of both embeddings clamped to [0,1].
func (s *Scorer) Score(ctx context.Context, a, b string) (float64, error) {
	if Ratio(a, b) > nearDuplicateRatio {
		return 1.0, nil
	}

	if s.embedder == nil {
		return 0, fmt.Errorf("%w: no embedder configured", internalErrors.ErrEmbeddingProviderUnavailable)
	}

	vectors, err := s.embedder.EmbedTexts(ctx, []string{a, b})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", internalErrors.ErrEmbeddingProviderUnavailable, err)
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("%w: expected 2 embeddings, got %d", internalErrors.ErrEmbeddingProviderUnavailable, len(vectors))
	}

	similarity, err := CosineSimilarity(vectors[0], vectors[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", internalErrors.ErrEmbeddingProviderUnavailable, err)
	}

	return clamp01(similarity), nil
}

// Ratio is the difflib SequenceMatcher ratio over the characters of a and b.
func Ratio(a, b string) float64 {
	m := difflib.NewMatcher(splitChars(a), splitChars(b))
	return m.Ratio()
}

// CosineSimilarity of two vectors of equal length. A zero vector yields 0.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimensions differ: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("empty vectors")
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
