// Package mock provides test doubles for the matcher's embedding oracle.
//
//	emb := mock.NewMockEmbedder()
//	m := matcher.New(emb)
//	...
//	assert.Equal(t, 0, emb.CallCount())
package mock

import (
	"context"
	"hash/fnv"
	"math"
	"sync"
)

// MockEmbedder is a test double for matcher.Embedder. It counts calls and
// lets tests inject behaviour through EmbedTextsFunc.
type MockEmbedder struct {
	// EmbedTextsFunc is called by EmbedTexts if set.
	// If nil, deterministic hash-based vectors are returned.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	mu        sync.Mutex
	callCount int
	texts     []string
}

// NewMockEmbedder creates a mock embedder with default deterministic behavior.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedTexts records the call and returns embeddings for texts.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	m.callCount++
	m.texts = append(m.texts, texts...)
	fn := m.EmbedTextsFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = DeterministicVector(text, 16)
	}
	return vectors, nil
}

// CallCount returns how many times EmbedTexts was invoked.
func (m *MockEmbedder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Texts returns every text passed to EmbedTexts, in call order.
func (m *MockEmbedder) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.texts...)
}

// FixedVectors returns an EmbedTextsFunc that looks vectors up by text and
// falls back to a deterministic vector for unknown texts.
func FixedVectors(vectors map[string][]float32) func(ctx context.Context, texts []string) ([][]float32, error) {
	return func(_ context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			if v, ok := vectors[text]; ok {
				out[i] = v
				continue
			}
			out[i] = DeterministicVector(text, 16)
		}
		return out, nil
	}
}

// DeterministicVector derives a unit vector of the given size from the text hash.
func DeterministicVector(text string, size int) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	seed := h.Sum64()

	vector := make([]float32, size)
	var sumSquares float64
	for i := range vector {
		seed = seed*6364136223846793005 + 1442695040888963407
		v := float32(seed>>40)/float32(1<<24) + 0.01
		vector[i] = v
		sumSquares += float64(v * v)
	}

	norm := float32(1 / math.Sqrt(sumSquares))
	for i := range vector {
		vector[i] *= norm
	}

	return vector
}
