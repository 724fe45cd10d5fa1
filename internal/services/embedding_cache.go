package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/matcher"
)

type cachedEmbedder struct {
	next  matcher.Embedder
	cache EmbeddingCache
	model string
	log   *zap.Logger
}

// NewCachedEmbedder puts an embedding cache in front of next. Cache failures
// are logged and the request falls through to next.
func NewCachedEmbedder(next matcher.Embedder, cache EmbeddingCache, model string, log *zap.Logger) matcher.Embedder {
	if log == nil {
		log = zap.NewNop()
	}
	return &cachedEmbedder{next: next, cache: cache, model: model, log: log}
}

func (c *cachedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	keys := make([]string, len(texts))
	for i, text := range texts {
		keys[i] = EmbeddingCacheKey(c.model, text)
	}

	hits, err := c.cache.Lookup(ctx, keys)
	if err != nil {
		c.log.Warn("⚠️ embedding cache lookup failed", zap.Error(err))
		hits = nil
	}

	vectors := make([][]float32, len(texts))
	var missing []int
	for i, key := range keys {
		if v, ok := hits[key]; ok {
			vectors[i] = v
			continue
		}
		missing = append(missing, i)
	}

	if len(missing) == 0 {
		c.log.Debug("embedding cache hit", zap.Int("texts", len(texts)))
		return vectors, nil
	}

	pending := make([]string, len(missing))
	for j, i := range missing {
		pending[j] = texts[i]
	}

	fresh, err := c.next.EmbedTexts(ctx, pending)
	if err != nil {
		return nil, err
	}
	if len(fresh) != len(pending) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(pending), len(fresh))
	}

	entries := make([]CacheEntry, 0, len(missing))
	for j, i := range missing {
		vectors[i] = fresh[j]
		entries = append(entries, CacheEntry{
			Key:    keys[i],
			Model:  c.model,
			Text:   texts[i],
			Vector: fresh[j],
		})
	}

	if err := c.cache.Store(ctx, entries); err != nil {
		c.log.Warn("⚠️ embedding cache store failed", zap.Error(err))
	}

	return vectors, nil
}
