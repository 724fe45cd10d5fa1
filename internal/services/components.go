package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/matcher"
)

// Components is the scoring pipeline shared by the API server and the CLI.
type Components struct {
	Gemini    GeminiService
	Cache     EmbeddingCache
	Embedder  matcher.Embedder
	Extractor TextExtractor
	Screening ScreeningService
}

// NewComponents wires Gemini, the optional Qdrant embedding cache, text
// extraction and the screening worker pool from cfg.
func NewComponents(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Components, error) {
	geminiService, err := NewGeminiService(ctx, GeminiOptions{
		APIKey:       cfg.Gemini.APIKey,
		EmbedModel:   cfg.Gemini.EmbedModel,
		OCRModel:     cfg.Gemini.OCRModel,
		MaxRetries:   cfg.Gemini.MaxRetries,
		EmbedTimeout: cfg.Matching.EmbedTimeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini: %w", err)
	}
	log.Info("✅ Gemini initialized", zap.String("embed_model", geminiService.EmbedModel()))

	c := &Components{
		Gemini:   geminiService,
		Embedder: geminiService,
	}

	if cfg.Qdrant.CacheEnabled {
		cache, err := initCache(ctx, cfg, log)
		if err != nil {
			log.Warn("⚠️ Embedding cache disabled", zap.Error(err))
		} else {
			c.Cache = cache
			c.Embedder = NewCachedEmbedder(geminiService, cache, geminiService.EmbedModel(), log)
			log.Info("✅ Qdrant embedding cache initialized", zap.String("collection", cfg.Qdrant.Collection))
		}
	}

	c.Extractor = NewTextExtractor(NewPDFParserService(log), geminiService, cfg.Matching.ExtractTimeout, log)
	c.Screening = NewScreeningService(c.Extractor, c.Embedder, NewWorker(cfg.Matching.Concurrency, log), log)

	return c, nil
}

func initCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (EmbeddingCache, error) {
	cache, err := NewQdrantCache(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, cfg.Qdrant.VectorSize, log)
	if err != nil {
		return nil, err
	}
	if err := cache.InitCollection(ctx); err != nil {
		return nil, err
	}
	return cache, nil
}
