package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	internalErrors "alfredoptarigan/resume-matcher/internal/errors"
	"alfredoptarigan/resume-matcher/internal/logger"
)

// Gemini embedding requests are capped at roughly 10k tokens.
const maxEmbedRunes = 40000

type GeminiService interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	ExtractImageText(ctx context.Context, data []byte, mimeType string) (string, error)
	EmbedModel() string
}

// genaiModels is the subset of genai.Models used here.
type genaiModels interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiOptions struct {
	APIKey       string
	EmbedModel   string
	OCRModel     string
	MaxRetries   int
	EmbedTimeout time.Duration
}

type geminiService struct {
	models        genaiModels
	embedModel    string
	ocrModel      string
	maxRetries    int
	embedTimeout  time.Duration
	promptBuilder *PromptBuilder
	sleep         func(time.Duration)
	log           *zap.Logger
}

func NewGeminiService(ctx context.Context, opts GeminiOptions, log *zap.Logger) (GeminiService, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGeminiService(client.Models, opts, log), nil
}

func newGeminiService(models genaiModels, opts GeminiOptions, log *zap.Logger) *geminiService {
	if opts.EmbedModel == "" {
		opts.EmbedModel = "text-embedding-004"
	}
	if opts.OCRModel == "" {
		opts.OCRModel = "gemini-2.5-flash"
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 1
	}

	return &geminiService{
		models:        models,
		embedModel:    opts.EmbedModel,
		ocrModel:      opts.OCRModel,
		maxRetries:    opts.MaxRetries,
		embedTimeout:  opts.EmbedTimeout,
		promptBuilder: NewPromptBuilder(),
		sleep:         time.Sleep,
		log:           logger.WithFields(log, zap.String(logger.FieldModel, opts.EmbedModel)),
	}
}

func (g *geminiService) EmbedModel() string {
	return g.embedModel
}

// EmbedTexts implements matcher.Embedder. Every failure wraps
// ErrEmbeddingProviderUnavailable.
func (g *geminiService) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.Text(truncateRunes(text, maxEmbedRunes))...)
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		vectors, err := g.embedOnce(ctx, contents, len(texts))
		if err == nil {
			return vectors, nil
		}

		lastErr = err

		// Check if context is cancelled
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: context cancelled: %w", internalErrors.ErrEmbeddingProviderUnavailable, ctx.Err())
		}

		if attempt < g.maxRetries {
			g.log.Warn("⚠️ embedding attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			g.sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
	}

	return nil, fmt.Errorf("%w: failed after %d attempts: %w", internalErrors.ErrEmbeddingProviderUnavailable, g.maxRetries, lastErr)
}

func (g *geminiService) embedOnce(ctx context.Context, contents []*genai.Content, want int) ([][]float32, error) {
	if g.embedTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.embedTimeout)
		defer cancel()
	}

	result, err := g.models.EmbedContent(ctx, g.embedModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) != want {
		got := 0
		if result != nil {
			got = len(result.Embeddings)
		}
		return nil, fmt.Errorf("expected %d embeddings, got %d", want, got)
	}

	vectors := make([][]float32, 0, want)
	for i, emb := range result.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("empty embedding at index %d", i)
		}
		vectors = append(vectors, emb.Values)
	}

	return vectors, nil
}

// ExtractImageText runs OCR on an image through the multimodal model.
func (g *geminiService) ExtractImageText(ctx context.Context, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("image is empty")
	}

	temperature := float32(0)
	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: g.promptBuilder.BuildOCRPrompt()},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
		},
	}}

	resp, err := g.models.GenerateContent(ctx, g.ocrModel, contents, &genai.GenerateContentConfig{
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to run OCR: %w", err)
	}

	if resp == nil {
		return "", errors.New("no OCR response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("no text content in OCR response")
	}

	g.log.Debug("📄 OCR response received",
		zap.String(logger.FieldModel, g.ocrModel),
		zap.Int("characters", len(text)),
	)

	return text, nil
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
