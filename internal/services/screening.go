package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/logger"
	"alfredoptarigan/resume-matcher/internal/matcher"
)

// CandidateFile is one uploaded candidate resume.
type CandidateFile struct {
	// Name is the identifier reported in results, usually the original file name.
	Name string
	Path string
}

type ReferenceDocument struct {
	RawText  string
	Sections matcher.SectionSet
}

type ScreeningService interface {
	BuildReference(ctx context.Context, path string) (*ReferenceDocument, error)
	// ScoreCandidates returns one result per file, in input order.
	ScoreCandidates(ctx context.Context, ref matcher.SectionSet, files []CandidateFile) []matcher.MatchResult
	// ScoreBatch is ScoreCandidates sorted by Match_Percentage, highest first.
	ScoreBatch(ctx context.Context, ref matcher.SectionSet, files []CandidateFile) []matcher.MatchResult
}

type screeningService struct {
	extractor TextExtractor
	matcher   *matcher.Matcher
	worker    Worker
	log       *zap.Logger
}

func NewScreeningService(extractor TextExtractor, embedder matcher.Embedder, worker Worker, log *zap.Logger) ScreeningService {
	return &screeningService{
		extractor: extractor,
		matcher:   matcher.New(embedder),
		worker:    worker,
		log:       logger.WithFields(log),
	}
}

func (s *screeningService) BuildReference(ctx context.Context, path string) (*ReferenceDocument, error) {
	raw, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract reference resume: %w", err)
	}

	sections := matcher.BuildReferenceSections(raw)

	found := 0
	for _, name := range matcher.WeightedSections() {
		if sections.Found(name) {
			found++
		}
	}
	s.log.Info("📋 Reference resume prepared",
		zap.String(logger.FieldFile, path),
		zap.Int("sections_found", found),
	)

	return &ReferenceDocument{RawText: raw, Sections: sections}, nil
}

func (s *screeningService) ScoreCandidates(ctx context.Context, ref matcher.SectionSet, files []CandidateFile) []matcher.MatchResult {
	results := make([]matcher.MatchResult, len(files))
	start := time.Now()

	// each job writes only its own slot
	s.worker.Process(ctx, len(files), func(ctx context.Context, index int) {
		results[index] = s.scoreOne(ctx, ref, files[index])
	})

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	s.log.Info("✅ Batch scored",
		zap.Int("candidates", len(files)),
		zap.Int("failed", failed),
		zap.Int("workers", s.worker.Concurrency()),
		zap.Duration("took", time.Since(start)),
	)

	return results
}

func (s *screeningService) ScoreBatch(ctx context.Context, ref matcher.SectionSet, files []CandidateFile) []matcher.MatchResult {
	return matcher.SortResults(s.ScoreCandidates(ctx, ref, files), matcher.SortByMatchPercentage)
}

func (s *screeningService) scoreOne(ctx context.Context, ref matcher.SectionSet, file CandidateFile) matcher.MatchResult {
	log := s.log.With(zap.String(logger.FieldFile, file.Name))

	if err := ctx.Err(); err != nil {
		return matcher.FailedResult(file.Name, err)
	}

	raw, err := s.extractor.Extract(ctx, file.Path)
	if err != nil {
		log.Warn("❌ Candidate extraction failed", zap.Error(err))
		return matcher.FailedResult(file.Name, err)
	}

	result, err := s.matcher.ScoreCandidate(ctx, ref, file.Name, raw)
	if err != nil {
		log.Warn("❌ Candidate scoring failed", zap.Error(err))
		return result
	}

	log.Debug("candidate scored", zap.Float64("match_percentage", result.MatchPercentage))
	return result
}
