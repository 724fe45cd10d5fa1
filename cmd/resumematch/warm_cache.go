package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/matcher"
	"alfredoptarigan/resume-matcher/internal/services"
)

var warmCacheCmd = &cobra.Command{
	Use:   "warm-cache",
	Short: "Embed the reference resume sections into the Qdrant cache ahead of a batch",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return warmCache(cmd)
	},
}

func init() {
	rootCmd.AddCommand(warmCacheCmd)

	warmCacheCmd.Flags().StringP("reference", "r", "", "reference resume file")
	warmCacheCmd.MarkFlagRequired("reference")
}

func warmCache(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if !cfg.Qdrant.CacheEnabled {
		return errors.New("embedding cache is disabled, set EMBEDDING_CACHE_ENABLED=true")
	}

	components, err := services.NewComponents(ctx, cfg, log)
	if err != nil {
		return err
	}
	if components.Cache == nil {
		return errors.New("embedding cache is unavailable")
	}

	referencePath, _ := cmd.Flags().GetString("reference")
	ref, err := components.Screening.BuildReference(ctx, referencePath)
	if err != nil {
		return err
	}

	texts := sectionTexts(ref.Sections)
	if len(texts) == 0 {
		log.Warn("reference has no scorable sections, nothing to cache")
		return nil
	}

	if _, err := components.Embedder.EmbedTexts(ctx, texts); err != nil {
		return err
	}

	log.Info("✅ reference sections cached", zap.Int("sections", len(texts)))
	return nil
}

// sectionTexts returns the found weighted sections in weight-table order.
func sectionTexts(sections matcher.SectionSet) []string {
	var texts []string
	for _, name := range matcher.WeightedSections() {
		if sections.Found(name) {
			texts = append(texts, sections.Get(name))
		}
	}
	return texts
}
