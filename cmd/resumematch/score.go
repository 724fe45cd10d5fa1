package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/matcher"
	"alfredoptarigan/resume-matcher/internal/services"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score every resume in a folder against a reference resume",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("reference", "r", "", "reference resume file")
	scoreCmd.Flags().StringP("candidates", "c", "", "folder with candidate resumes")
	scoreCmd.Flags().StringP("sort-by", "s", string(matcher.DefaultSortKey), "column to sort by")
	scoreCmd.Flags().StringP("format", "f", services.ExportCSV, "export format: csv or xlsx")
	scoreCmd.Flags().StringP("out", "o", "", "export directory (default is EXPORT_PATH)")
	scoreCmd.Flags().IntP("concurrency", "n", 0, "candidates scored in parallel (default is WORKER_CONCURRENCY)")

	scoreCmd.MarkFlagRequired("reference")
	scoreCmd.MarkFlagRequired("candidates")

	viper.BindPFlag("score.sort-by", scoreCmd.Flags().Lookup("sort-by"))
	viper.BindPFlag("score.format", scoreCmd.Flags().Lookup("format"))
	viper.BindPFlag("score.out", scoreCmd.Flags().Lookup("out"))
	viper.BindPFlag("score.concurrency", scoreCmd.Flags().Lookup("concurrency"))
}

func score(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if n := viper.GetInt("score.concurrency"); n > 0 {
		cfg.Matching.Concurrency = n
	}
	outDir := viper.GetString("score.out")
	if outDir == "" {
		outDir = cfg.Storage.ExportPath
	}

	referencePath, _ := cmd.Flags().GetString("reference")
	candidatesDir, _ := cmd.Flags().GetString("candidates")

	files, err := listCandidates(candidatesDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no candidate resumes found in %s", candidatesDir)
	}

	components, err := services.NewComponents(ctx, cfg, log)
	if err != nil {
		return err
	}

	ref, err := components.Screening.BuildReference(ctx, referencePath)
	if err != nil {
		return err
	}

	log.Info("scoring candidates", zap.Int("count", len(files)), zap.Int("workers", cfg.Matching.Concurrency))
	results := components.Screening.ScoreBatch(ctx, ref.Sections, files)

	sortBy := viper.GetString("score.sort-by")
	if err := printResults(cmd.OutOrStdout(), matcher.SortResults(results, matcher.ParseSortKey(sortBy))); err != nil {
		return err
	}

	path, err := services.NewExporter(outDir).Export(results, sortBy, viper.GetString("score.format"))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nresults written to %s\n", path)
	return nil
}

// listCandidates returns the regular files directly inside dir, by name.
func listCandidates(dir string) ([]services.CandidateFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading candidates folder: %w", err)
	}

	var files []services.CandidateFile
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, services.CandidateFile{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func printResults(w io.Writer, results []matcher.MatchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := matcher.Columns()
	for i, col := range header {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)

	for _, r := range results {
		fmt.Fprint(tw, r.Resume)
		for _, key := range matcher.SortKeys() {
			fmt.Fprint(tw, "\t", strconv.FormatFloat(r.Value(key), 'f', 2, 64))
		}
		fmt.Fprint(tw, "\t", r.Error)
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
