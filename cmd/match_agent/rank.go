package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-matcher/internal/matching"
	"github.com/jonathan/skill-matcher/internal/observability"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a batch of candidates against one job",
	Long: `Score every candidate in a batch against a job's requirements and print them
ordered best first. Candidates with equal scores keep their input order, so
repeated runs over the same input produce the same ranking.`,
	RunE: runRank,
}

var (
	rankCandidatesPath string
	rankJobPath        string
	rankJobURL         string
	rankStrategy       string
	rankTaxonomyPath   string
	rankAPIKey         string
	rankOutPath        string
	rankTopK           int
	rankWorkers        int
	rankScrub          bool
	rankUseBrowser     bool
	rankVerbose        bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankCandidatesPath, "candidates", "c", "", "Path to JSON file containing an array of candidates (required)")
	rankCmd.Flags().StringVarP(&rankJobPath, "job", "j", "", "Path to job requirements JSON file (mutually exclusive with --job-url)")
	rankCmd.Flags().StringVar(&rankJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	rankCmd.Flags().StringVarP(&rankStrategy, "strategy", "s", "taxonomy", "Matching strategy: embedding or taxonomy")
	rankCmd.Flags().StringVar(&rankTaxonomyPath, "taxonomy", "", "Path to taxonomy JSON file (defaults to built-in taxonomy)")
	rankCmd.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	rankCmd.Flags().StringVarP(&rankOutPath, "out", "o", "", "Write the ranking JSON to a file instead of stdout")
	rankCmd.Flags().IntVarP(&rankTopK, "top-k", "k", 0, "Limit output to the top K candidates (0 means no limit)")
	rankCmd.Flags().IntVar(&rankWorkers, "workers", 0, "Scoring concurrency (0 means one worker per CPU)")
	rankCmd.Flags().BoolVar(&rankScrub, "scrub", false, "Redact personal identifiers before scoring")
	rankCmd.Flags().BoolVar(&rankUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed debug information")

	rankCmd.MarkFlagRequired("candidates")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	apiKey := resolveAPIKey(rankAPIKey)

	if rankTopK < 0 {
		return fmt.Errorf("--top-k must be non-negative")
	}

	candidates, err := loadCandidates(rankCandidatesPath)
	if err != nil {
		return err
	}

	job, jobCleanup, err := loadJob(ctx, rankJobPath, rankJobURL, apiKey, rankUseBrowser, rankVerbose)
	if err != nil {
		return err
	}
	defer jobCleanup()

	matcher, _, matcherCleanup, err := buildMatcher(ctx, rankStrategy, rankTaxonomyPath, apiKey)
	if err != nil {
		return err
	}
	defer matcherCleanup()

	ranked, err := matching.RankCandidates(ctx, matcher, candidates, *job, matching.RankOptions{
		TopK:    rankTopK,
		Workers: rankWorkers,
		Scrub:   rankScrub,
	})
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	if rankVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRequirements(job)
		printer.PrintRanking(ranked)
	}

	return writeJSON(rankOutPath, ranked)
}
