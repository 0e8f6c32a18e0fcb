package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-matcher/internal/db"
	"github.com/jonathan/skill-matcher/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one candidate against one job",
	Long: `Score a single candidate against a job's requirements and print the match result.

The job side comes from either a structured JSON file (--job) or a posting URL
(--job-url, requires an API key for requirement extraction). The candidate side
comes from a candidate JSON file (--candidate), a resume text file (--resume),
or both.`,
	RunE: runMatch,
}

var (
	matchCandidatePath string
	matchResumePath    string
	matchJobPath       string
	matchJobURL        string
	matchStrategy      string
	matchTaxonomyPath  string
	matchAPIKey        string
	matchDatabaseURL   string
	matchOutPath       string
	matchPersist       bool
	matchUseBrowser    bool
	matchVerbose       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidatePath, "candidate", "c", "", "Path to candidate JSON file")
	matchCmd.Flags().StringVarP(&matchResumePath, "resume", "r", "", "Path to resume text file")
	matchCmd.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to job requirements JSON file (mutually exclusive with --job-url)")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	matchCmd.Flags().StringVarP(&matchStrategy, "strategy", "s", "taxonomy", "Matching strategy: embedding or taxonomy")
	matchCmd.Flags().StringVar(&matchTaxonomyPath, "taxonomy", "", "Path to taxonomy JSON file (defaults to built-in taxonomy)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL for persisting results (optional, defaults to DATABASE_URL env var)")
	matchCmd.Flags().StringVarP(&matchOutPath, "out", "o", "", "Write the match result JSON to a file instead of stdout")
	matchCmd.Flags().BoolVar(&matchPersist, "persist", false, "Store the match result in the database")
	matchCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	apiKey := resolveAPIKey(matchAPIKey)

	candidate, err := loadCandidate(matchCandidatePath, matchResumePath)
	if err != nil {
		return err
	}

	job, jobCleanup, err := loadJob(ctx, matchJobPath, matchJobURL, apiKey, matchUseBrowser, matchVerbose)
	if err != nil {
		return err
	}
	defer jobCleanup()

	matcher, _, matcherCleanup, err := buildMatcher(ctx, matchStrategy, matchTaxonomyPath, apiKey)
	if err != nil {
		return err
	}
	defer matcherCleanup()

	result := matcher.Score(ctx, *candidate, *job)

	if matchVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRequirements(job)
		printer.PrintMatchResult(&result)
		printer.PrintMatchDetails(result.Details)
	}

	if matchPersist {
		dbURL := matchDatabaseURL
		if dbURL == "" {
			dbURL = os.Getenv("DATABASE_URL")
		}
		if dbURL == "" {
			return fmt.Errorf("--persist requires DATABASE_URL environment variable or --db-url flag")
		}

		database, err := db.Connect(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		strategy := matchStrategy
		if strategy == "" {
			strategy = "embedding"
		}
		id, err := database.SaveMatchResult(ctx, strategy, result)
		if err != nil {
			return fmt.Errorf("failed to save match result: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Stored match result: %s\n", id)
	}

	return writeJSON(matchOutPath, result)
}
