package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-matcher/internal/ingestion"
	"github.com/jonathan/skill-matcher/internal/llm"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a job posting from a text file or URL",
	Long: `Ingest a job posting from either a text file or URL, clean the content, and
output cleaned text with metadata. With --extract, the LLM also extracts
structured job requirements suitable for the match and rank commands.`,
	RunE: runIngest,
}

var (
	ingestTextFile   string
	ingestURL        string
	ingestOutDir     string
	ingestAPIKey     string
	ingestExtract    bool
	ingestUseBrowser bool
	ingestVerbose    bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to text file containing job posting")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch job posting from")
	ingestCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")
	ingestCmd.Flags().StringVar(&ingestAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	ingestCmd.Flags().BoolVar(&ingestExtract, "extract", false, "Extract structured job requirements via the LLM")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")

	ingestCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Validate mutually exclusive flags
	if ingestTextFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestTextFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	var cleanedText string
	var metadata *ingestion.Metadata
	var err error

	if ingestTextFile != "" {
		cleanedText, metadata, err = ingestion.IngestFromFile(ingestTextFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		cleanedText, metadata, err = ingestion.IngestFromURL(ctx, ingestURL, ingestUseBrowser, ingestVerbose)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	if err := ingestion.WriteOutput(ingestOutDir, cleanedText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested job posting\n")
	fmt.Fprintf(os.Stdout, "Cleaned text: %s/job_posting.cleaned.txt\n", ingestOutDir)
	fmt.Fprintf(os.Stdout, "Metadata: %s/job_posting.meta.json\n", ingestOutDir)

	if !ingestExtract {
		return nil
	}

	apiKey := resolveAPIKey(ingestAPIKey)
	if apiKey == "" {
		return fmt.Errorf("--extract requires GEMINI_API_KEY environment variable or --api-key flag")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	job, err := ingestion.ExtractJobRequirements(ctx, client, cleanedText)
	if err != nil {
		return fmt.Errorf("failed to extract job requirements: %w", err)
	}

	requirementsPath := filepath.Join(ingestOutDir, "job_requirements.json")
	if err := writeJSON(requirementsPath, job); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Requirements: %s\n", requirementsPath)

	return nil
}
