package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/skill-matcher/internal/embedding"
	"github.com/jonathan/skill-matcher/internal/entities"
	"github.com/jonathan/skill-matcher/internal/ingestion"
	"github.com/jonathan/skill-matcher/internal/llm"
	"github.com/jonathan/skill-matcher/internal/matching"
	"github.com/jonathan/skill-matcher/internal/skills"
	"github.com/jonathan/skill-matcher/internal/taxonomy"
	"github.com/jonathan/skill-matcher/internal/types"
)

// resolveAPIKey returns the API key from the flag or the GEMINI_API_KEY env var.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

// loadTaxonomy loads the taxonomy and synonym table, falling back to the
// built-in defaults when no path is given.
func loadTaxonomy(path string) (*taxonomy.Taxonomy, *taxonomy.SynonymTable, error) {
	if path == "" {
		return taxonomy.Default(), taxonomy.DefaultSynonyms(), nil
	}
	return taxonomy.Load(path)
}

// buildMatcher constructs the matcher for the requested strategy. The returned
// cleanup function releases the LLM client when one was created.
func buildMatcher(ctx context.Context, strategy, taxonomyPath, apiKey string) (matching.Matcher, llm.Client, func(), error) {
	tax, synonyms, err := loadTaxonomy(taxonomyPath)
	if err != nil {
		return nil, nil, nil, err
	}
	normalizer := skills.NewNormalizer(synonyms)

	switch strategy {
	case "taxonomy":
		return matching.NewTaxonomyMatcher(tax, normalizer), nil, func() {}, nil
	case "", "embedding":
		if apiKey == "" {
			return nil, nil, nil, fmt.Errorf("the embedding strategy requires GEMINI_API_KEY or --api-key (use --strategy taxonomy to run offline)")
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		extractor := skills.NewExtractor(tax, entities.NewLLMRecognizer(client))
		semantic := matching.NewSemanticScorer(embedding.NewClientEncoder(client))
		matcher := matching.NewEmbeddingMatcher(extractor, normalizer, semantic)
		return matcher, client, func() { _ = client.Close() }, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown strategy %q (want embedding or taxonomy)", strategy)
	}
}

// loadCandidate reads a candidate from a JSON file, optionally merging in
// resume text from a separate file.
func loadCandidate(candidatePath, resumePath string) (*types.Candidate, error) {
	var candidate types.Candidate

	if candidatePath != "" {
		data, err := os.ReadFile(candidatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read candidate file: %w", err)
		}
		if err := json.Unmarshal(data, &candidate); err != nil {
			return nil, fmt.Errorf("failed to parse candidate JSON: %w", err)
		}
	}

	if resumePath != "" {
		data, err := os.ReadFile(resumePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume file: %w", err)
		}
		candidate.ResumeText = ingestion.CleanText(string(data))
	}

	if candidate.ID == "" {
		candidate.ID = "candidate"
	}
	if candidate.ResumeText == "" && len(candidate.Skills) == 0 {
		return nil, fmt.Errorf("candidate has no resume text and no skills; provide --candidate and/or --resume")
	}
	return &candidate, nil
}

// loadCandidates reads a JSON array of candidates for batch ranking.
func loadCandidates(path string) ([]types.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}
	var candidates []types.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidates JSON: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("candidates file contains no candidates")
	}
	return candidates, nil
}

// loadJob resolves job requirements from a structured JSON file or from a URL.
// URL ingestion fetches the posting and uses the LLM to extract requirements.
func loadJob(ctx context.Context, jobPath, jobURL, apiKey string, useBrowser, verbose bool) (*types.JobRequirements, func(), error) {
	noop := func() {}

	if jobPath == "" && jobURL == "" {
		return nil, noop, fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobPath != "" && jobURL != "" {
		return nil, noop, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if jobPath != "" {
		data, err := os.ReadFile(jobPath)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to read job file: %w", err)
		}
		var job types.JobRequirements
		if err := json.Unmarshal(data, &job); err != nil {
			return nil, noop, fmt.Errorf("failed to parse job JSON: %w", err)
		}
		if job.ID == "" {
			job.ID = "job"
		}
		if len(job.Skills) == 0 {
			return nil, noop, fmt.Errorf("job file lists no required skills")
		}
		return &job, noop, nil
	}

	if apiKey == "" {
		return nil, noop, fmt.Errorf("--job-url requires GEMINI_API_KEY or --api-key to extract requirements")
	}

	text, _, err := ingestion.IngestFromURL(ctx, jobURL, useBrowser, verbose)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to ingest job posting: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to create LLM client: %w", err)
	}
	cleanup := func() { _ = client.Close() }

	job, err := ingestion.ExtractJobRequirements(ctx, client, text)
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("failed to extract job requirements: %w", err)
	}
	if job.ID == "" {
		job.ID = "job"
	}
	return job, cleanup, nil
}

// writeJSON marshals v with indentation to a file, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if path == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
