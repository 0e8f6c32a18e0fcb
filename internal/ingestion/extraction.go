package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/skill-matcher/internal/llm"
	"github.com/jonathan/skill-matcher/internal/prompts"
	"github.com/jonathan/skill-matcher/internal/types"
)

// ExtractJobRequirements uses the LLM to pull a structured job profile out of
// cleaned posting text. The returned requirements carry no ID; the caller
// assigns one.
func ExtractJobRequirements(ctx context.Context, client llm.Client, text string) (*types.JobRequirements, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no posting text to extract from")
	}

	prompt := prompts.Format(
		prompts.MustGet("extraction.json", "extract-job-requirements"),
		map[string]string{"Posting": text},
	)
	response, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	var extracted struct {
		Title           string   `json:"title"`
		ExperienceLevel string   `json:"experience_level"`
		Skills          []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &extracted); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w (content: %s)", err, response)
	}

	return &types.JobRequirements{
		Title:           extracted.Title,
		Description:     text,
		Skills:          extracted.Skills,
		ExperienceLevel: extracted.ExperienceLevel,
	}, nil
}
