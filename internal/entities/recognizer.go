// Package entities provides optional named-entity recognition used as a
// precision filter during skill extraction. Recognition is best-effort: a nil
// or failing recognizer never blocks extraction.
package entities

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/skill-matcher/internal/llm"
	"github.com/jonathan/skill-matcher/internal/prompts"
)

// Entity labels relevant to skill extraction.
const (
	LabelOrganization = "ORG"
	LabelProduct      = "PRODUCT"
)

// Entity is a recognized span of text with its label.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer extracts named entities from free text.
type Recognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}

// RecognizerFunc adapts a plain function to the Recognizer interface.
type RecognizerFunc func(ctx context.Context, text string) ([]Entity, error)

// Entities calls the wrapped function.
func (f RecognizerFunc) Entities(ctx context.Context, text string) ([]Entity, error) {
	return f(ctx, text)
}

// LLMRecognizer recognizes entities by asking an LLM for a structured listing.
type LLMRecognizer struct {
	client llm.Client
}

// NewLLMRecognizer creates a recognizer backed by an LLM client.
func NewLLMRecognizer(client llm.Client) *LLMRecognizer {
	return &LLMRecognizer{client: client}
}

// Entities extracts ORG and PRODUCT entities from text.
func (r *LLMRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	response, err := r.client.GenerateJSON(ctx, buildEntityPrompt(text), llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("entity recognition failed: %w", err)
	}

	return parseEntityResponse(response)
}

// buildEntityPrompt creates the prompt for entity recognition.
func buildEntityPrompt(text string) string {
	return prompts.Format(
		prompts.MustGet("extraction.json", "recognize-entities"),
		map[string]string{"Text": text},
	)
}

// parseEntityResponse parses the LLM response into entities, dropping
// malformed or unlabeled entries rather than failing.
func parseEntityResponse(response string) ([]Entity, error) {
	response = strings.TrimSpace(response)
	startIdx := strings.Index(response, "[")
	endIdx := strings.LastIndex(response, "]")
	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return nil, fmt.Errorf("no valid JSON array found in response")
	}

	var raw []Entity
	if err := json.Unmarshal([]byte(response[startIdx:endIdx+1]), &raw); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}

	entities := make([]Entity, 0, len(raw))
	for _, e := range raw {
		text := strings.TrimSpace(e.Text)
		label := strings.ToUpper(strings.TrimSpace(e.Label))
		if text == "" || (label != LabelOrganization && label != LabelProduct) {
			continue
		}
		entities = append(entities, Entity{Text: text, Label: label})
	}
	return entities, nil
}
