package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/skill-matcher/internal/schemas"
)

// taxonomyFile mirrors the on-disk JSON layout validated by taxonomy.schema.json.
type taxonomyFile struct {
	Categories []struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
		Weight float64  `json:"weight,omitempty"`
	} `json:"categories"`
	Synonyms map[string][]string `json:"synonyms,omitempty"`
}

// Load reads a taxonomy JSON file, validates it against the taxonomy schema
// (when the schema file can be located), and constructs the reference tables.
// A taxonomy that fails to load is a configuration error and should be fatal
// at process startup, never handled per request.
func Load(path string) (*Taxonomy, *SynonymTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	// Schema validation is a safety net; skip silently when the schema file
	// is not present (e.g. installed binary without the repo checkout).
	if schemaPath := schemas.ResolvePath("schemas/taxonomy.schema.json"); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, data); err != nil {
			return nil, nil, fmt.Errorf("taxonomy file %s is invalid: %w", path, err)
		}
	}

	var file taxonomyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	categories := make([]Category, 0, len(file.Categories))
	for _, c := range file.Categories {
		categories = append(categories, Category{
			Name:   c.Name,
			Skills: c.Skills,
			Weight: c.Weight,
		})
	}

	tax, err := New(categories)
	if err != nil {
		return nil, nil, fmt.Errorf("taxonomy file %s: %w", path, err)
	}

	synonyms := DefaultSynonyms()
	if len(file.Synonyms) > 0 {
		synonyms = NewSynonymTable(file.Synonyms)
	}

	return tax, synonyms, nil
}
