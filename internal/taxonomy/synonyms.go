package taxonomy

import "strings"

// SynonymTable maps canonical skill names to their known surface-form
// variants. Lookup is case-insensitive over the variants. Immutable after
// construction.
type SynonymTable struct {
	canonical map[string]string // lowercased variant -> canonical skill
}

// NewSynonymTable builds a SynonymTable from canonical -> variants entries.
// The canonical name itself is always accepted as a variant.
func NewSynonymTable(entries map[string][]string) *SynonymTable {
	table := &SynonymTable{canonical: make(map[string]string)}
	for canonical, variants := range entries {
		key := strings.ToLower(strings.TrimSpace(canonical))
		if key == "" {
			continue
		}
		table.canonical[key] = canonical
		for _, variant := range variants {
			v := strings.ToLower(strings.TrimSpace(variant))
			if v == "" {
				continue
			}
			table.canonical[v] = canonical
		}
	}
	return table
}

// Canonical resolves a raw skill mention to its canonical form.
// The boolean is false when the mention matches no known variant.
func (st *SynonymTable) Canonical(raw string) (string, bool) {
	canonical, ok := st.canonical[strings.ToLower(strings.TrimSpace(raw))]
	return canonical, ok
}

// Len returns the number of known variants.
func (st *SynonymTable) Len() int {
	return len(st.canonical)
}

// DefaultSynonyms returns the built-in synonym table.
func DefaultSynonyms() *SynonymTable {
	return NewSynonymTable(map[string][]string{
		"python":           {"python programming", "python dev", "python development"},
		"javascript":       {"js", "node.js", "nodejs", "node js"},
		"java":             {"java programming", "java development"},
		"machine learning": {"ml", "artificial intelligence", "ai", "deep learning"},
		"data science":     {"data analysis", "data analytics", "statistics"},
		"sql":              {"mysql", "postgresql", "sqlite", "database"},
		"aws":              {"amazon web services", "cloud computing", "ec2", "s3"},
		"docker":           {"containerization", "containers"},
		"kubernetes":       {"k8s", "container orchestration"},
		"react":            {"reactjs", "react.js"},
		"angular":          {"angularjs"},
		"django":           {"django framework"},
		"flask":            {"flask framework"},
		"git":              {"version control", "github", "gitlab"},
	})
}
