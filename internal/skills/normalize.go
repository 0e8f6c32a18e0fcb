package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/skill-matcher/internal/taxonomy"
)

// disallowedChars matches everything stripped from free-text fallback tokens:
// anything that is not a word character, whitespace, '+', '#', '.', or '-'.
var disallowedChars = regexp.MustCompile(`[^\w\s+#.\-]`)

// minCanonicalLength is the minimum length for a cleaned fallback token;
// shorter tokens are dropped silently.
const minCanonicalLength = 3

// Normalizer maps raw skill mentions to canonical identifiers via the synonym
// table. Mentions with no known synonym fall back to a cleaned token.
type Normalizer struct {
	synonyms *taxonomy.SynonymTable
}

// NewNormalizer creates a Normalizer over the given synonym table.
func NewNormalizer(synonyms *taxonomy.SynonymTable) *Normalizer {
	return &Normalizer{synonyms: synonyms}
}

// Normalize returns the deduplicated canonical forms of the given raw
// mentions, sorted for deterministic output. Normalization is idempotent:
// canonical identifiers normalize to themselves.
func (n *Normalizer) Normalize(rawSkills []string) []string {
	normalized := make(map[string]struct{})

	for _, raw := range rawSkills {
		if canonical, ok := n.NormalizeOne(raw); ok {
			normalized[canonical] = struct{}{}
		}
	}

	out := make([]string, 0, len(normalized))
	for skill := range normalized {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// NormalizeOne normalizes a single mention. The boolean is false when the
// mention is dropped (cleaned token too short to be meaningful).
func (n *Normalizer) NormalizeOne(raw string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return "", false
	}

	if canonical, ok := n.synonyms.Canonical(lower); ok {
		return canonical, true
	}

	cleaned := strings.TrimSpace(disallowedChars.ReplaceAllString(lower, ""))
	if len(cleaned) < minCanonicalLength {
		return "", false
	}
	return cleaned, true
}
