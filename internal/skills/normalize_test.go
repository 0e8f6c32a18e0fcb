package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-matcher/internal/taxonomy"
)

func TestNormalize_SynonymResolution(t *testing.T) {
	normalizer := NewNormalizer(taxonomy.DefaultSynonyms())

	normalized := normalizer.Normalize([]string{"K8s", "ML", "nodejs", "Amazon Web Services"})

	assert.ElementsMatch(t, []string{"kubernetes", "machine learning", "javascript", "aws"}, normalized)
}

func TestNormalize_FallbackCleaning(t *testing.T) {
	normalizer := NewNormalizer(taxonomy.DefaultSynonyms())

	normalized := normalizer.Normalize([]string{"GraphQL!!!", "c++", "f#"})

	assert.Contains(t, normalized, "graphql")
	assert.Contains(t, normalized, "c++")
	// "f#" survives cleaning but is only 2 characters, so it is dropped
	assert.NotContains(t, normalized, "f#")
}

func TestNormalize_DropsShortTokens(t *testing.T) {
	normalizer := NewNormalizer(taxonomy.DefaultSynonyms())

	normalized := normalizer.Normalize([]string{"ab", "x", "", "   "})
	assert.Empty(t, normalized)
}

func TestNormalize_Idempotent(t *testing.T) {
	normalizer := NewNormalizer(taxonomy.DefaultSynonyms())

	inputs := []string{"K8s", "Python Programming", "GraphQL!!!", "machine learning", "some niche tool"}
	once := normalizer.Normalize(inputs)
	twice := normalizer.Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalize_Deduplicates(t *testing.T) {
	normalizer := NewNormalizer(taxonomy.DefaultSynonyms())

	normalized := normalizer.Normalize([]string{"k8s", "Kubernetes", "container orchestration"})
	assert.Equal(t, []string{"kubernetes"}, normalized)
}

func TestNormalize_SortedOutput(t *testing.T) {
	normalizer := NewNormalizer(taxonomy.DefaultSynonyms())

	normalized := normalizer.Normalize([]string{"terraform", "ansible", "python"})
	require.Len(t, normalized, 3)
	assert.IsIncreasing(t, normalized)
}

func TestNormalizeOne(t *testing.T) {
	normalizer := NewNormalizer(taxonomy.DefaultSynonyms())

	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"  Deep Learning  ", "machine learning", true},
		{"postgresql", "sql", true}, // postgresql is a sql synonym
		{"rust", "rust", true},
		{"ab", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := normalizer.NormalizeOne(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
