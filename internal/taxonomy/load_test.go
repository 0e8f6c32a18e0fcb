package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTaxonomyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeTaxonomyFile(t, `{
		"categories": [
			{"name": "languages", "skills": ["python", "go"], "weight": 1.0},
			{"name": "databases", "skills": ["postgresql"]}
		],
		"synonyms": {
			"postgresql": ["postgres", "pg"]
		}
	}`)

	tax, synonyms, err := Load(path)
	require.NoError(t, err)

	assert.True(t, tax.Contains("python"))
	assert.True(t, tax.Contains("postgresql"))

	canonical, ok := synonyms.Canonical("postgres")
	require.True(t, ok)
	assert.Equal(t, "postgresql", canonical)
}

func TestLoad_NoSynonymsFallsBackToDefaults(t *testing.T) {
	path := writeTaxonomyFile(t, `{
		"categories": [{"name": "languages", "skills": ["python"]}]
	}`)

	_, synonyms, err := Load(path)
	require.NoError(t, err)

	canonical, ok := synonyms.Canonical("k8s")
	require.True(t, ok)
	assert.Equal(t, "kubernetes", canonical)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTaxonomyFile(t, `{"categories": [`)
	_, _, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyTaxonomyIsError(t *testing.T) {
	path := writeTaxonomyFile(t, `{"categories": [{"name": "empty", "skills": []}]}`)
	_, _, err := Load(path)
	assert.Error(t, err)
}
