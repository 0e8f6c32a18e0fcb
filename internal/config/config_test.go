package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"job_url": "https://boards.greenhouse.io/acme/jobs/1",
		"strategy": "taxonomy",
		"top_k": 10,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/1", cfg.JobURL)
	assert.Equal(t, "taxonomy", cfg.Strategy)
	assert.Equal(t, 10, cfg.TopK)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_MutuallyExclusiveJobSources(t *testing.T) {
	cfg := &Config{Job: "posting.txt", JobURL: "https://example.com/job"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_UnknownStrategy(t *testing.T) {
	cfg := &Config{Strategy: "psychic"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestValidate_KnownStrategies(t *testing.T) {
	for _, strategy := range []string{"", "embedding", "taxonomy"} {
		cfg := &Config{Strategy: strategy}
		assert.NoError(t, cfg.Validate(), "strategy %q", strategy)
	}
}

func TestValidate_MissingFile(t *testing.T) {
	cfg := &Config{Job: filepath.Join(t.TempDir(), "missing.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestValidate_NegativeTopK(t *testing.T) {
	cfg := &Config{TopK: -1}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Strategy: "embedding"}
	merged := cfg.MergeWithDefaults(Config{
		Strategy:    "taxonomy",
		DatabaseURL: "postgres://localhost/matches",
		TopK:        25,
	})

	// explicit value wins
	assert.Equal(t, "embedding", merged.Strategy)
	// empty values are filled from defaults
	assert.Equal(t, "postgres://localhost/matches", merged.DatabaseURL)
	assert.Equal(t, 25, merged.TopK)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 48, cfg.ExpirationHours)
}

func TestNewJWTConfig_DefaultExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")
	_, err := NewJWTConfig()
	assert.Error(t, err)
}
