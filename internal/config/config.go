// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Job      string `json:"job,omitempty"`      // Path to a job posting text file
	JobURL   string `json:"job_url,omitempty"`  // URL to fetch the job posting from
	Resume   string `json:"resume,omitempty"`   // Path to a resume text file
	Taxonomy string `json:"taxonomy,omitempty"` // Path to a taxonomy JSON file

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Strategy    string `json:"strategy,omitempty"`     // Matching strategy: embedding or taxonomy
	TopK        int    `json:"top_k,omitempty"`        // Limit for ranked output
	Scrub       bool   `json:"scrub,omitempty"`        // Redact personal identifiers before ranking
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA job boards
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // HTTP listen address
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are enforced later by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}

	switch c.Strategy {
	case "", "embedding", "taxonomy":
	default:
		return fmt.Errorf("config error: unknown strategy %q (want embedding or taxonomy)", c.Strategy)
	}

	for _, path := range []string{c.Job, c.Resume, c.Taxonomy} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
