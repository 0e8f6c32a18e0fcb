package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-matcher/internal/config"
	"github.com/jonathan/skill-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the skill matcher REST API server.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values. Authentication is enabled when the
JWT_SECRET environment variable is set.`,
	RunE: runServe,
}

var (
	serveConfigPath   string
	servePort         int
	serveDatabaseURL  string
	serveAPIKey       string
	serveTaxonomyPath string
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "HTTP listen port")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveTaxonomyPath, "taxonomy", "", "Path to taxonomy JSON file (defaults to built-in taxonomy)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if cmd.Flags().Changed("taxonomy") {
		cfg.Taxonomy = serveTaxonomyPath
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	srv, err := server.New(server.Config{
		Port:         servePort,
		DatabaseURL:  cfg.DatabaseURL,
		APIKey:       cfg.APIKey,
		TaxonomyPath: cfg.Taxonomy,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
