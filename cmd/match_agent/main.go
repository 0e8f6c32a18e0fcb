// Package main provides the entry point for the skill matcher CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Candidate-job skill matching engine",
	Long:  "Skill Matcher scores candidates against job requirements using taxonomy-based and embedding-based strategies, ranks candidate batches, and ingests job postings from text or URLs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
