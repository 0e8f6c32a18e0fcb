package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-matcher/internal/config"
	"github.com/jonathan/skill-matcher/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate an API access token",
	Long: `Generate a JWT access token for a client of the HTTP API.

The token is signed with the JWT_SECRET environment variable and expires after
JWT_EXPIRATION_HOURS (default 24).`,
	RunE: runToken,
}

var tokenClientID string

func init() {
	tokenCmd.Flags().StringVar(&tokenClientID, "client-id", "", "Client identifier to embed in the token (required)")

	tokenCmd.MarkFlagRequired("client-id")

	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to load JWT config: %w", err)
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(tokenClientID)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Fprintln(os.Stdout, token)
	return nil
}
