package main

import (
	"fmt"

	"github.com/jonathan/load-organizer/internal/config"
	"github.com/jonathan/load-organizer/internal/server"
	"github.com/jonathan/load-organizer/internal/types"
	"github.com/spf13/cobra"
)

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Issue an API bearer token for a configured operator",
	Long:  "Verify an operator's credentials against auth.operators and print a signed token, the same token POST /auth/token returns.",
	Args:  cobra.NoArgs,
	RunE:  runIssueToken,
}

var (
	issueTokenOperator string
	issueTokenPassword string
)

func init() {
	issueTokenCmd.Flags().StringVarP(&issueTokenOperator, "operator", "u", "", "Operator username (required)")
	issueTokenCmd.Flags().StringVarP(&issueTokenPassword, "password", "p", "", "Operator password (required)")

	if err := issueTokenCmd.MarkFlagRequired("operator"); err != nil {
		panic(fmt.Sprintf("failed to mark operator flag as required: %v", err))
	}
	if err := issueTokenCmd.MarkFlagRequired("password"); err != nil {
		panic(fmt.Sprintf("failed to mark password flag as required: %v", err))
	}

	rootCmd.AddCommand(issueTokenCmd)
}

func runIssueToken(cmd *cobra.Command, _ []string) error {
	req := types.TokenRequest{Username: issueTokenOperator, Password: issueTokenPassword}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid credentials input: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig(appConfig.Auth)
	if err != nil {
		return fmt.Errorf("failed to load JWT config: %w", err)
	}
	passwords, err := config.NewPasswordConfig(appConfig.Auth)
	if err != nil {
		return fmt.Errorf("failed to load password config: %w", err)
	}

	if !passwords.VerifyOperator(appConfig.Auth.Operators, req.Username, req.Password) {
		return &server.ErrInvalidCredentials{}
	}

	token, expiresAt, err := server.NewJWTService(jwtConfig).GenerateToken(req.Username)
	if err != nil {
		return err
	}
	logger.Debug().Str("operator", req.Username).Time("expires_at", expiresAt).Msg("issued token")

	return writeOutput(cmd, "", types.TokenResponse{Token: token, ExpiresAt: expiresAt})
}
