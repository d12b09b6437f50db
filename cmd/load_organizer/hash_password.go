package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jonathan/load-organizer/internal/config"
	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Hash an operator password for the auth.operators config",
	Long:  "Hash a password with the configured bcrypt cost and pepper. The password is read from --password or, if omitted, from the first line of stdin.",
	Args:  cobra.NoArgs,
	RunE:  runHashPassword,
}

var hashPasswordValue string

func init() {
	hashPasswordCmd.Flags().StringVarP(&hashPasswordValue, "password", "p", "", "Password to hash (default: read from stdin)")

	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(cmd *cobra.Command, _ []string) error {
	pw := hashPasswordValue
	if pw == "" {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		if scanner.Scan() {
			pw = strings.TrimRight(scanner.Text(), "\r")
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}
	if pw == "" {
		return fmt.Errorf("password is required")
	}

	passwords, err := config.NewPasswordConfig(appConfig.Auth)
	if err != nil {
		return err
	}
	hash, err := passwords.HashPassword(pw)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
	return err
}
