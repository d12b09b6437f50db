package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/load-organizer/internal/config"
	"github.com/jonathan/load-organizer/internal/server"
	"github.com/jonathan/load-organizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "cli-test-secret"

// authConfigFile writes a config enabling auth with a single operator.
func authConfigFile(t *testing.T, username, password string) string {
	t.Helper()
	passwords, err := config.NewPasswordConfig(config.AuthConfig{BcryptCost: 10})
	require.NoError(t, err)
	hash, err := passwords.HashPassword(password)
	require.NoError(t, err)

	return writeFile(t, "config.yaml", fmt.Sprintf(`
auth:
  enabled: true
  jwt_secret: %s
  jwt_expiration_hours: 2
  bcrypt_cost: 10
  operators:
    %s: "%s"
`, testSecret, username, hash))
}

func TestHashPasswordCommand(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "auth:\n  bcrypt_cost: 10\n")
	passwords, err := config.NewPasswordConfig(config.AuthConfig{BcryptCost: 10})
	require.NoError(t, err)

	t.Run("flag", func(t *testing.T) {
		stdout, _, err := execute(t, "", "hash-password", "--config", cfgPath, "--password", "s3cret")
		require.NoError(t, err)
		hash := strings.TrimSpace(stdout)
		assert.True(t, strings.HasPrefix(hash, "$2a$10$"))
		assert.True(t, passwords.VerifyPassword("s3cret", hash))
	})

	t.Run("stdin", func(t *testing.T) {
		stdout, _, err := execute(t, "from-stdin\n", "hash-password", "--config", cfgPath)
		require.NoError(t, err)
		assert.True(t, passwords.VerifyPassword("from-stdin", strings.TrimSpace(stdout)))
	})

	t.Run("empty", func(t *testing.T) {
		_, _, err := execute(t, "", "hash-password", "--config", cfgPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password is required")
	})
}

func TestIssueTokenCommand(t *testing.T) {
	cfgPath := authConfigFile(t, "dispatcher", "manifest")

	stdout, _, err := execute(t, "", "issue-token", "--config", cfgPath, "--operator", "dispatcher", "--password", "manifest")
	require.NoError(t, err)

	var resp types.TokenResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.NotEmpty(t, resp.Token)

	jwtConfig, err := config.NewJWTConfig(config.AuthConfig{JWTSecret: testSecret, JWTExpirationHours: 2})
	require.NoError(t, err)
	claims, err := server.NewJWTService(jwtConfig).ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "dispatcher", claims.GetOperator())
	assert.WithinDuration(t, claims.ExpiresAt.Time, resp.ExpiresAt, time.Second)
}

func TestIssueTokenCommand_Errors(t *testing.T) {
	cfgPath := authConfigFile(t, "dispatcher", "manifest")

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "wrong password",
			args:        []string{"--config", cfgPath, "--operator", "dispatcher", "--password", "nope"},
			errorString: "invalid username or password",
		},
		{
			name:        "unknown operator",
			args:        []string{"--config", cfgPath, "--operator", "pilot", "--password", "manifest"},
			errorString: "invalid username or password",
		},
		{
			name:        "missing operator flag",
			args:        []string{"--config", cfgPath, "--password", "manifest"},
			errorString: "required flag",
		},
		{
			name:        "no jwt secret configured",
			args:        []string{"--operator", "dispatcher", "--password", "manifest"},
			errorString: "jwt secret cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", append([]string{"issue-token"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}
