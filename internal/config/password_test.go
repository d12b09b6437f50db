package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestPasswordConfig(t *testing.T, pepper string) *PasswordConfig {
	t.Helper()
	cfg, err := NewPasswordConfig(AuthConfig{BcryptCost: 10, PasswordPepper: pepper})
	require.NoError(t, err)
	return cfg
}

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		wantCost int
		wantErr  bool
	}{
		{"default cost", 0, 12, false},
		{"minimum cost", 10, 10, false},
		{"maximum cost", 14, 14, false},
		{"too low", 9, 0, true},
		{"too high", 15, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewPasswordConfig(AuthConfig{BcryptCost: tt.cost})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "bcrypt cost out of range")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := newTestPasswordConfig(t, "")

	hash, err := cfg.HashPassword("jump-run")
	require.NoError(t, err)
	assert.NotEqual(t, "jump-run", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)

	assert.True(t, cfg.VerifyPassword("jump-run", hash))
	assert.False(t, cfg.VerifyPassword("jump-run!", hash))
	assert.False(t, cfg.VerifyPassword("jump-run", "not-a-hash"))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := newTestPasswordConfig(t, "pepper")
	plain := newTestPasswordConfig(t, "")

	hash, err := peppered.HashPassword("canopy")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("canopy", hash))
	assert.False(t, plain.VerifyPassword("canopy", hash), "pepper must be required to verify")
	assert.True(t, plain.VerifyPassword("canopypepper", hash))
}

func TestPasswordConfig_HashesAreSalted(t *testing.T) {
	cfg := newTestPasswordConfig(t, "")

	first, err := cfg.HashPassword("same")
	require.NoError(t, err)
	second, err := cfg.HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestPasswordConfig_TooLong(t *testing.T) {
	cfg := newTestPasswordConfig(t, "")

	_, err := cfg.HashPassword(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash password")
}

func TestPasswordConfig_VerifyOperator(t *testing.T) {
	cfg := newTestPasswordConfig(t, "")
	hash, err := cfg.HashPassword("altimeter")
	require.NoError(t, err)
	operators := map[string]string{"dispatcher": hash}

	assert.True(t, cfg.VerifyOperator(operators, "dispatcher", "altimeter"))
	assert.False(t, cfg.VerifyOperator(operators, "dispatcher", "wrong"))
	assert.False(t, cfg.VerifyOperator(operators, "manifest", "altimeter"))
	assert.False(t, cfg.VerifyOperator(nil, "dispatcher", "altimeter"))
}
