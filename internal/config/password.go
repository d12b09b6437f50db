package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds settings for hashing and verifying operator passwords.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional, appended before hashing

	dummy []byte
}

// NewPasswordConfig builds a password configuration from the auth section.
// A zero cost falls back to 12.
func NewPasswordConfig(auth AuthConfig) (*PasswordConfig, error) {
	c := &PasswordConfig{
		BcryptCost: auth.BcryptCost,
		Pepper:     auth.PasswordPepper,
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = 12
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("unknown-operator"), c.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hasher: %w", err)
	}
	c.dummy = dummy
	return c, nil
}

func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword hashes a password with bcrypt.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches storedHash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}

// VerifyOperator checks a username and password against the configured operators.
func (c *PasswordConfig) VerifyOperator(operators map[string]string, username, pw string) bool {
	hash, ok := operators[username]
	if !ok {
		// Unknown usernames still pay for one bcrypt comparison.
		_ = bcrypt.CompareHashAndPassword(c.dummy, c.peppered(pw))
		return false
	}
	return c.VerifyPassword(pw, hash)
}
