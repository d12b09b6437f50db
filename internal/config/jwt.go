package config

import (
	"fmt"
	"time"
)

// JWTConfig holds the settings used to sign and validate operator tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig builds a JWT configuration from the auth section.
func NewJWTConfig(auth AuthConfig) (*JWTConfig, error) {
	c := &JWTConfig{
		Secret:          auth.JWTSecret,
		ExpirationHours: auth.JWTExpirationHours,
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// Expiration returns the token lifetime.
func (c *JWTConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("jwt secret cannot be empty")
	}
	if c.ExpirationHours == 0 {
		c.ExpirationHours = 24
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("jwt expiration must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
