// Package config loads the load organizer's settings from a YAML or JSON file
// with environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override file values.
// Nested keys are separated by a double underscore, e.g. LOADORG_SERVER__PORT.
const EnvPrefix = "LOADORG_"

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Logging   LoggingConfig   `json:"logging"`
	Auth      AuthConfig      `json:"auth"`
	RateLimit RateLimitConfig `json:"ratelimit"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Port             int           `json:"port"`
	ReadTimeout      time.Duration `json:"read_timeout"`
	WriteTimeout     time.Duration `json:"write_timeout"`
	BatchConcurrency int           `json:"batch_concurrency"` // max rosters optimized in parallel
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // "json" or "console"; empty follows APP_ENV
}

// AuthConfig controls bearer-token authentication for the /loads routes.
type AuthConfig struct {
	Enabled            bool              `json:"enabled"`
	JWTSecret          string            `json:"jwt_secret"`
	JWTExpirationHours int               `json:"jwt_expiration_hours"`
	BcryptCost         int               `json:"bcrypt_cost"`
	PasswordPepper     string            `json:"password_pepper"`
	Operators          map[string]string `json:"operators"` // username -> bcrypt hash
}

// RateLimitConfig controls the token-bucket limiter.
type RateLimitConfig struct {
	Enabled         bool          `json:"enabled"`
	DefaultLimit    int           `json:"default_limit"`
	DefaultWindow   time.Duration `json:"default_window"`
	CleanupInterval time.Duration `json:"cleanup_interval"`
	Whitelist       []string      `json:"whitelist"`
	Blacklist       []string      `json:"blacklist"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:             8080,
			ReadTimeout:      10 * time.Second,
			WriteTimeout:     30 * time.Second,
			BatchConcurrency: 4,
		},
		Logging: LoggingConfig{Level: "info"},
		Auth: AuthConfig{
			JWTExpirationHours: 24,
			BcryptCost:         12,
		},
		RateLimit: RateLimitConfig{
			Enabled:         true,
			DefaultLimit:    600,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
	}
}

// Load reads path (if non-empty), applies LOADORG_ environment overrides on top
// of the defaults, and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("config error: server timeouts must be positive")
	}
	if c.Server.BatchConcurrency < 1 {
		return fmt.Errorf("config error: 'server.batch_concurrency' must be at least 1")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("config error: unknown log format %q", c.Logging.Format)
	}

	if c.Auth.Enabled {
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("config error: 'auth.jwt_secret' is required when auth is enabled")
		}
		if c.Auth.JWTExpirationHours < 1 {
			return fmt.Errorf("config error: 'auth.jwt_expiration_hours' must be at least 1")
		}
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.DefaultLimit < 0 {
			return fmt.Errorf("config error: 'ratelimit.default_limit' must be non-negative")
		}
		if c.RateLimit.DefaultWindow <= 0 {
			return fmt.Errorf("config error: 'ratelimit.default_window' must be positive")
		}
	}
	return nil
}
