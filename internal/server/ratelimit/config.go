package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/load-organizer/internal/config"
)

// EndpointConfig is the limit applied to one route.
// Paths ending in "/" match by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // requests per Window; 0 means unlimited
	Window time.Duration
	Burst  int // defaults to Limit when 0
}

// NewConfig converts the loaded rate limit settings into limiter configuration
// with the default endpoint tiers.
func NewConfig(c config.RateLimitConfig) *Config {
	if !c.Enabled {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    c.DefaultLimit,
		DefaultWindow:   c.DefaultWindow,
		CleanupInterval: c.CleanupInterval,
		Whitelist:       addressSet(c.Whitelist),
		Blacklist:       addressSet(c.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route tiers for the load API.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Credential checks are bcrypt-bound.
		{Path: "/auth/token", Method: http.MethodPost, Limit: 10, Window: time.Minute, Burst: 3},

		// Batches fan out across rosters.
		{Path: "/loads/exit-order/batch", Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 5},

		{Path: "/loads/exit-order", Method: http.MethodPost, Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/loads/allocate", Method: http.MethodPost, Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/loads/summary", Method: http.MethodPost, Limit: 240, Window: time.Minute, Burst: 40},
	}
}

// addressSet accepts list items that are themselves comma separated,
// as happens when the list arrives through a single environment variable.
func addressSet(list []string) map[string]bool {
	result := make(map[string]bool)
	for _, item := range list {
		for _, addr := range strings.Split(item, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				result[addr] = true
			}
		}
	}
	return result
}
