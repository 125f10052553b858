// Package config reads the gateway configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the process-wide gateway settings.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// RateLimit is the fixed delay applied before every dispatched request,
	// regardless of vendor. Zero means no throttling.
	RateLimit time.Duration
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Addr:      getEnv("GATEWAY_ADDR", ":8080"),
		RateLimit: rateLimit(),
	}
}

// rateLimit parses LLM_RATE_LIMIT as seconds (float). Unset or malformed
// values fall back to 0.
func rateLimit() time.Duration {
	raw, ok := os.LookupEnv("LLM_RATE_LIMIT")
	if !ok {
		return 0
	}
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

// DiscoverKeys collects the API keys configured under an environment prefix.
// Numbered variables (prefix+"1", prefix+"2", ...) are probed from 1 upward
// and collected in order until the first missing index. Only when zero
// numbered keys exist is the bare prefix consulted as a single-key fallback.
//
// Two quirks are inherited and kept on purpose: a gap in the numbering hides
// every later key (PREFIX1, PREFIX2, PREFIX4 loads two keys and PREFIX4 is
// never seen), and the presence of any numbered key means the bare variable is
// ignored entirely.
func DiscoverKeys(prefix string) []string {
	var keys []string
	for i := 1; ; i++ {
		v, ok := os.LookupEnv(fmt.Sprintf("%s%d", prefix, i))
		if !ok {
			break
		}
		keys = append(keys, v)
	}
	if len(keys) == 0 {
		if v, ok := os.LookupEnv(prefix); ok {
			keys = append(keys, v)
		}
	}
	return keys
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
