// Package config holds runtime settings for the Roost backend:
// store path, listen port, token signing secret and lifetime, and the
// allowed frontend origin.
package config

import (
	"os"
	"time"
)

// DefaultTokenSecret is the insecure development fallback for the token
// signing secret. Startup logs a warning whenever it is in use.
const DefaultTokenSecret = "defaultSecret"

// Config holds all runtime settings.
type Config struct {
	DBPath      string
	Port        string
	TokenSecret string
	TokenTTL    time.Duration
	CORSOrigin  string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "./roost.db"
	c.Port = "4000"
	c.TokenSecret = DefaultTokenSecret
	c.TokenTTL = 24 * time.Hour
	c.CORSOrigin = "http://localhost:5173"
}

// Load builds a Config by applying defaults and overlaying environment
// variables.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if v := os.Getenv("ROOST_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ROOST_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("ROOST_TOKEN_SECRET"); v != "" {
		cfg.TokenSecret = v
	}
	if v := os.Getenv("ROOST_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TokenTTL = d
		}
	}
	if v := os.Getenv("ROOST_CORS_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}

	return cfg
}

// UsingDefaultSecret reports whether the signing secret is still the
// built-in development fallback.
func (c *Config) UsingDefaultSecret() bool {
	return c.TokenSecret == DefaultTokenSecret
}
