package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// DatabaseURI is a SQLite path or a postgres:// URL.
	DatabaseURI string          `yaml:"database_uri"`
	Addr        string          `yaml:"addr"`
	JWTSecret   string          `yaml:"jwt_secret"`
	LogPath     string          `yaml:"log_path"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig controls per-client request throttling. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DatabaseURI: "evidenca.sqlite3",
		Addr:        ":8080",
		RateLimit:   RateLimitConfig{RPS: 0, Burst: 20},
	}
}

// Load builds the configuration. Later sources override earlier ones:
// defaults, the YAML file at path (if path is non-empty), a .env file in the
// working directory (if present), then the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.DatabaseURI = getEnv("DATABASE_URI", c.DatabaseURI)
	c.Addr = getEnv("LISTEN_ADDR", c.Addr)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.LogPath = getEnv("LOG_PATH", c.LogPath)

	if v, ok := os.LookupEnv("RATE_LIMIT_RPS"); ok {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid number for RATE_LIMIT_RPS: %w", err)
		}
		c.RateLimit.RPS = rps
	}

	burst, err := getEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)
	if err != nil {
		return err
	}
	c.RateLimit.Burst = burst
	return nil
}

// Validate checks settings that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if c.DatabaseURI == "" {
		return fmt.Errorf("database uri is not set (DATABASE_URI)")
	}
	if c.Addr == "" {
		return fmt.Errorf("listen address is not set (LISTEN_ADDR)")
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1 when rate limiting is enabled")
	}
	return nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	secret := "(generated)"
	if c.JWTSecret != "" {
		secret = "***"
	}
	return fmt.Sprintf("Config{DB: %s, Addr: %s, JWT: %s, RateLimit: %g/s burst %d}",
		redactURI(c.DatabaseURI), c.Addr, secret, c.RateLimit.RPS, c.RateLimit.Burst)
}

// redactURI hides the password of a URL-style connection string.
func redactURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.User == nil {
		return uri
	}
	return u.Redacted()
}
