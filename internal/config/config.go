package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr      = ":8080"
	defaultBackendTimeout  = 60 * time.Second
	defaultScrapeRateLimit = 10
)

// DefaultSessionSecret signs session cookies when SESSION_SECRET is unset.
// It is public, so it is only fit for local development.
const DefaultSessionSecret = "scrapriq-dev-session-secret-change-me"

// ErrMissingBackendURL is returned when no backend base URL is configured.
var ErrMissingBackendURL = errors.New("required environment variable SCRAPRIQ_API_URL (or FASTAPI_URL) is not set")

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetBackendURL() string
	GetServerAddr() string
	GetSessionSecret() string
	GetBackendTimeout() time.Duration
	GetScrapeRateLimit() int
}

// Config holds all configuration for the application.
type Config struct {
	BackendURL      string
	ServerAddr      string
	SessionSecret   string
	BackendTimeout  time.Duration
	ScrapeRateLimit int
}

// New loads configuration from a .env file and the environment, exiting if
// the backend URL is missing.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load reads configuration from environment variables only.
func Load() (*Config, error) {
	cfg := &Config{
		BackendURL:      firstEnv("SCRAPRIQ_API_URL", "FASTAPI_URL"),
		ServerAddr:      envOr("SERVER_ADDR", defaultServerAddr),
		SessionSecret:   envOr("SESSION_SECRET", DefaultSessionSecret),
		BackendTimeout:  defaultBackendTimeout,
		ScrapeRateLimit: defaultScrapeRateLimit,
	}

	if raw := os.Getenv("BACKEND_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("BACKEND_TIMEOUT must be a duration such as 30s")
		}
		cfg.BackendTimeout = d
	}

	if raw := os.Getenv("SCRAPE_RATE_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, errors.New("SCRAPE_RATE_LIMIT must be a positive integer")
		}
		cfg.ScrapeRateLimit = n
	}

	if cfg.BackendURL == "" {
		return nil, ErrMissingBackendURL
	}
	return cfg, nil
}

func (c *Config) GetBackendURL() string            { return c.BackendURL }
func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetBackendTimeout() time.Duration { return c.BackendTimeout }
func (c *Config) GetScrapeRateLimit() int          { return c.ScrapeRateLimit }

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
