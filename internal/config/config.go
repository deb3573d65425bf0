// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/scout.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Superteam registry — the clubs the engine monitors for comeback scenarios
// --------------------------------------------------------------------------

type SuperteamConfig struct {
	Name         string
	Logo         string
	ComebackRate float64 // historical share of deficits recovered
}

var SuperteamRegistry = []SuperteamConfig{
	{Name: "Real Madrid", Logo: "https://media.api-sports.io/football/teams/541.png", ComebackRate: 0.75},
	{Name: "Manchester City", Logo: "https://media.api-sports.io/football/teams/50.png", ComebackRate: 0.78},
	{Name: "Bayern Munich", Logo: "https://media.api-sports.io/football/teams/157.png", ComebackRate: 0.72},
	{Name: "PSG", Logo: "https://media.api-sports.io/football/teams/85.png", ComebackRate: 0.68},
	{Name: "Barcelona", Logo: "https://media.api-sports.io/football/teams/529.png", ComebackRate: 0.71},
	{Name: "Liverpool", Logo: "https://media.api-sports.io/football/teams/40.png", ComebackRate: 0.74},
}

type OpponentConfig struct {
	Name string
	Logo string
}

var OpponentRegistry = []OpponentConfig{
	{Name: "Atletico Madrid", Logo: "https://media.api-sports.io/football/teams/530.png"},
	{Name: "Sevilla", Logo: "https://media.api-sports.io/football/teams/536.png"},
	{Name: "Napoli", Logo: "https://media.api-sports.io/football/teams/489.png"},
	{Name: "Arsenal", Logo: "https://media.api-sports.io/football/teams/42.png"},
	{Name: "Inter Milan", Logo: "https://media.api-sports.io/football/teams/505.png"},
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Simulation
	LiveMatchCount int           // concurrent fixtures on the slate
	AdvanceEvery   time.Duration // wall time per simulated minute

	// Maintenance
	SweepInterval  time.Duration // server-side comeback check
	PurgeInterval  time.Duration
	AlertRetention time.Duration // read alerts older than this are purged

	// Scout watcher
	ScoutBaseURL      string
	MatchPollInterval time.Duration
	AlertPollInterval time.Duration
	ScoutRateLimit    int // outbound requests per minute
}

// Load reads configuration from environment variables with sensible defaults.
// The database URL is only required by cmd/api; cmd/scout never touches it.
func Load() (*Config, error) {
	return &Config{
		DatabaseURL:    envOr("DATABASE_URL", envOr("SCOUT_DATABASE_URL", "")),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		LiveMatchCount: envInt("LIVE_MATCH_COUNT", 4),
		AdvanceEvery:   envDur("ADVANCE_EVERY", 20*time.Second),

		SweepInterval:  envDur("SWEEP_INTERVAL", 30*time.Second),
		PurgeInterval:  envDur("PURGE_INTERVAL", 30*time.Minute),
		AlertRetention: envDur("ALERT_RETENTION", 24*time.Hour),

		ScoutBaseURL:      envOr("SCOUT_API_URL", "http://localhost:8000"),
		MatchPollInterval: envDur("MATCH_POLL_INTERVAL", 10*time.Second),
		AlertPollInterval: envDur("ALERT_POLL_INTERVAL", 15*time.Second),
		ScoutRateLimit:    envInt("SCOUT_RATE_LIMIT_RPM", 60),
	}, nil
}

// RequireDatabase validates that a database URL is configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL or SCOUT_DATABASE_URL must be set")
	}
	return nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
