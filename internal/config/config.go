package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database holds resolution analytics only. Empty disables it.
	DatabaseURL string

	// Redis backs client sessions when set; otherwise sessions live in memory.
	RedisURL string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Session
	SessionSecret string // Used for encrypting cookies (base64, 32 bytes)
	SessionTTL    time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting of the translate endpoint, per client IP.
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Phrasebook
	PhrasebookFile           string        // YAML overlay, optional
	PhrasebookReloadInterval time.Duration // 0 disables hot reload

	// LLM
	LLMTimeout    time.Duration // 0 disables the client timeout
	LLMMaxRetries int           // extra attempts when the model repeats itself
	HistoryLimit  int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":3000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		TLSEnabled:    getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:   getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:    getEnv("TLS_KEY_FILE", ""),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    getDuration("SESSION_TTL", 30*24*time.Hour),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),

		RateLimitMax:    getInt("RATE_LIMIT_MAX", 30),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", time.Minute),

		PhrasebookFile:           getEnv("PHRASEBOOK_FILE", ""),
		PhrasebookReloadInterval: getDuration("PHRASEBOOK_RELOAD_INTERVAL", 30*time.Second),

		LLMTimeout:    getDuration("LLM_TIMEOUT", 30*time.Second),
		LLMMaxRetries: getInt("LLM_MAX_RETRIES", 2),
		HistoryLimit:  getInt("HISTORY_LIMIT", 20),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasDatabase reports whether resolution analytics are persisted.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
