// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from environment variables
// and resolves the storage backend exactly once at startup.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// BackendKind identifies the persistence backend chosen for the process.
type BackendKind string

// Storage backend kinds. The choice is made once per process; it is never
// re-evaluated at call time.
const (
	BackendPostgres BackendKind = "postgres"
	BackendSQLite   BackendKind = "sqlite"
	BackendFile     BackendKind = "file"
)

// StorageBackend is the resolved persistence choice: a relational database
// when a DSN is configured, the JSON-file store otherwise.
type StorageBackend struct {
	Kind BackendKind
	// DSN is the connection string for relational backends.
	DSN string
	// DataDir is the JSON-file directory for the file backend.
	DataDir string
}

// IsDatabase returns true for relational backends.
func (b StorageBackend) IsDatabase() bool {
	return b.Kind == BackendPostgres || b.Kind == BackendSQLite
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DatabaseURL string `env:"ACADEMIA_DATABASE_URL"`
	SQLitePath  string `env:"ACADEMIA_SQLITE_PATH"`
	DataDir     string `env:"ACADEMIA_DATA_DIR" envDefault:"./data"`

	JWTSecret string `env:"ACADEMIA_JWT_SECRET,required"`

	ServerHost string `env:"ACADEMIA_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"ACADEMIA_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"ACADEMIA_ENV" envDefault:"development"`
	LogLevel   string `env:"ACADEMIA_LOG_LEVEL" envDefault:"info"`

	UploadsDir     string   `env:"ACADEMIA_UPLOADS_DIR" envDefault:"./uploads"`
	AllowedOrigins []string `env:"ACADEMIA_CORS_ORIGINS" envSeparator:","`

	// Cache configuration
	RedisURL     string `env:"ACADEMIA_REDIS_URL"`                          // Optional Redis URL for distributed caching
	CachePrefix  string `env:"ACADEMIA_CACHE_PREFIX" envDefault:"academia:"` // Redis key prefix
	CacheTTL     int    `env:"ACADEMIA_CACHE_TTL" envDefault:"3600"`        // Default cache TTL in seconds
	CacheMaxSize int    `env:"ACADEMIA_CACHE_MAX_SIZE" envDefault:"10000"`  // Max memory cache entries

	// Seeding configuration
	DoSeed bool `env:"ACADEMIA_DO_SEED" envDefault:"false"` // Enable admin-user seeding

	// backend is resolved once in Load.
	backend StorageBackend
}

// MinJWTSecretLength is the minimum required length for the JWT signing secret.
const MinJWTSecretLength = 32

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c *Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Backend returns the storage backend resolved at load time.
func (c *Config) Backend() StorageBackend {
	return c.backend
}

// Load parses environment variables and returns a Config struct with the
// storage backend resolved.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("ACADEMIA_JWT_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinJWTSecretLength, len(cfg.JWTSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.JWTSecret == weak {
			return nil, fmt.Errorf("ACADEMIA_JWT_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	cfg.backend = resolveBackend(cfg)
	return cfg, nil
}

// resolveBackend picks the persistence backend for the lifetime of the
// process: Postgres when a database URL is configured, SQLite when a database
// file path is configured, the JSON-file store otherwise.
func resolveBackend(cfg *Config) StorageBackend {
	switch {
	case cfg.DatabaseURL != "":
		return StorageBackend{Kind: BackendPostgres, DSN: cfg.DatabaseURL}
	case cfg.SQLitePath != "":
		return StorageBackend{Kind: BackendSQLite, DSN: cfg.SQLitePath}
	default:
		return StorageBackend{Kind: BackendFile, DataDir: cfg.DataDir}
	}
}

// ParseLogLevel maps a config log level string to a slog-compatible name,
// defaulting to "info" for unknown values.
func ParseLogLevel(level string) string {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return strings.ToLower(level)
	default:
		return "info"
	}
}
