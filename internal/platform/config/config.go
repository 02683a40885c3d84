// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. Before parsing, the
optional files `.env.<ENVIRONMENT>` and `.env` are loaded with 'joho/godotenv';
variables already present in the process environment always win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// DefaultJWTSecret is only acceptable outside production.
const DefaultJWTSecret = "dev-only-insecure-secret"

// # Configuration Schema

// Config holds all runtime configuration for the heroes API server.
type Config struct {

	// Server settings
	AppName     string `env:"APP_NAME"     envDefault:"Heroes API"`
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StorageDriver selects the backing store: "postgres" or "memory".
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
	// AutoMigrate applies pending migrations on API startup.
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`

	// Key-Value store (Redis), optional. Enables the shared rate limiter.
	RedisURL string `env:"REDIS_URL"`

	// Token signing
	JWTSecret      string        `env:"JWT_SECRET"       envDefault:"dev-only-insecure-secret"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load reads optional dotenv files, then parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotenv loads `.env.<ENVIRONMENT>` then `.env`. Missing files are skipped.
func loadDotenv() error {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	for _, file := range []string{".env." + environment, ".env"} {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Validate checks cross-field rules that struct tags cannot express.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.IsProduction() && c.JWTSecret == DefaultJWTSecret {
		return errors.New("config: JWT_SECRET must be set in production")
	}

	if c.AccessTokenTTL <= 0 {
		return errors.New("config: ACCESS_TOKEN_TTL must be positive")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the extra CORS origins accepted in production.
func (c *Config) AllowedOrigins() []string {
	return c.ExtraOrigins
}

// DatabaseHost returns the host portion of DATABASE_URL, or "" if unset.
func (c *Config) DatabaseHost() string {
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

// RedactedDatabaseURL returns DATABASE_URL with its password masked.
func (c *Config) RedactedDatabaseURL() string {
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil || parsed.User == nil {
		return c.DatabaseURL
	}
	if _, hasPassword := parsed.User.Password(); hasPassword {
		parsed.User = url.UserPassword(parsed.User.Username(), "****")
	}
	return parsed.String()
}
