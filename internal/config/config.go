package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends understood by STORAGE_BACKEND
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Server     ServerConfig
	Kvikmyndir KvikmyndirConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Catalog    CatalogConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Env  string
	Port string
}

type KvikmyndirConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type StorageConfig struct {
	Backend   string
	KeyPrefix string
}

type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TLS      bool
}

type CatalogConfig struct {
	// RefreshSchedule is a cron spec; empty disables scheduled refresh
	RefreshSchedule string
}

type RateLimitConfig struct {
	PerMinute int
}

// Load reads environment variables and returns a Config struct
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("KVIKMYNDIR_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid KVIKMYNDIR_TIMEOUT: %w", err)
	}

	perMinute, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Env:  getEnv("APP_ENV", "local"),
			Port: getEnv("PORT", "4000"),
		},
		Kvikmyndir: KvikmyndirConfig{
			BaseURL: getEnv("KVIKMYNDIR_URL", "https://api.kvikmyndir.is"),
			Token:   getEnv("KVIKMYNDIR_TOKEN", ""),
			Timeout: timeout,
		},
		Storage: StorageConfig{
			Backend:   getEnv("STORAGE_BACKEND", BackendRedis),
			KeyPrefix: getEnv("STORAGE_KEY_PREFIX", "drcinema:"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			TLS:      getEnv("REDIS_TLS", "false") == "true",
		},
		Catalog: CatalogConfig{
			RefreshSchedule: os.Getenv("CATALOG_REFRESH_SCHEDULE"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: perMinute,
		},
	}
	if _, set := os.LookupEnv("CATALOG_REFRESH_SCHEDULE"); !set {
		cfg.Catalog.RefreshSchedule = "@every 30m"
	}

	// Validate required fields
	if cfg.Kvikmyndir.Token == "" {
		return nil, fmt.Errorf("KVIKMYNDIR_TOKEN is required")
	}
	switch cfg.Storage.Backend {
	case BackendRedis, BackendMemory:
	case BackendPostgres:
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres storage backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage.Backend)
	}
	if cfg.RateLimit.PerMinute < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// IsDevelopment returns true if running in development/local mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "local" || c.Server.Env == "development"
}

// RedisAddr returns the Redis address in host:port format
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// NeedsRedis reports whether a Redis connection must be opened, either as the
// storage backend or for production rate limiting.
func (c *Config) NeedsRedis() bool {
	return c.Storage.Backend == BackendRedis || c.IsProduction()
}
