// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, provider, search, cache and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Provider contains upstream search provider configuration
	Provider ProviderConfig

	// Search contains pipeline tuning
	Search SearchConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// RateLimit contains per-client rate limiting
	RateLimit RateLimitConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// ProviderConfig holds SerpAPI configuration
type ProviderConfig struct {
	// APIKey is the SerpAPI credential; empty is reported per request
	APIKey string

	// BaseURL is the SerpAPI search endpoint
	BaseURL string

	// Engine is the SerpAPI engine name
	Engine string

	// Country is the gl parameter
	Country string

	// Language is the hl parameter
	Language string

	// Timeout bounds a single provider call
	Timeout time.Duration

	// MaxConcurrent is the worker pool size for provider calls
	MaxConcurrent int

	// MaxWaiting bounds callers queued for a worker; 0 is unbounded
	MaxWaiting int
}

// SearchConfig holds pipeline tuning
type SearchConfig struct {
	// PageSize is the number of results per page
	PageSize int

	// OverFetch is the number of raw results requested upstream
	OverFetch int

	// QuerySuffix is appended to every user query
	QuerySuffix string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/none)
	Type string

	// TTL is how long provider responses are cached
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// RateLimitConfig holds the per-IP token bucket
type RateLimitConfig struct {
	// RequestsPerSecond is the refill rate
	RequestsPerSecond float64

	// Burst is the bucket size
	Burst int

	// TrustProxy keys buckets on X-Forwarded-For / X-Real-IP instead of the
	// connection address. Enable only behind a proxy that overwrites them.
	TrustProxy bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is "text" or "json"
	Format string

	// File enables rotating file output when non-empty
	File string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8001"),
			ShutdownTimeout: getEnvAsSecondsOrDefault("SHUTDOWN_TIMEOUT", 30),
		},
		Provider: ProviderConfig{
			APIKey:        os.Getenv("SERPAPI_KEY"),
			BaseURL:       getEnvOrDefault("SERPAPI_BASE_URL", "https://serpapi.com/search.json"),
			Engine:        getEnvOrDefault("SERPAPI_ENGINE", "google"),
			Country:       getEnvOrDefault("SERPAPI_GL", "us"),
			Language:      getEnvOrDefault("SERPAPI_HL", "en"),
			Timeout:       getEnvAsSecondsOrDefault("PROVIDER_TIMEOUT", 20),
			MaxConcurrent: getEnvAsIntOrDefault("PROVIDER_MAX_CONCURRENT", 32),
			MaxWaiting:    getEnvAsIntOrDefault("PROVIDER_MAX_WAITING", 256),
		},
		Search: SearchConfig{
			PageSize:    getEnvAsIntOrDefault("SEARCH_PAGE_SIZE", 10),
			OverFetch:   getEnvAsIntOrDefault("SEARCH_OVERFETCH", 20),
			QuerySuffix: getEnvOrDefault("SEARCH_QUERY_SUFFIX", "AI artificial intelligence machine learning"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			TTL:  getEnvAsSecondsOrDefault("CACHE_TTL", 300),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 5),
			Burst:             getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),
			TrustProxy:        getEnvAsBoolOrDefault("RATE_LIMIT_TRUST_PROXY", false),
		},
		Log: LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
			File:       getEnvOrDefault("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsIntOrDefault("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsIntOrDefault("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsIntOrDefault("LOG_MAX_AGE_DAYS", 28),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsSecondsOrDefault reads a whole number of seconds
func getEnvAsSecondsOrDefault(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvAsIntOrDefault(key, defaultSeconds)) * time.Second
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Provider.BaseURL == "" {
		return errors.New("provider base URL cannot be empty")
	}

	if c.Provider.Timeout < time.Second {
		return errors.New("provider timeout must be at least 1 second")
	}

	if c.Provider.MaxConcurrent < 1 {
		return errors.New("provider concurrency must be at least 1")
	}

	if c.Search.PageSize < 1 {
		return errors.New("page size must be at least 1")
	}

	if c.Search.OverFetch < c.Search.PageSize {
		return errors.New("over-fetch size cannot be smaller than the page size")
	}

	switch c.Cache.Type {
	case "memory", "redis", "none":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'none'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate limit values cannot be negative")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
