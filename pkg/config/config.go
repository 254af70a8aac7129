// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, fetching, connectivity and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Fetch contains outbound request configuration
	Fetch FetchConfig

	// Connectivity contains reachability probe configuration
	Connectivity ConnectivityConfig

	// API contains structured API endpoints
	API APIConfig

	// Log contains logger configuration
	Log LogConfig

	// RegistryFile optionally points to a TOML file overriding domain lists
	RegistryFile string

	// Registry holds the domain classification tables
	Registry Registry
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per client per RateWindow
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Capacity is the maximum number of entries kept
	Capacity int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// Prefix namespaces every key written by the store
	Prefix string
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// FetchConfig holds page and API request settings
type FetchConfig struct {
	// Type selects the page fetcher implementation (standard/colly)
	Type string

	// PageTimeout bounds a full document fetch
	PageTimeout time.Duration

	// APITimeout bounds each structured API sub-request
	APITimeout time.Duration

	// MaxRedirects is the number of redirects followed for page fetches
	MaxRedirects int

	// MaxBodyBytes caps how much of a document is read
	MaxBodyBytes int64

	// UserAgent is sent with page fetches
	UserAgent string
}

// ConnectivityConfig holds probe settings
type ConnectivityConfig struct {
	// ProbeURL is the always-up endpoint probed with HEAD
	ProbeURL string

	// Timeout bounds a single probe
	Timeout time.Duration

	// TTL is how long a probe result is reused
	TTL time.Duration
}

// APIConfig holds base URLs for the structured API adapter
type APIConfig struct {
	GitHubBaseURL     string
	HackerNewsBaseURL string
	StoryCount        int
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string
}

// DefaultUserAgent mimics a desktop browser
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: getEnvAsSecondsOrDefault("RATE_WINDOW_SECONDS", 60),
		},
		Cache: CacheConfig{
			Type:     getEnvOrDefault("CACHE_TYPE", "memory"),
			Capacity: getEnvAsIntOrDefault("CACHE_CAPACITY", 50),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
				Prefix:   getEnvOrDefault("REDIS_PREFIX", "webfetch"),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "webfetch-cache.db"),
			},
		},
		Fetch: FetchConfig{
			Type:         getEnvOrDefault("FETCHER_TYPE", "standard"),
			PageTimeout:  getEnvAsSecondsOrDefault("PAGE_TIMEOUT_SECONDS", 10),
			APITimeout:   getEnvAsSecondsOrDefault("API_TIMEOUT_SECONDS", 5),
			MaxRedirects: getEnvAsIntOrDefault("MAX_REDIRECTS", 5),
			MaxBodyBytes: int64(getEnvAsIntOrDefault("MAX_BODY_BYTES", 5*1024*1024)),
			UserAgent:    getEnvOrDefault("USER_AGENT", DefaultUserAgent),
		},
		Connectivity: ConnectivityConfig{
			ProbeURL: getEnvOrDefault("PROBE_URL", "https://www.google.com"),
			Timeout:  getEnvAsSecondsOrDefault("PROBE_TIMEOUT_SECONDS", 3),
			TTL:      getEnvAsSecondsOrDefault("PROBE_TTL_SECONDS", 60),
		},
		API: APIConfig{
			GitHubBaseURL:     getEnvOrDefault("GITHUB_API_URL", "https://api.github.com"),
			HackerNewsBaseURL: getEnvOrDefault("HACKERNEWS_API_URL", "https://hacker-news.firebaseio.com/v0"),
			StoryCount:        getEnvAsIntOrDefault("HACKERNEWS_STORY_COUNT", 10),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
		RegistryFile: getEnvOrDefault("REGISTRY_FILE", ""),
		Registry:     DefaultRegistry(),
	}

	if cfg.RegistryFile != "" {
		registry, err := LoadRegistry(cfg.RegistryFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load registry file: %w", err)
		}
		cfg.Registry = registry
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

// getEnvAsSecondsOrDefault reads a whole number of seconds as a duration
func getEnvAsSecondsOrDefault(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvAsIntOrDefault(key, defaultSeconds)) * time.Second
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Capacity < 1 {
		return errors.New("cache capacity must be at least 1")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Fetch.Type != "standard" && c.Fetch.Type != "colly" {
		return errors.New("fetcher type must be 'standard' or 'colly'")
	}

	if c.Fetch.PageTimeout <= 0 || c.Fetch.APITimeout <= 0 || c.Connectivity.Timeout <= 0 {
		return errors.New("timeouts must be positive")
	}

	if c.Fetch.MaxRedirects < 0 {
		return errors.New("max redirects cannot be negative")
	}

	return nil
}
