package config

import (
	"time"

	"github.com/cachefront/backend/internal/logger"
)

// Config represents the application configuration
type Config struct {
	Environment  string             `mapstructure:"environment" yaml:"environment"`
	Server       ServerConfig       `mapstructure:"server" yaml:"server"`
	Cache        CacheConfig        `mapstructure:"cache" yaml:"cache"`
	Catalog      CatalogConfig      `mapstructure:"catalog" yaml:"catalog"`
	RateLimit    RateLimitConfig    `mapstructure:"ratelimit" yaml:"ratelimit"`
	Notification NotificationConfig `mapstructure:"notification" yaml:"notification"`
	Logging      logger.Config      `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig represents server configuration settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// CacheConfig represents cache configuration settings
type CacheConfig struct {
	// ProductTTL is how long a fetched product stays valid in the cache.
	ProductTTL time.Duration `mapstructure:"productTTL"`
}

// CatalogConfig represents upstream catalog configuration settings
type CatalogConfig struct {
	// FetchDelay simulates the latency of the upstream product source.
	FetchDelay time.Duration `mapstructure:"fetchDelay"`
}

// RateLimitConfig represents fixed-window rate limiter settings
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// NotificationConfig represents notification dispatcher settings
type NotificationConfig struct {
	Workers   int           `mapstructure:"workers"`
	QueueSize int           `mapstructure:"queueSize"`
	SendDelay time.Duration `mapstructure:"sendDelay"`
}
