package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// ConfigService implements the Service interface
type ConfigService struct {
	logger ConfigLogger
}

// NewConfigService creates a new configuration service
func NewConfigService(logger ConfigLogger) *ConfigService {
	return &ConfigService{
		logger: logger,
	}
}

// Load loads the configuration from the specified path
func (s *ConfigService) Load(path string) (*Config, error) {
	viper.AddConfigPath(path)
	// Use test configuration file if ENV is set to test
	if os.Getenv("ENV") == "test" {
		viper.SetConfigName("config_test")
	} else {
		viper.SetConfigName("config")
	}
	viper.SetConfigType("yaml")

	s.setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := s.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	s.logger.LogInfo("Configuration loaded successfully", nil)
	return &config, nil
}

// setDefaults sets default values for configuration
func (s *ConfigService) setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("cache.productTTL", 30*time.Second)
	viper.SetDefault("catalog.fetchDelay", time.Second)
	viper.SetDefault("ratelimit.enabled", true)
	viper.SetDefault("ratelimit.limit", 10)
	viper.SetDefault("ratelimit.window", time.Minute)
	viper.SetDefault("notification.workers", 2)
	viper.SetDefault("notification.queueSize", 64)
	viper.SetDefault("notification.sendDelay", 0)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
}

// validate performs validation on the configuration
func (s *ConfigService) validate(config *Config) error {
	if config.Server.Port <= 0 {
		return fmt.Errorf("invalid server port")
	}

	if config.Cache.ProductTTL < 0 {
		return fmt.Errorf("cache productTTL must not be negative")
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.Limit <= 0 {
			return fmt.Errorf("ratelimit limit must be positive")
		}
		if config.RateLimit.Window <= 0 {
			return fmt.Errorf("ratelimit window must be positive")
		}
	}

	if config.Notification.Workers <= 0 {
		return fmt.Errorf("notification workers must be positive")
	}
	if config.Notification.QueueSize <= 0 {
		return fmt.Errorf("notification queueSize must be positive")
	}

	return nil
}
