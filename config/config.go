package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvFileVar names the environment variable that points at an optional .env file
const EnvFileVar = "MEDTECH_ENV_FILE"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Metrics   MetricsConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Environment     string        `mapstructure:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	TrustedProxies  []string      `mapstructure:"trusted_proxies"` // IPs or CIDRs allowed to set X-Forwarded-For
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// MetricsConfig holds the prometheus endpoint configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    string `mapstructure:"port"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL        time.Duration `mapstructure:"ttl"`
	MaxEntries int           `mapstructure:"max_entries"`
}

// RateLimitConfig limits contact form submissions per client IP
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
	Burst     int `mapstructure:"burst"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Mode       string `mapstructure:"mode"` // "development" or "production"
	FileEnable bool   `mapstructure:"file_enable"`
	Filename   string `mapstructure:"filename"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := applyEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/medtech/")

	// Environment variable settings
	v.SetEnvPrefix("MEDTECH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyEnvFile loads a .env file into the process environment when one exists.
// Variables already set win over the file.
func applyEnvFile() error {
	path := os.Getenv(EnvFileVar)
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return fmt.Errorf("env file %s: %w", path, err)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.shutdown_timeout", "15s")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", "9090")

	// Cache defaults
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("cache.max_entries", 1000)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_minute", 5)
	v.SetDefault("ratelimit.burst", 3)

	// Logger defaults
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.file_enable", false)
	v.SetDefault("logger.filename", "logs/medtech-site.log")
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("server environment must be 'development', 'production' or 'test', got: %s", config.Server.Environment)
	}

	if err := validPort("server port", config.Server.Port); err != nil {
		return err
	}

	for _, proxy := range config.Server.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("server trusted proxy must be an IP or CIDR, got: %q", proxy)
		}
	}

	if config.Metrics.Enabled {
		if err := validPort("metrics port", config.Metrics.Port); err != nil {
			return err
		}
		if config.Metrics.Port == config.Server.Port {
			return fmt.Errorf("metrics port must differ from server port %s", config.Server.Port)
		}
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got: %s", config.Cache.TTL)
	}

	if config.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache max_entries must be positive, got: %d", config.Cache.MaxEntries)
	}

	if config.RateLimit.PerMinute <= 0 || config.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit per_minute and burst must be positive")
	}

	if config.Logger.Mode != "development" && config.Logger.Mode != "production" {
		return fmt.Errorf("logger mode must be 'development' or 'production', got: %s", config.Logger.Mode)
	}

	if config.Logger.FileEnable && config.Logger.Filename == "" {
		return fmt.Errorf("logger filename is required when file logging is enabled")
	}

	return nil
}

func validPort(name, port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%s must be a number between 1 and 65535, got: %q", name, port)
	}
	return nil
}

func validProxy(proxy string) bool {
	if strings.Contains(proxy, "/") {
		_, _, err := net.ParseCIDR(proxy)
		return err == nil
	}
	return net.ParseIP(proxy) != nil
}
