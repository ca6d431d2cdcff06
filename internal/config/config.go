// Package config loads and validates the resource-enhancer service
// configuration from a YAML file with .env and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/learnflow/resource-enhancer/internal/logger"
)

const (
	defaultServerPort     = 8070
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultBackendTimeout = 60 * time.Second
	defaultRedisAddress   = "localhost:6379"
)

// Config is the root configuration for the service.
type Config struct {
	Debug   bool          `env:"APP_DEBUG" yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Redis   RedisConfig   `yaml:"redis"`
	Logging logger.Config `yaml:"logging"`
}

// ServerConfig holds the HTTP listener configuration.
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST" yaml:"host"`
	Port         int           `env:"SERVER_PORT" yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" yaml:"cors_origins"`
}

// BackendConfig holds the AI enhancement backend connection settings.
type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL" yaml:"base_url"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT"  yaml:"timeout"`
}

// RedisConfig holds Redis connection settings for the milestone
// progress store.
type RedisConfig struct {
	Address  string `env:"REDIS_ADDRESS"  yaml:"address"`
	Password string `env:"REDIS_PASSWORD" yaml:"password"`
	DB       int    `env:"REDIS_DB"       yaml:"db"`
	Enabled  bool   `env:"REDIS_ENABLED"  yaml:"enabled"`
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if c.Server.Port <= 0 {
		return errors.New("server.port is required and must be positive")
	}
	if c.Backend.BaseURL == "" {
		return errors.New("backend.base_url is required")
	}
	return nil
}

// Load reads the config file at path, applies defaults and environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	setDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultWriteTimeout
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"http://localhost:3000"}
	}
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = defaultRedisAddress
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
