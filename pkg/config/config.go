// Package config loads the server configuration: defaults, then an optional
// YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Abraxas-365/headhunter/pkg/iam/auth"
	"github.com/Abraxas-365/headhunter/pkg/logx"
	"github.com/Abraxas-365/headhunter/pkg/ratelimit"
	"gopkg.in/yaml.v3"
)

// Development fallbacks, used with a warning when the real secret is not set
const (
	devHMACSecret = "dev-hmac-secret-please-change-me"
	devJWTSecret  = "super-secret-key-please-change-me-in-production"
	devPassphrase = "dev-passphrase-please-change-me"
)

// Config represents the complete server configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      auth.Config     `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	// ProxyHeader is trusted for the client address, e.g. X-Forwarded-For
	ProxyHeader string `yaml:"proxy_header"`
	LogLevel    string `yaml:"log_level"`
	LogJSON     bool   `yaml:"log_json"`
}

// DatabaseConfig selects the SQL backend. Driver is "postgres" or "sqlite".
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	// DSN wins over the discrete postgres fields when set
	DSN  string `yaml:"dsn"`
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	Name string `yaml:"name"`
}

// RedisConfig enables shared rate-limit counters. Empty Addr keeps them in memory.
type RedisConfig struct {
	Addr string `yaml:"addr"`
	Pass string `yaml:"pass"`
}

type RateLimitConfig struct {
	Create   ratelimit.Rule `yaml:"create"`
	Retrieve ratelimit.Rule `yaml:"retrieve"`
	Auth     ratelimit.Rule `yaml:"auth"`
}

// DefaultConfig returns a Config with local development defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "file:headhunter.db",
		},
		Auth: auth.DefaultConfig(),
		RateLimit: RateLimitConfig{
			Create:   ratelimit.PerMinute(5),
			Retrieve: ratelimit.PerMinute(10),
			Auth:     ratelimit.PerMinute(10),
		},
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.Auth.JWT.AccessTokenTTL = auth.TokenTTL

	return config, nil
}

// Load reads path (when not empty) and applies environment overrides
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()
	cfg.applyDevSecrets()
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields with the environment variables that are set
func (c *Config) ApplyEnv() {
	c.Server.Port = envString("PORT", c.Server.Port)
	c.Server.ProxyHeader = envString("PROXY_HEADER", c.Server.ProxyHeader)
	c.Server.LogLevel = envString("LOG_LEVEL", c.Server.LogLevel)

	c.Database.Driver = envString("DB_DRIVER", c.Database.Driver)
	c.Database.Host = envString("DB_HOST", c.Database.Host)
	c.Database.Port = envString("DB_PORT", c.Database.Port)
	c.Database.User = envString("DB_USER", c.Database.User)
	c.Database.Pass = envString("DB_PASS", c.Database.Pass)
	c.Database.Name = envString("DB_NAME", c.Database.Name)
	c.Database.DSN = envString("DB_DSN", c.Database.DSN)
	// discrete DB_* variables select postgres when no DSN is given
	if os.Getenv("DB_DSN") == "" && os.Getenv("DB_HOST") != "" {
		c.Database.Driver = envString("DB_DRIVER", "postgres")
		c.Database.DSN = ""
	}

	c.Redis.Addr = envString("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Pass = envString("REDIS_PASS", c.Redis.Pass)

	c.Auth.Signature.SecretKey = envString("HMAC_SECRET", c.Auth.Signature.SecretKey)
	c.Auth.JWT.SecretKey = envString("JWT_SECRET", c.Auth.JWT.SecretKey)
	c.Auth.Login.Passphrase = envString("LOGIN_PASSPHRASE", c.Auth.Login.Passphrase)

	c.RateLimit.Create.Limit = envInt("RL_CREATE_PER_MIN", c.RateLimit.Create.Limit)
	c.RateLimit.Retrieve.Limit = envInt("RL_RETRIEVE_PER_MIN", c.RateLimit.Retrieve.Limit)
	c.RateLimit.Auth.Limit = envInt("RL_AUTH_PER_MIN", c.RateLimit.Auth.Limit)
}

func (c *Config) applyDevSecrets() {
	if c.Auth.Signature.SecretKey == "" {
		logx.Warn("HMAC_SECRET is not set, using default (unsafe for production)")
		c.Auth.Signature.SecretKey = devHMACSecret
	}
	if c.Auth.JWT.SecretKey == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.Auth.JWT.SecretKey = devJWTSecret
	}
	if c.Auth.Login.Passphrase == "" {
		logx.Warn("LOGIN_PASSPHRASE is not set, using default (unsafe for production)")
		c.Auth.Login.Passphrase = devPassphrase
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.DSN == "" && c.Database.Host == "" {
			return fmt.Errorf("database.dsn or database.host is required for postgres")
		}
	case "sqlite":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for sqlite")
		}
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}

	if err := c.Auth.Validate(); err != nil {
		return err
	}

	for name, rule := range map[string]ratelimit.Rule{
		"create":   c.RateLimit.Create,
		"retrieve": c.RateLimit.Retrieve,
		"auth":     c.RateLimit.Auth,
	} {
		if rule.Limit <= 0 {
			return fmt.Errorf("rate_limit.%s.limit must be positive", name)
		}
		if rule.Window < time.Second {
			return fmt.Errorf("rate_limit.%s.window must be at least one second", name)
		}
	}
	return nil
}

// DataSourceName returns the DSN passed to sqlx for the configured driver
func (d DatabaseConfig) DataSourceName() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Pass, d.Name)
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		logx.Warnf("ignoring %s=%q: not an integer", key, v)
	}
	return def
}

// Addr is the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}
