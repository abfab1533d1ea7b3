package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Abraxas-365/headhunter/pkg/iam/auth"
	"github.com/Abraxas-365/headhunter/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Auth.Signature.SecretKey = "hmac"
	cfg.Auth.JWT.SecretKey = "jwt"
	cfg.Auth.Login.Passphrase = "open sesame"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ratelimit.PerMinute(5), cfg.RateLimit.Create)
	assert.Equal(t, ratelimit.PerMinute(10), cfg.RateLimit.Retrieve)
	assert.Equal(t, ratelimit.PerMinute(10), cfg.RateLimit.Auth)
	assert.Equal(t, auth.TokenTTL, cfg.Auth.JWT.AccessTokenTTL)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Server.Port = "" }, true},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"postgres without dsn or host", func(c *Config) { c.Database.Driver = "postgres"; c.Database.DSN = "" }, true},
		{"postgres with host", func(c *Config) { c.Database.Driver = "postgres"; c.Database.DSN = ""; c.Database.Host = "db" }, false},
		{"missing hmac secret", func(c *Config) { c.Auth.Signature.SecretKey = "" }, true},
		{"missing jwt secret", func(c *Config) { c.Auth.JWT.SecretKey = "" }, true},
		{"missing passphrase", func(c *Config) { c.Auth.Login.Passphrase = "" }, true},
		{"token lifetime changed", func(c *Config) { c.Auth.JWT.AccessTokenTTL = time.Hour }, true},
		{"zero create limit", func(c *Config) { c.RateLimit.Create.Limit = 0 }, true},
		{"negative retrieve limit", func(c *Config) { c.RateLimit.Retrieve.Limit = -1 }, true},
		{"zero auth window", func(c *Config) { c.RateLimit.Auth.Window = 0 }, true},
		{"sub-second create window", func(c *Config) { c.RateLimit.Create.Window = 500 * time.Millisecond }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PROXY_HEADER", "X-Forwarded-For")
	t.Setenv("HMAC_SECRET", "env-hmac")
	t.Setenv("JWT_SECRET", "env-jwt")
	t.Setenv("LOGIN_PASSPHRASE", "env-pass")
	t.Setenv("RL_CREATE_PER_MIN", "7")
	t.Setenv("RL_RETRIEVE_PER_MIN", "not-a-number")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "X-Forwarded-For", cfg.Server.ProxyHeader)
	assert.Equal(t, "env-hmac", cfg.Auth.Signature.SecretKey)
	assert.Equal(t, "env-jwt", cfg.Auth.JWT.SecretKey)
	assert.Equal(t, "env-pass", cfg.Auth.Login.Passphrase)
	assert.Equal(t, 7, cfg.RateLimit.Create.Limit)
	assert.Equal(t, 10, cfg.RateLimit.Retrieve.Limit, "invalid values keep the default")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestApplyEnvPostgresFields(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "hh")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "headhunter")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t,
		"host=db port=5432 user=hh password=secret dbname=headhunter sslmode=disable",
		cfg.Database.DataSourceName())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headhunter.yaml")
	content := `
server:
  port: "3000"
database:
  driver: postgres
  dsn: postgres://hh@localhost/headhunter?sslmode=disable
auth:
  signature:
    secret_key: file-hmac
rate_limit:
  create:
    limit: 3
    window: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "file-hmac", cfg.Auth.Signature.SecretKey)
	assert.Equal(t, ratelimit.Rule{Limit: 3, Window: 30 * time.Second}, cfg.RateLimit.Create)
	assert.Equal(t, ratelimit.PerMinute(10), cfg.RateLimit.Retrieve, "unset sections keep defaults")
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFallsBackToDevSecrets(t *testing.T) {
	for _, key := range []string{"HMAC_SECRET", "JWT_SECRET", "LOGIN_PASSPHRASE", "DB_HOST", "DB_DSN"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, devHMACSecret, cfg.Auth.Signature.SecretKey)
	assert.Equal(t, devJWTSecret, cfg.Auth.JWT.SecretKey)
	assert.Equal(t, devPassphrase, cfg.Auth.Login.Passphrase)
}
