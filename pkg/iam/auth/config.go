package auth

import (
	"fmt"
	"time"
)

// TokenTTL is the fixed lifetime of issued tokens
const TokenTTL = 5 * time.Minute

// Config groups every secret the access-control layers need
type Config struct {
	JWT       JWTConfig       `yaml:"jwt"`
	Signature SignatureConfig `yaml:"signature"`
	Login     LoginConfig     `yaml:"login"`
}

type JWTConfig struct {
	SecretKey      string        `yaml:"secret_key"`
	AccessTokenTTL time.Duration `yaml:"-"`
}

type SignatureConfig struct {
	// SecretKey is the HMAC key shared with clients that create candidates
	SecretKey string `yaml:"secret_key"`
}

type LoginConfig struct {
	// Passphrase is the app-wide login password, plain or bcrypt-hashed
	Passphrase string `yaml:"passphrase"`
}

// Header names used by the API
const (
	HeaderSignature = "api-signature"
	HeaderToken     = "api-jwt"
)

// DefaultConfig returns development defaults. Secrets must be replaced outside development.
func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			SecretKey:      "",
			AccessTokenTTL: TokenTTL,
		},
		Signature: SignatureConfig{
			SecretKey: "",
		},
	}
}

// Validate checks that every secret is present
func (c Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("auth.jwt.secret_key is required")
	}
	if c.Signature.SecretKey == "" {
		return fmt.Errorf("auth.signature.secret_key is required")
	}
	if c.Login.Passphrase == "" {
		return fmt.Errorf("auth.login.passphrase is required")
	}
	if c.JWT.AccessTokenTTL != TokenTTL {
		return fmt.Errorf("auth.jwt token lifetime is fixed at %s", TokenTTL)
	}
	return nil
}
