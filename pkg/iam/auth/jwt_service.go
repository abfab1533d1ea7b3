package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates stateless access tokens
type TokenService interface {
	GenerateAccessToken(issuer, subject string) (string, *TokenClaims, error)
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
}

// TokenClaims is the decoded form of a valid token
type TokenClaims struct {
	Issuer    string    `json:"iss"`
	Subject   string    `json:"sub"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// JWTService implements TokenService with HS256-signed JWTs
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// JWTOption customizes a JWTService
type JWTOption func(*JWTService)

// WithClock replaces time.Now for issuing and validating tokens
func WithClock(now func() time.Time) JWTOption {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService creates a token service signing with secretKey
func NewJWTService(secretKey string, ttl time.Duration, opts ...JWTOption) *JWTService {
	s := &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateAccessToken signs a token for the given issuer (the identity) and subject (the role)
func (s *JWTService) GenerateAccessToken(issuer, subject string) (string, *TokenClaims, error) {
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", nil, ErrTokenSignFailed().WithCause(err)
	}

	return signed, &TokenClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateAccessToken verifies signature, algorithm, expiry and subject
func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing()
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (any, error) {
			return s.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrTokenInvalid().
			WithDetail("reason", invalidReason(err)).
			WithCause(err)
	}
	if !IsKnownSubject(claims.Subject) {
		return nil, ErrTokenInvalid().WithDetail("reason", "subject")
	}

	out := &TokenClaims{
		Issuer:  claims.Issuer,
		Subject: claims.Subject,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// invalidReason gives clients a coarse hint without echoing parser internals
func invalidReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return "signature"
	default:
		return "invalid"
	}
}

var _ TokenService = (*JWTService)(nil)
