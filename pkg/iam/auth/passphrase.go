package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PassphraseChecker compares login passwords with the app-wide passphrase.
// This is a single shared secret, not per-user authentication.
type PassphraseChecker struct {
	hash []byte
}

// NewPassphraseChecker accepts either a bcrypt hash or a plain passphrase,
// which is hashed once here so the plain value is not kept in memory.
func NewPassphraseChecker(passphrase string) (*PassphraseChecker, error) {
	if isBcryptHash(passphrase) {
		if _, err := bcrypt.Cost([]byte(passphrase)); err != nil {
			return nil, err
		}
		return &PassphraseChecker{hash: []byte(passphrase)}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &PassphraseChecker{hash: hash}, nil
}

// Matches reports whether password equals the configured passphrase
func (p *PassphraseChecker) Matches(password string) bool {
	if password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(p.hash, []byte(password)) == nil
}

func isBcryptHash(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
