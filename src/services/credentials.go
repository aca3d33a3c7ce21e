package services

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker hashes passwords for storage and compares login attempts
// against the stored value.
type CredentialChecker interface {
	Hash(password string) (string, error)
	Matches(stored, given string) bool
}

// Password storage schemes accepted by NewCredentialChecker
const (
	SchemeBcrypt = "bcrypt"
	SchemePlain  = "plain"
)

// NewCredentialChecker returns the checker for the configured scheme
func NewCredentialChecker(scheme string) (CredentialChecker, error) {
	switch scheme {
	case "", SchemeBcrypt:
		return BcryptChecker{Cost: bcrypt.DefaultCost}, nil
	case SchemePlain:
		return PlainChecker{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// BcryptChecker stores salted bcrypt hashes
type BcryptChecker struct {
	Cost int
}

// Hash hashes password with bcrypt
func (b BcryptChecker) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Matches compares a bcrypt hash with a plaintext candidate
func (b BcryptChecker) Matches(stored, given string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}

// PlainChecker stores passwords verbatim.
// Known weakness: only for databases seeded before hashing was introduced.
type PlainChecker struct{}

// Hash returns the password unchanged
func (PlainChecker) Hash(password string) (string, error) {
	return password, nil
}

// Matches compares in constant time
func (PlainChecker) Matches(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
