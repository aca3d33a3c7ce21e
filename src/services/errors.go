package services

import (
	"errors"

	"github.com/khabaroff/vehicle-registry/src/repositories"
)

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching

var (
	// ErrNotFound indicates the requested administrator or vehicle does not exist
	ErrNotFound = repositories.ErrNotFound

	// ErrEmailTaken indicates an administrator with the same email already exists
	ErrEmailTaken = repositories.ErrDuplicate

	// ErrInvalidCredentials indicates authentication failed
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every reason a bearer token is rejected
	ErrInvalidToken = errors.New("invalid token")

	// ErrSigningKeyMissing indicates tokens cannot be issued because no signing key is configured
	ErrSigningKeyMissing = errors.New("token signing key not configured")

	// ErrInvalidRole indicates a role outside the Admin/Editor enumeration
	ErrInvalidRole = errors.New("invalid role")
)
