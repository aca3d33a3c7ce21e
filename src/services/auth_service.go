package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/repositories"
)

// DefaultTokenTTL is how long an issued token stays valid
const DefaultTokenTTL = 24 * time.Hour

// TokenClaims represents JWT claims for administrators
type TokenClaims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthService checks credentials and issues and verifies bearer tokens.
// The signing key is fixed at construction and never changes.
type AuthService struct {
	repo        repositories.AdministratorRepository
	credentials CredentialChecker
	signingKey  []byte
	tokenTTL    time.Duration
	now         func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(repo repositories.AdministratorRepository, credentials CredentialChecker, signingKey string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		repo:        repo,
		credentials: credentials,
		signingKey:  []byte(signingKey),
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

// Login verifies email and password against the stored administrator.
// A missing account and a wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Administrator, error) {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.credentials.Matches(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// IssueToken signs a token carrying the administrator's email and role.
// It returns an empty string and ErrSigningKeyMissing when no key is configured.
func (s *AuthService) IssueToken(admin *models.Administrator) (string, error) {
	if len(s.signingKey) == 0 {
		return "", ErrSigningKeyMissing
	}

	issuedAt := s.now()
	claims := TokenClaims{
		Email: admin.Email,
		Role:  admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry and returns the embedded claims.
// Every failure is reported as ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (*TokenClaims, error) {
	if len(s.signingKey) == 0 || tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Email == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// HashPassword hashes a password with the configured credential scheme
func (s *AuthService) HashPassword(password string) (string, error) {
	return s.credentials.Hash(password)
}
