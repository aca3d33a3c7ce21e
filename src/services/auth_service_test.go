package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/repositories/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSigningKey = "test-secret-for-unit-tests-32ch!"

func newTestAuthService(t *testing.T) (*AuthService, *mock.AdministratorRepository) {
	t.Helper()
	repo := mock.NewAdministratorRepository()
	return NewAuthService(repo, BcryptChecker{Cost: bcrypt.MinCost}, testSigningKey, time.Hour), repo
}

func storeAdmin(t *testing.T, s *AuthService, repo *mock.AdministratorRepository, email, password string, role models.Role) {
	t.Helper()
	hash, err := s.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &models.Administrator{Email: email, PasswordHash: hash, Role: role}))
}

func TestAuthService_LoginAndVerifyRoundTrip(t *testing.T) {
	s, repo := newTestAuthService(t)
	storeAdmin(t, s, repo, "admin@test.com", "123456", models.RoleAdmin)

	admin, err := s.Login(context.Background(), "admin@test.com", "123456")
	require.NoError(t, err)

	token, err := s.IssueToken(admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@test.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestAuthService_LoginFailures(t *testing.T) {
	s, repo := newTestAuthService(t)
	storeAdmin(t, s, repo, "admin@test.com", "123456", models.RoleAdmin)

	_, err := s.Login(context.Background(), "admin@test.com", "654321")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(context.Background(), "other@test.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginPropagatesStoreErrors(t *testing.T) {
	s, repo := newTestAuthService(t)
	storeErr := errors.New("connection refused")
	repo.GetByEmailFunc = func(ctx context.Context, email string) (*models.Administrator, error) {
		return nil, storeErr
	}

	_, err := s.Login(context.Background(), "admin@test.com", "123456")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_IssueTokenWithoutKey(t *testing.T) {
	s := NewAuthService(mock.NewAdministratorRepository(), PlainChecker{}, "", 0)

	token, err := s.IssueToken(&models.Administrator{Email: "a@test.com", Role: models.RoleAdmin})

	assert.ErrorIs(t, err, ErrSigningKeyMissing)
	assert.Empty(t, token)
	assert.Equal(t, DefaultTokenTTL, s.tokenTTL)
}

func TestAuthService_VerifyTokenRejects(t *testing.T) {
	s, _ := newTestAuthService(t)
	other := NewAuthService(mock.NewAdministratorRepository(), PlainChecker{}, "another-secret-key-with-32-chars", time.Hour)
	admin := &models.Administrator{Email: "a@test.com", Role: models.RoleAdmin}

	foreign, err := other.IssueToken(admin)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{
		Email: admin.Email,
		Role:  admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		Email: admin.Email,
		Role:  "Owner",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		Email: admin.Email,
		Role:  admin.Role,
	}).SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":          "",
		"garbage":        "not.a.token",
		"wrong key":      foreign,
		"alg none":       noneToken,
		"unknown role":   badRole,
		"missing expiry": noExpiry,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := s.VerifyToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestAuthService_VerifyTokenExpired(t *testing.T) {
	s, _ := newTestAuthService(t)
	issued := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	token, err := s.IssueToken(&models.Administrator{Email: "a@test.com", Role: models.RoleEditor})
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = s.VerifyToken(token)
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = s.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
