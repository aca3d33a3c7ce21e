package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/khabaroff/vehicle-registry/src/logging"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/repositories"
)

// AdminService handles administrator operations
type AdminService struct {
	repo repositories.AdministratorRepository
	auth *AuthService
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.AdministratorRepository, auth *AuthService) *AdminService {
	return &AdminService{repo: repo, auth: auth}
}

// Login verifies the credentials in req
func (as *AdminService) Login(ctx context.Context, req models.LoginRequest) (*models.Administrator, error) {
	return as.auth.Login(ctx, strings.TrimSpace(req.Email), req.Password)
}

// List returns one page of administrators, or all of them when page is nil
func (as *AdminService) List(ctx context.Context, page *int) ([]models.Administrator, error) {
	limit, offset := pageWindow(page)
	return as.repo.List(ctx, limit, offset)
}

// GetByID returns the administrator or ErrNotFound
func (as *AdminService) GetByID(ctx context.Context, id int64) (*models.Administrator, error) {
	return as.repo.GetByID(ctx, id)
}

// Create stores a new administrator with a hashed password; the id is assigned by the store.
// Surrounding whitespace is stripped from email.
func (as *AdminService) Create(ctx context.Context, email, password string, role models.Role) (*models.Administrator, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := as.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Administrator{
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		Role:         role,
	}
	if err := as.repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// HasAdmins checks if any administrators exist
func (as *AdminService) HasAdmins(ctx context.Context) (bool, error) {
	count, err := as.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check administrators: %w", err)
	}
	return count > 0, nil
}

// Seed creates the first Admin account when the table is empty.
// It reports whether an account was created.
func (as *AdminService) Seed(ctx context.Context, email, password string) (bool, error) {
	logger := logging.NewLogger("admin_service")

	if email == "" || password == "" {
		logger.Debug().Msg("admin seed skipped: credentials not configured")
		return false, nil
	}

	hasAdmins, err := as.HasAdmins(ctx)
	if err != nil {
		return false, err
	}
	if hasAdmins {
		return false, nil
	}

	if _, err := as.Create(ctx, email, password, models.RoleAdmin); err != nil {
		return false, fmt.Errorf("failed to create initial administrator: %w", err)
	}

	logger.Info().Str("email", email).Msg("initial administrator created")
	return true, nil
}
