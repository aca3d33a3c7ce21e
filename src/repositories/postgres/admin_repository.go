package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/repositories"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation
const uniqueViolation = "23505"

// AdministratorRepository stores administrators in PostgreSQL
type AdministratorRepository struct {
	pool *pgxpool.Pool
}

// NewAdministratorRepository creates a new administrator repository
func NewAdministratorRepository(pool *pgxpool.Pool) *AdministratorRepository {
	return &AdministratorRepository{pool: pool}
}

// Create inserts the administrator and fills in the store-assigned fields
func (r *AdministratorRepository) Create(ctx context.Context, admin *models.Administrator) error {
	query := `
		INSERT INTO administrators (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, admin.Email, admin.PasswordHash, string(admin.Role)).Scan(
		&admin.ID, &admin.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repositories.ErrDuplicate
		}
		return fmt.Errorf("failed to insert administrator: %w", err)
	}

	return nil
}

// GetByID retrieves an administrator by id
func (r *AdministratorRepository) GetByID(ctx context.Context, id int64) (*models.Administrator, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM administrators
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail retrieves an administrator by exact email match
func (r *AdministratorRepository) GetByEmail(ctx context.Context, email string) (*models.Administrator, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM administrators
		WHERE email = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

// List returns administrators ordered by id
func (r *AdministratorRepository) List(ctx context.Context, limit, offset int) ([]models.Administrator, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM administrators
		ORDER BY id
	`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list administrators: %w", err)
	}
	defer rows.Close()

	admins := []models.Administrator{}
	for rows.Next() {
		var admin models.Administrator
		var role string
		if err := rows.Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &role, &admin.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan administrator: %w", err)
		}
		admin.Role = models.Role(role)
		admins = append(admins, admin)
	}

	return admins, rows.Err()
}

// Count returns the number of administrators
func (r *AdministratorRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM administrators").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count administrators: %w", err)
	}
	return count, nil
}

func (r *AdministratorRepository) scanOne(row pgx.Row) (*models.Administrator, error) {
	admin := &models.Administrator{}
	var role string
	err := row.Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &role, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query administrator: %w", err)
	}
	admin.Role = models.Role(role)
	return admin, nil
}

// Ensure AdministratorRepository implements the interface
var _ repositories.AdministratorRepository = (*AdministratorRepository)(nil)
