package repositories

import (
	"context"
	"errors"

	"github.com/khabaroff/vehicle-registry/src/models"
)

// Sentinel errors returned by every repository implementation
var (
	// ErrNotFound indicates the requested row does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint was violated
	ErrDuplicate = errors.New("duplicate record")
)

// AdministratorRepository defines the interface for administrator data access
type AdministratorRepository interface {
	Create(ctx context.Context, admin *models.Administrator) error
	GetByID(ctx context.Context, id int64) (*models.Administrator, error)
	GetByEmail(ctx context.Context, email string) (*models.Administrator, error)
	// List returns administrators ordered by id. limit <= 0 returns every row.
	List(ctx context.Context, limit, offset int) ([]models.Administrator, error)
	Count(ctx context.Context) (int, error)
}

// VehicleRepository defines the interface for vehicle data access
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id int64) (*models.Vehicle, error)
	// List returns vehicles ordered by id. limit <= 0 returns every row.
	List(ctx context.Context, limit, offset int) ([]models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
