package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/repositories"
)

// VehicleRepository stores vehicles in PostgreSQL
type VehicleRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

// Create inserts the vehicle and sets its id
func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (name, brand, year)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query, vehicle.Name, vehicle.Brand, vehicle.Year).Scan(&vehicle.ID); err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	return nil
}

// GetByID retrieves a vehicle by id
func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	query := `SELECT id, name, brand, year FROM vehicles WHERE id = $1`

	vehicle := &models.Vehicle{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&vehicle.ID, &vehicle.Name, &vehicle.Brand, &vehicle.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query vehicle: %w", err)
	}
	return vehicle, nil
}

// List returns vehicles ordered by id
func (r *VehicleRepository) List(ctx context.Context, limit, offset int) ([]models.Vehicle, error) {
	query := `SELECT id, name, brand, year FROM vehicles ORDER BY id`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.Year); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

// Update replaces name, brand and year of an existing vehicle
func (r *VehicleRepository) Update(ctx context.Context, vehicle *models.Vehicle) error {
	query := `UPDATE vehicles SET name = $1, brand = $2, year = $3 WHERE id = $4`

	result, err := r.pool.Exec(ctx, query, vehicle.Name, vehicle.Brand, vehicle.Year, vehicle.ID)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if result.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete removes a vehicle by id
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if result.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Ensure VehicleRepository implements the interface
var _ repositories.VehicleRepository = (*VehicleRepository)(nil)
