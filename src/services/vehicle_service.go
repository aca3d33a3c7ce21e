package services

import (
	"context"

	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/repositories"
)

// VehicleService handles vehicle operations
type VehicleService struct {
	repo repositories.VehicleRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(repo repositories.VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

// List returns one page of vehicles, or all of them when page is nil
func (vs *VehicleService) List(ctx context.Context, page *int) ([]models.Vehicle, error) {
	limit, offset := pageWindow(page)
	return vs.repo.List(ctx, limit, offset)
}

// GetByID returns the vehicle or ErrNotFound
func (vs *VehicleService) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	return vs.repo.GetByID(ctx, id)
}

// Create stores a new vehicle; the id is assigned by the store
func (vs *VehicleService) Create(ctx context.Context, vehicle *models.Vehicle) error {
	return vs.repo.Create(ctx, vehicle)
}

// Update replaces name, brand and year of vehicle.ID
func (vs *VehicleService) Update(ctx context.Context, vehicle *models.Vehicle) error {
	return vs.repo.Update(ctx, vehicle)
}

// Delete removes the vehicle
func (vs *VehicleService) Delete(ctx context.Context, vehicle *models.Vehicle) error {
	return vs.repo.Delete(ctx, vehicle.ID)
}
